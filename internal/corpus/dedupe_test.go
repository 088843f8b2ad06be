package corpus

import (
	"testing"

	"github.com/Dhesel28/Capstone-Tibet/internal/models"
)

func TestDeduplicate_FirstSeenWins(t *testing.T) {
	in := models.Corpus{
		{URL: "u1", Source: "first"},
		{URL: "u2", Source: "other"},
		{URL: "u1", Source: "second"},
		{URL: "u1", Source: "third"},
	}

	out, removed := Deduplicate(in)

	if removed != 2 {
		t.Errorf("removed = %d, want 2", removed)
	}

	if len(out) != 2 {
		t.Fatalf("len(out) = %d, want 2", len(out))
	}

	if out[0].URL != "u1" || out[0].Source != "first" {
		t.Errorf("Survivor for u1 = %+v, want the first occurrence", out[0])
	}
}

func TestDeduplicate_CrossCategoryFirstLoadedWins(t *testing.T) {
	in := models.Corpus{
		{URL: "shared", SourceCategory: models.CategoryChinese},
		{URL: "shared", SourceCategory: models.CategoryWestern},
	}

	out, _ := Deduplicate(in)

	if len(out) != 1 {
		t.Fatalf("len(out) = %d, want 1", len(out))
	}

	if out[0].SourceCategory != models.CategoryChinese {
		t.Errorf("Category = %q, want the first-loaded category", out[0].SourceCategory)
	}
}

func TestDeduplicate_EmptyURLsNeverMatch(t *testing.T) {
	in := models.Corpus{
		{URL: "", Headline: "a"},
		{URL: "", Headline: "b"},
		{URL: "", Headline: "c"},
	}

	out, removed := Deduplicate(in)

	if removed != 0 {
		t.Errorf("removed = %d, want 0 for empty URLs", removed)
	}

	if len(out) != 3 {
		t.Errorf("len(out) = %d, want all 3 kept", len(out))
	}
}

func TestDeduplicate_PreservesOrder(t *testing.T) {
	in := models.Corpus{
		{URL: "a"}, {URL: "b"}, {URL: "a"}, {URL: "c"},
	}

	out, _ := Deduplicate(in)

	want := []string{"a", "b", "c"}
	for i, url := range want {
		if out[i].URL != url {
			t.Fatalf("out[%d].URL = %q, want %q", i, out[i].URL, url)
		}
	}
}

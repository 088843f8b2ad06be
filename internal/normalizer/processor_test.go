package normalizer

import (
	"testing"

	"github.com/Dhesel28/Capstone-Tibet/internal/models"
)

func TestProcessor_Process(t *testing.T) {
	p := NewProcessor()

	a := p.Process(models.Article{
		BodyText: "Monks <i>gathered</i> at the monastery. See http://example.com today.",
	})

	if a.CleanText != "Monks gathered at the monastery. See today." {
		t.Errorf("CleanText = %q", a.CleanText)
	}

	if a.TokenCount != len(a.Tokens) {
		t.Errorf("TokenCount = %d, want len(Tokens) = %d", a.TokenCount, len(a.Tokens))
	}

	if a.TokenCount == 0 {
		t.Error("Expected tokens for substantive text")
	}
}

func TestProcessor_RecomputesTokenCount(t *testing.T) {
	p := NewProcessor()

	// An upstream token count must never be trusted.
	a := p.Process(models.Article{BodyText: "", TokenCount: 999})

	if a.TokenCount != 0 {
		t.Errorf("TokenCount = %d, want 0 recomputed from empty text", a.TokenCount)
	}

	if a.CleanText != "" {
		t.Errorf("CleanText = %q, want empty", a.CleanText)
	}
}

func TestProcessor_ProcessAllPreservesOrder(t *testing.T) {
	p := NewProcessor()

	in := models.Corpus{
		{URL: "a", BodyText: "first article body"},
		{URL: "b", BodyText: "second article body"},
	}

	out := p.ProcessAll(in)

	if len(out) != 2 || out[0].URL != "a" || out[1].URL != "b" {
		t.Errorf("ProcessAll reordered the corpus: %+v", out)
	}
}

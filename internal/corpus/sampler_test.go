package corpus

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/Dhesel28/Capstone-Tibet/internal/models"
)

func testOptions() SamplerOptions {
	return SamplerOptions{
		CategoryA: models.CategoryChinese,
		CategoryB: models.CategoryWestern,
		MinYear:   2017,
		MaxYear:   2024,
		MinTokens: 20,
		Seed:      42,
	}
}

// makeYear builds count articles for one category and year.
func makeYear(category string, year, count int) models.Corpus {
	out := make(models.Corpus, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, models.Article{
			URL:            fmt.Sprintf("https://example.com/%s/%d/%03d", category, year, i),
			Year:           year,
			SourceCategory: category,
			TokenCount:     25,
		})
	}

	return out
}

func TestBalance_ParityPerYear(t *testing.T) {
	var in models.Corpus
	in = append(in, makeYear(models.CategoryChinese, 2021, 40)...)
	in = append(in, makeYear(models.CategoryWestern, 2021, 65)...)
	in = append(in, makeYear(models.CategoryChinese, 2022, 10)...)
	in = append(in, makeYear(models.CategoryWestern, 2022, 3)...)

	out, stats, err := Balance(in, testOptions())
	if err != nil {
		t.Fatalf("Balance returned unexpected error: %v", err)
	}

	perYear := make(map[int]map[string]int)
	for _, a := range out {
		if perYear[a.Year] == nil {
			perYear[a.Year] = make(map[string]int)
		}

		perYear[a.Year][a.SourceCategory]++
	}

	if perYear[2021][models.CategoryChinese] != 40 || perYear[2021][models.CategoryWestern] != 40 {
		t.Errorf("2021 counts = %v, want 40 per category", perYear[2021])
	}

	if perYear[2022][models.CategoryChinese] != 3 || perYear[2022][models.CategoryWestern] != 3 {
		t.Errorf("2022 counts = %v, want 3 per category", perYear[2022])
	}

	if len(stats) != 2 || stats[0].Year != 2021 || stats[1].Year != 2022 {
		t.Errorf("stats = %+v, want ascending years 2021, 2022", stats)
	}
}

func TestBalance_Deterministic(t *testing.T) {
	var in models.Corpus
	in = append(in, makeYear(models.CategoryChinese, 2019, 30)...)
	in = append(in, makeYear(models.CategoryWestern, 2019, 12)...)
	in = append(in, makeYear(models.CategoryChinese, 2020, 7)...)
	in = append(in, makeYear(models.CategoryWestern, 2020, 50)...)

	first, _, err := Balance(in, testOptions())
	if err != nil {
		t.Fatalf("First run failed: %v", err)
	}

	second, _, err := Balance(in, testOptions())
	if err != nil {
		t.Fatalf("Second run failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("Identical seed and input must reproduce identical output")
	}
}

func TestBalance_SeedChangesSelection(t *testing.T) {
	var in models.Corpus
	in = append(in, makeYear(models.CategoryChinese, 2019, 200)...)
	in = append(in, makeYear(models.CategoryWestern, 2019, 10)...)

	opts := testOptions()

	first, _, err := Balance(in, opts)
	if err != nil {
		t.Fatalf("Balance failed: %v", err)
	}

	opts.Seed = 7

	second, _, err := Balance(in, opts)
	if err != nil {
		t.Fatalf("Balance failed: %v", err)
	}

	if reflect.DeepEqual(first, second) {
		t.Error("Different seeds drew the same sample; selection is not seed-driven")
	}
}

func TestBalance_ZeroOverlapYearContributesNothing(t *testing.T) {
	var in models.Corpus
	in = append(in, makeYear(models.CategoryChinese, 2018, 15)...)

	out, stats, err := Balance(in, testOptions())
	if err != nil {
		t.Fatalf("Balance returned unexpected error: %v", err)
	}

	if len(out) != 0 {
		t.Errorf("len(out) = %d, want 0 without category overlap", len(out))
	}

	if len(stats) != 1 || stats[0].Sampled != 0 || stats[0].AvailableA != 15 {
		t.Errorf("stats = %+v, want one zero-sample year", stats)
	}
}

func TestBalance_RestrictsToYearRange(t *testing.T) {
	var in models.Corpus
	in = append(in, makeYear(models.CategoryChinese, 2016, 5)...)
	in = append(in, makeYear(models.CategoryWestern, 2016, 5)...)
	in = append(in, makeYear(models.CategoryChinese, 2025, 5)...)
	in = append(in, makeYear(models.CategoryWestern, 2025, 5)...)

	out, stats, err := Balance(in, testOptions())
	if err != nil {
		t.Fatalf("Balance returned unexpected error: %v", err)
	}

	if len(out) != 0 || len(stats) != 0 {
		t.Errorf("Out-of-range years leaked: %d articles, %d stats", len(out), len(stats))
	}
}

func TestBalance_IgnoresOtherCategories(t *testing.T) {
	var in models.Corpus
	in = append(in, makeYear(models.CategoryChinese, 2020, 4)...)
	in = append(in, makeYear(models.CategoryWestern, 2020, 4)...)
	in = append(in, makeYear(models.CategoryInternational, 2020, 9)...)

	out, _, err := Balance(in, testOptions())
	if err != nil {
		t.Fatalf("Balance returned unexpected error: %v", err)
	}

	for _, a := range out {
		if a.SourceCategory == models.CategoryInternational {
			t.Fatal("Non-balance category leaked into the output")
		}
	}

	if len(out) != 8 {
		t.Errorf("len(out) = %d, want 8", len(out))
	}
}

func TestBalance_OutputOrdering(t *testing.T) {
	// Equal counts per year mean every article is drawn, so the fixed
	// output order is fully observable.
	var in models.Corpus
	in = append(in, makeYear(models.CategoryWestern, 2021, 2)...)
	in = append(in, makeYear(models.CategoryChinese, 2021, 2)...)
	in = append(in, makeYear(models.CategoryWestern, 2019, 1)...)
	in = append(in, makeYear(models.CategoryChinese, 2019, 1)...)

	out, _, err := Balance(in, testOptions())
	if err != nil {
		t.Fatalf("Balance returned unexpected error: %v", err)
	}

	wantYears := []int{2019, 2019, 2021, 2021, 2021, 2021}
	wantCategories := []string{
		models.CategoryChinese, models.CategoryWestern,
		models.CategoryChinese, models.CategoryChinese,
		models.CategoryWestern, models.CategoryWestern,
	}

	for i, a := range out {
		if a.Year != wantYears[i] || a.SourceCategory != wantCategories[i] {
			t.Fatalf("out[%d] = (%d, %s), want (%d, %s)",
				i, a.Year, a.SourceCategory, wantYears[i], wantCategories[i])
		}
	}
}

func TestBalance_RejectsUnfilteredInput(t *testing.T) {
	in := models.Corpus{
		{URL: "thin", Year: 2020, SourceCategory: models.CategoryChinese, TokenCount: 3},
	}

	_, _, err := Balance(in, testOptions())
	if !errors.Is(err, ErrUnfilteredInput) {
		t.Errorf("Balance = %v, want ErrUnfilteredInput", err)
	}
}

func TestBalance_RejectsIdenticalCategories(t *testing.T) {
	opts := testOptions()
	opts.CategoryB = opts.CategoryA

	_, _, err := Balance(nil, opts)
	if !errors.Is(err, ErrSameCategory) {
		t.Errorf("Balance = %v, want ErrSameCategory", err)
	}
}

func TestBalance_SampleKeepsInputRelativeOrder(t *testing.T) {
	var in models.Corpus
	in = append(in, makeYear(models.CategoryChinese, 2020, 100)...)
	in = append(in, makeYear(models.CategoryWestern, 2020, 5)...)

	out, _, err := Balance(in, testOptions())
	if err != nil {
		t.Fatalf("Balance returned unexpected error: %v", err)
	}

	prev := ""

	for _, a := range out[:5] {
		if a.SourceCategory != models.CategoryChinese {
			t.Fatal("Category A must come first within a year")
		}

		if prev != "" && a.URL <= prev {
			t.Fatalf("Sample order %q after %q is not input-relative", a.URL, prev)
		}

		prev = a.URL
	}
}

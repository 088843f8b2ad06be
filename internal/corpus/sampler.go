package corpus

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/Dhesel28/Capstone-Tibet/internal/models"
)

// Balancing errors.
var (
	ErrSameCategory    = errors.New("balance categories must differ")
	ErrUnfilteredInput = errors.New("input contains articles below the token threshold")
)

// SamplerOptions parameterizes year-stratified balanced sampling.
type SamplerOptions struct {
	CategoryA string
	CategoryB string
	MinYear   int
	MaxYear   int
	// MinTokens is the threshold the input must already satisfy;
	// balancing unfiltered input would let later removals break parity.
	MinTokens int
	Seed      int64
}

// YearStat records one year's contribution to the balanced corpus.
type YearStat struct {
	Year       int
	AvailableA int
	AvailableB int
	Sampled    int
}

// Balance produces a year-stratified 1:1 sample between the two
// configured categories. For each year in [MinYear, MaxYear] present in
// the data it draws min(nA, nB) articles without replacement from each
// category; years where either side is empty contribute nothing.
//
// All randomness comes from a single stream seeded with opts.Seed and
// consumed in a fixed traversal order, so identical seed and input order
// reproduce identical output. Output order is fixed: years ascending,
// category A's sample before category B's, and each sample preserves the
// input's relative order.
func Balance(in models.Corpus, opts SamplerOptions) (models.Corpus, []YearStat, error) {
	if opts.CategoryA == opts.CategoryB {
		return nil, nil, ErrSameCategory
	}

	for _, a := range in {
		if a.TokenCount < opts.MinTokens {
			return nil, nil, fmt.Errorf("%w: %q has %d tokens, want >= %d",
				ErrUnfilteredInput, a.URL, a.TokenCount, opts.MinTokens)
		}
	}

	byYearA := make(map[int][]models.Article)
	byYearB := make(map[int][]models.Article)

	for _, a := range in {
		if a.Year < opts.MinYear || a.Year > opts.MaxYear {
			continue
		}

		switch a.SourceCategory {
		case opts.CategoryA:
			byYearA[a.Year] = append(byYearA[a.Year], a)
		case opts.CategoryB:
			byYearB[a.Year] = append(byYearB[a.Year], a)
		}
	}

	years := make([]int, 0, len(byYearA)+len(byYearB))
	seen := make(map[int]struct{})

	for year := range byYearA {
		years = append(years, year)
		seen[year] = struct{}{}
	}

	for year := range byYearB {
		if _, ok := seen[year]; !ok {
			years = append(years, year)
		}
	}

	sort.Ints(years)

	rng := rand.New(rand.NewSource(opts.Seed))

	var balanced models.Corpus

	stats := make([]YearStat, 0, len(years))

	for _, year := range years {
		groupA := byYearA[year]
		groupB := byYearB[year]

		n := min(len(groupA), len(groupB))
		stats = append(stats, YearStat{
			Year:       year,
			AvailableA: len(groupA),
			AvailableB: len(groupB),
			Sampled:    n,
		})

		if n == 0 {
			continue
		}

		balanced = append(balanced, sampleWithoutReplacement(rng, groupA, n)...)
		balanced = append(balanced, sampleWithoutReplacement(rng, groupB, n)...)
	}

	return balanced, stats, nil
}

// sampleWithoutReplacement draws n articles uniformly from group, keeping
// the drawn articles in their input-relative order.
func sampleWithoutReplacement(rng *rand.Rand, group []models.Article, n int) []models.Article {
	indices := rng.Perm(len(group))[:n]
	sort.Ints(indices)

	out := make([]models.Article, 0, n)
	for _, i := range indices {
		out = append(out, group[i])
	}

	return out
}

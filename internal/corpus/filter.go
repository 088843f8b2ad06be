package corpus

import "github.com/Dhesel28/Capstone-Tibet/internal/models"

// FilterReport accounts for the articles the content filter removed.
// The per-category breakdown is the only detector for one category's
// articles being systematically shorter, so it is always produced.
type FilterReport struct {
	MinTokens         int
	Original          int
	Removed           int
	Remaining         int
	RemovedByCategory map[string]int
}

// FilterShort keeps only articles with at least minTokens tokens. It must
// run before balancing: removals after sampling would silently break the
// per-year parity invariant.
func FilterShort(in models.Corpus, minTokens int) (models.Corpus, FilterReport) {
	report := FilterReport{
		MinTokens:         minTokens,
		Original:          len(in),
		RemovedByCategory: make(map[string]int),
	}

	out := make(models.Corpus, 0, len(in))

	for _, a := range in {
		if a.TokenCount >= minTokens {
			out = append(out, a)

			continue
		}

		report.Removed++
		report.RemovedByCategory[a.SourceCategory]++
	}

	report.Remaining = len(out)

	return out, report
}

// Package corpus implements the set-level transforms of the pipeline:
// URL deduplication, the minimum-token content filter and year-stratified
// balanced sampling.
package corpus

import "github.com/Dhesel28/Capstone-Tibet/internal/models"

// Deduplicate removes every article whose URL was already seen earlier in
// traversal order; the first occurrence survives. When the same URL was
// loaded under two categories the first-loaded one's category wins, which
// is why load order is explicit configuration. Articles with an empty URL
// are never treated as duplicates of one another.
func Deduplicate(in models.Corpus) (models.Corpus, int) {
	seen := make(map[string]struct{}, len(in))
	out := make(models.Corpus, 0, len(in))
	removed := 0

	for _, a := range in {
		if a.URL == "" {
			out = append(out, a)

			continue
		}

		if _, dup := seen[a.URL]; dup {
			removed++

			continue
		}

		seen[a.URL] = struct{}{}
		out = append(out, a)
	}

	return out, removed
}

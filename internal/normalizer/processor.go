package normalizer

import "github.com/Dhesel28/Capstone-Tibet/internal/models"

// Processor fills the derived text fields of canonical articles.
type Processor struct{}

// NewProcessor creates a new processor instance.
func NewProcessor() *Processor {
	return &Processor{}
}

// Process returns the article with CleanText, Tokens and TokenCount set.
// TokenCount is always recomputed as len(Tokens); any upstream value is
// discarded.
func (p *Processor) Process(a models.Article) models.Article {
	a.CleanText = Clean(a.BodyText)
	a.Tokens = Tokenize(a.CleanText)
	a.TokenCount = len(a.Tokens)

	return a
}

// ProcessAll processes every article in the corpus, preserving order.
func (p *Processor) ProcessAll(corpus models.Corpus) models.Corpus {
	out := make(models.Corpus, len(corpus))
	for i, a := range corpus {
		out[i] = p.Process(a)
	}

	return out
}

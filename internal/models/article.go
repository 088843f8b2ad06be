// Package models defines data structures shared across the corpus pipeline.
package models

// Source category labels applied by the loaders. The balanced dataset is
// built from CategoryChinese and CategoryWestern; the other labels are
// carried through untouched.
const (
	CategoryChinese       = "Chinese State Media"
	CategoryWestern       = "Western Media"
	CategoryInternational = "International/Neutral"
	CategoryTibetan       = "Tibetan Media"
)

// Raw is one row of a collector-produced CSV extract, keyed by column name.
// The column vocabulary is loose; the schema package resolves it to the
// canonical field names below.
type Raw map[string]string

// Canonical field names the pipeline depends on after standardization.
const (
	FieldURL             = "url"
	FieldHeadline        = "headline"
	FieldBodyText        = "body_text"
	FieldPublicationDate = "publication_date"
	FieldYear            = "year"
	FieldSource          = "source"
	FieldSourceCategory  = "source_category"
)

// Article is the canonical record every stage after standardization
// operates on. Year == 0 means no publication year could be determined;
// such records are removed by the year-range filter.
type Article struct {
	URL             string   `json:"url"`
	Headline        string   `json:"headline"`
	BodyText        string   `json:"body_text"`
	PublicationDate string   `json:"publication_date"`
	Year            int      `json:"year"`
	Source          string   `json:"source"`
	SourceCategory  string   `json:"source_category"`
	CleanText       string   `json:"clean_text"`
	Tokens          []string `json:"tokens"`
	TokenCount      int      `json:"token_count"`
}

// Corpus is the ordered set of articles assembled in one run. Order is
// load order and is significant: deduplication keeps the first occurrence
// and sampling is reproducible only against a fixed order.
type Corpus []Article

// CountByCategory returns the number of articles per source category.
func (c Corpus) CountByCategory() map[string]int {
	counts := make(map[string]int)
	for _, a := range c {
		counts[a.SourceCategory]++
	}

	return counts
}

// StageCounts records how many articles survived each pipeline stage.
type StageCounts struct {
	Loaded       int `json:"loaded"`
	InYearRange  int `json:"inYearRange"`
	Deduplicated int `json:"deduplicated"`
	Filtered     int `json:"filtered"`
	Balanced     int `json:"balanced"`
}

// Package schema reconciles the loose column vocabularies of the
// collector extracts into the canonical article schema.
package schema

import "github.com/Dhesel28/Capstone-Tibet/internal/models"

// aliasRule maps one known source column name to a canonical field.
type aliasRule struct {
	alias     string
	canonical string
}

// aliasTable is consulted in order; for each canonical field the first
// alias present in a record wins. Kept as data so the reconciliation is
// testable on its own rather than buried in branching.
var aliasTable = []aliasRule{
	{"title", models.FieldHeadline},
	{"Title", models.FieldHeadline},
	{"headline", models.FieldHeadline},
	{"Headline", models.FieldHeadline},
	{"body", models.FieldBodyText},
	{"Body", models.FieldBodyText},
	{"body_text", models.FieldBodyText},
	{"text", models.FieldBodyText},
	{"content", models.FieldBodyText},
	{"article_text", models.FieldBodyText},
	{"date", models.FieldPublicationDate},
	{"Date", models.FieldPublicationDate},
	{"publication_date", models.FieldPublicationDate},
	{"pub_date", models.FieldPublicationDate},
	{"seendate", models.FieldPublicationDate},
	{"url", models.FieldURL},
	{"URL", models.FieldURL},
	{"link", models.FieldURL},
	{"source", models.FieldSource},
	{"source_name", models.FieldSource},
}

// Standardize copies known aliases onto their canonical field names.
// A canonical field already present is never overwritten, unmatched
// fields pass through unchanged, and nothing is deleted. The input map
// is not modified.
func Standardize(raw models.Raw) models.Raw {
	out := make(models.Raw, len(raw))
	for k, v := range raw {
		out[k] = v
	}

	for _, rule := range aliasTable {
		if _, exists := out[rule.canonical]; exists {
			continue
		}

		if v, ok := out[rule.alias]; ok {
			out[rule.canonical] = v
		}
	}

	return out
}

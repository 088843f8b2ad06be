package schema

import (
	"strconv"

	"github.com/Dhesel28/Capstone-Tibet/internal/models"
)

// ToArticle projects a standardized record onto the canonical article
// type. Absent fields become zero values; a missing or malformed year
// becomes 0, the unknown-year marker.
func ToArticle(raw models.Raw) models.Article {
	year := 0
	if v, ok := raw[models.FieldYear]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			year = parsed
		}
	}

	return models.Article{
		URL:             raw[models.FieldURL],
		Headline:        raw[models.FieldHeadline],
		BodyText:        raw[models.FieldBodyText],
		PublicationDate: raw[models.FieldPublicationDate],
		Year:            year,
		Source:          raw[models.FieldSource],
		SourceCategory:  raw[models.FieldSourceCategory],
	}
}

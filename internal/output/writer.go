// Package output persists the two dataset artifacts produced by a run.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Dhesel28/Capstone-Tibet/internal/models"
)

// flatColumns is the fixed column order of the flat artifact, consumed
// by external statistical tools.
var flatColumns = []string{
	"headline",
	"body_text",
	"clean_text",
	"source",
	"source_category",
	"publication_date",
	"year",
	"url",
	"token_count",
}

// WriteFlatCSV writes the tabular artifact without token lists,
// overwriting any previous run's output.
func WriteFlatCSV(path string, corpus models.Corpus) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating flat artifact: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write(flatColumns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, a := range corpus {
		row := []string{
			a.Headline,
			a.BodyText,
			a.CleanText,
			a.Source,
			a.SourceCategory,
			a.PublicationDate,
			strconv.Itoa(a.Year),
			a.URL,
			strconv.Itoa(a.TokenCount),
		}

		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	w.Flush()

	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing flat artifact: %w", err)
	}

	return nil
}

// WriteFullJSON writes the complete artifact including token lists, for
// programmatic reuse without re-tokenizing.
func WriteFullJSON(path string, corpus models.Corpus) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	data, err := json.MarshalIndent(corpus, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling corpus: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing full artifact: %w", err)
	}

	return nil
}

// ReadFullJSON loads a previously written complete artifact.
func ReadFullJSON(path string) (models.Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading full artifact: %w", err)
	}

	var corpus models.Corpus
	if err := json.Unmarshal(data, &corpus); err != nil {
		return nil, fmt.Errorf("parsing full artifact: %w", err)
	}

	return corpus, nil
}

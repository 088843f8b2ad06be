// Package loader reads the collector-produced CSV extracts into raw
// records, one directory of files per outlet.
package loader

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/Dhesel28/Capstone-Tibet/internal/config"
	"github.com/Dhesel28/Capstone-Tibet/internal/logger"
	"github.com/Dhesel28/Capstone-Tibet/internal/models"
)

// Loader reads raw article records from configured source directories.
type Loader struct {
	log *logger.Logger
}

// NewLoader creates a loader reporting through the given logger.
func NewLoader(log *logger.Logger) *Loader {
	return &Loader{log: log}
}

// LoadCategory reads every CSV file under the category's source
// directories, in configured source order and sorted file order, tagging
// each record with the outlet name (unless the row carries its own
// source column) and the category label. Unreadable files are logged and
// skipped; a missing directory yields no records for that source.
func (l *Loader) LoadCategory(cat config.CategoryConfig) ([]models.Raw, error) {
	var records []models.Raw

	for _, src := range cat.Sources {
		files, err := filepath.Glob(filepath.Join(src.Path, "*.csv"))
		if err != nil {
			return nil, fmt.Errorf("listing %s: %w", src.Path, err)
		}

		if len(files) == 0 {
			l.log.Warn("no extracts found", "source", src.Name, "path", src.Path)

			continue
		}

		sort.Strings(files)

		for _, file := range files {
			rows, err := readFile(file)
			if err != nil {
				l.log.Warn("skipping unreadable extract", "file", file, "error", err)

				continue
			}

			for _, row := range rows {
				if row[models.FieldSource] == "" && row["source_name"] == "" {
					row[models.FieldSource] = src.Name
				}

				row[models.FieldSourceCategory] = cat.Name
				records = append(records, row)
			}

			l.log.Info("loaded extract", "source", src.Name, "file", filepath.Base(file), "articles", len(rows))
		}
	}

	return records, nil
}

// readFile parses one CSV extract into raw records keyed by header name.
func readFile(path string) ([]models.Raw, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	all, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading rows: %w", err)
	}

	records := make([]models.Raw, 0, len(all))

	for _, row := range all {
		record := make(models.Raw, len(header))
		for i, col := range header {
			if i < len(row) {
				record[col] = row[i]
			}
		}

		records = append(records, record)
	}

	return records, nil
}

// Package pipeline orchestrates corpus assembly from raw extracts to the
// persisted balanced dataset.
package pipeline

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Dhesel28/Capstone-Tibet/internal/config"
	"github.com/Dhesel28/Capstone-Tibet/internal/corpus"
	"github.com/Dhesel28/Capstone-Tibet/internal/loader"
	"github.com/Dhesel28/Capstone-Tibet/internal/logger"
	"github.com/Dhesel28/Capstone-Tibet/internal/models"
	"github.com/Dhesel28/Capstone-Tibet/internal/normalizer"
	"github.com/Dhesel28/Capstone-Tibet/internal/output"
	"github.com/Dhesel28/Capstone-Tibet/internal/report"
	"github.com/Dhesel28/Capstone-Tibet/internal/schema"
	"github.com/Dhesel28/Capstone-Tibet/pkg/metadata"
)

// ErrNoCategoryData is returned when a balance category yields zero
// records after loading. Continuing would silently produce an empty
// balanced set, so the run aborts instead.
var ErrNoCategoryData = errors.New("no records loaded for category")

// Assembler runs the fixed stage sequence: load, standardize, extract
// year, year-range filter, deduplicate, normalize, content-filter,
// balance, persist. The content filter runs strictly before balancing;
// the sampler additionally rejects unfiltered input.
type Assembler struct {
	cfg *config.Config
	log *logger.Logger
}

// NewAssembler creates an assembler for the given configuration.
func NewAssembler(cfg *config.Config, log *logger.Logger) *Assembler {
	return &Assembler{cfg: cfg, log: log}
}

// Result carries the balanced corpus and the per-stage accounting of a
// completed run.
type Result struct {
	RunID    string
	Balanced models.Corpus
	Stages   models.StageCounts
	Filter   corpus.FilterReport
	Years    []corpus.YearStat
}

// Run executes one full assembly and persists both artifacts plus the
// signed run report if one is configured.
func (a *Assembler) Run() (*Result, error) {
	p := a.cfg.Pipeline

	raws, perCategory, err := a.load()
	if err != nil {
		return nil, err
	}

	for _, name := range []string{p.Balance.CategoryA, p.Balance.CategoryB} {
		if perCategory[name] == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoCategoryData, name)
		}
	}

	articles := make(models.Corpus, 0, len(raws))

	for _, raw := range raws {
		std := schema.Standardize(raw)
		std, _ = schema.ExtractYear(std)
		articles = append(articles, schema.ToArticle(std))
	}

	stages := models.StageCounts{Loaded: len(articles)}
	a.log.Info("loaded raw records", "count", stages.Loaded)

	inRange := make(models.Corpus, 0, len(articles))

	for _, article := range articles {
		if p.Years.Contains(article.Year) {
			inRange = append(inRange, article)
		}
	}

	stages.InYearRange = len(inRange)
	a.log.Info("year range applied", "min", p.Years.Min, "max", p.Years.Max, "count", stages.InYearRange)

	deduped, duplicates := corpus.Deduplicate(inRange)
	stages.Deduplicated = len(deduped)
	a.log.Info("deduplicated by url", "removed", duplicates, "count", stages.Deduplicated)

	processed := normalizer.NewProcessor().ProcessAll(deduped)

	filtered, filterReport := corpus.FilterShort(processed, p.MinTokens)
	stages.Filtered = len(filtered)
	a.log.Info("content filter applied", "min_tokens", p.MinTokens,
		"removed", filterReport.Removed, "count", stages.Filtered)

	for category, removed := range filterReport.RemovedByCategory {
		a.log.Info("content filter removals", "category", category, "removed", removed)
	}

	balanced, yearStats, err := corpus.Balance(filtered, corpus.SamplerOptions{
		CategoryA: p.Balance.CategoryA,
		CategoryB: p.Balance.CategoryB,
		MinYear:   p.Years.Min,
		MaxYear:   p.Years.Max,
		MinTokens: p.MinTokens,
		Seed:      p.Seed,
	})
	if err != nil {
		return nil, fmt.Errorf("balancing failed: %w", err)
	}

	stages.Balanced = len(balanced)

	for _, stat := range yearStats {
		if stat.Sampled == 0 {
			a.log.Warn("year has no overlap between categories", "year", stat.Year,
				"available_a", stat.AvailableA, "available_b", stat.AvailableB)

			continue
		}

		a.log.Info("year sampled", "year", stat.Year, "per_category", stat.Sampled)
	}

	a.log.Info("balanced corpus assembled", "count", stages.Balanced, "seed", p.Seed)

	result := &Result{
		RunID:    uuid.NewString(),
		Balanced: balanced,
		Stages:   stages,
		Filter:   filterReport,
		Years:    yearStats,
	}

	if err := a.persist(result); err != nil {
		return nil, err
	}

	return result, nil
}

// load reads every configured category in declaration order and counts
// the records loaded per category label.
func (a *Assembler) load() ([]models.Raw, map[string]int, error) {
	l := loader.NewLoader(a.log)

	var raws []models.Raw

	perCategory := make(map[string]int)

	for _, cat := range a.cfg.Pipeline.Categories {
		records, err := l.LoadCategory(cat)
		if err != nil {
			return nil, nil, fmt.Errorf("loading %s: %w", cat.Name, err)
		}

		perCategory[cat.Name] = len(records)
		raws = append(raws, records...)
		a.log.Info("category loaded", "category", cat.Name, "articles", len(records))
	}

	return raws, perCategory, nil
}

// persist writes both artifacts and, when configured, the signed report.
func (a *Assembler) persist(result *Result) error {
	out := a.cfg.Output

	if err := output.WriteFlatCSV(out.FlatPath, result.Balanced); err != nil {
		return err
	}

	a.log.Info("flat artifact written", "path", out.FlatPath)

	if err := output.WriteFullJSON(out.FullPath, result.Balanced); err != nil {
		return err
	}

	a.log.Info("full artifact written", "path", out.FullPath)

	if out.ReportPath == "" {
		return nil
	}

	flatDigest, err := metadata.HashFile(out.FlatPath)
	if err != nil {
		return fmt.Errorf("hashing flat artifact: %w", err)
	}

	fullDigest, err := metadata.HashFile(out.FullPath)
	if err != nil {
		return fmt.Errorf("hashing full artifact: %w", err)
	}

	content := report.Render(report.RunInfo{
		RunID:     result.RunID,
		Seed:      a.cfg.Pipeline.Seed,
		MinTokens: a.cfg.Pipeline.MinTokens,
		CategoryA: a.cfg.Pipeline.Balance.CategoryA,
		CategoryB: a.cfg.Pipeline.Balance.CategoryB,
		Stages:    result.Stages,
		Filter:    result.Filter,
		Years:     result.Years,
	}, result.Balanced)

	signed := metadata.Sign(content, result.RunID, map[string]string{
		"flat": flatDigest,
		"full": fullDigest,
	})

	if err := writeReport(out.ReportPath, signed); err != nil {
		return err
	}

	a.log.Info("run report written", "path", out.ReportPath)

	return nil
}

// Package report renders the human-readable summary of a pipeline run.
package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/Dhesel28/Capstone-Tibet/internal/corpus"
	"github.com/Dhesel28/Capstone-Tibet/internal/models"
	"github.com/Dhesel28/Capstone-Tibet/pkg/utils"
)

// headlineSamples is how many example headlines per category the report
// shows, truncated to headlineWidth runes.
const (
	headlineSamples = 3
	headlineWidth   = 70
)

// RunInfo collects everything the report needs about a finished run.
type RunInfo struct {
	RunID     string
	Seed      int64
	MinTokens int
	CategoryA string
	CategoryB string
	Stages    models.StageCounts
	Filter    corpus.FilterReport
	Years     []corpus.YearStat
}

// Render produces the markdown run report for a balanced corpus.
func Render(info RunInfo, balanced models.Corpus) string {
	var b strings.Builder

	b.WriteString("# Balanced Corpus Run Report\n\n")
	fmt.Fprintf(&b, "Run ID: %s\n", info.RunID)
	fmt.Fprintf(&b, "Seed: %d\n", info.Seed)
	fmt.Fprintf(&b, "Minimum tokens: %d\n\n", info.MinTokens)

	b.WriteString("## Stage counts\n\n")
	fmt.Fprintf(&b, "- Loaded: %d\n", info.Stages.Loaded)
	fmt.Fprintf(&b, "- In year range: %d\n", info.Stages.InYearRange)
	fmt.Fprintf(&b, "- After deduplication: %d\n", info.Stages.Deduplicated)
	fmt.Fprintf(&b, "- After content filter: %d\n", info.Stages.Filtered)
	fmt.Fprintf(&b, "- Balanced: %d\n\n", info.Stages.Balanced)

	b.WriteString("## Content filter removals\n\n")
	fmt.Fprintf(&b, "Removed %d of %d articles below %d tokens.\n\n",
		info.Filter.Removed, info.Filter.Original, info.Filter.MinTokens)

	for _, category := range sortedKeys(info.Filter.RemovedByCategory) {
		fmt.Fprintf(&b, "- %s: %d removed\n", category, info.Filter.RemovedByCategory[category])
	}

	b.WriteString("\n## Year-stratified sampling\n\n")
	b.WriteString(yearTable(info))
	b.WriteString("\n")

	b.WriteString(tokenSummary(balanced))
	b.WriteString(headlineSection(balanced, info.CategoryA, info.CategoryB))

	return b.String()
}

// yearTable renders the per-year availability and sample sizes as an
// aligned markdown table.
func yearTable(info RunInfo) string {
	headers := []string{"Year", info.CategoryA, info.CategoryB, "Sampled per category"}

	rows := make([][]string, 0, len(info.Years))
	for _, stat := range info.Years {
		rows = append(rows, []string{
			strconv.Itoa(stat.Year),
			strconv.Itoa(stat.AvailableA),
			strconv.Itoa(stat.AvailableB),
			strconv.Itoa(stat.Sampled),
		})
	}

	return renderTable(headers, rows)
}

// renderTable lays out a markdown table with cells padded to the widest
// entry of each column.
func renderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}

	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder

	writeRow := func(cells []string) {
		b.WriteString("|")

		for i, cell := range cells {
			b.WriteString(" ")
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", widths[i]-runewidth.StringWidth(cell)))
			b.WriteString(" |")
		}

		b.WriteString("\n")
	}

	writeRow(headers)

	b.WriteString("|")

	for _, w := range widths {
		b.WriteString(strings.Repeat("-", w+2))
		b.WriteString("|")
	}

	b.WriteString("\n")

	for _, row := range rows {
		writeRow(row)
	}

	return b.String()
}

func tokenSummary(balanced models.Corpus) string {
	if len(balanced) == 0 {
		return "## Token counts\n\nNo articles in the balanced corpus.\n"
	}

	total := 0
	minCount := balanced[0].TokenCount

	for _, a := range balanced {
		total += a.TokenCount
		if a.TokenCount < minCount {
			minCount = a.TokenCount
		}
	}

	var b strings.Builder

	b.WriteString("## Token counts\n\n")
	fmt.Fprintf(&b, "- Average: %.1f\n", float64(total)/float64(len(balanced)))
	fmt.Fprintf(&b, "- Minimum: %d\n\n", minCount)

	return b.String()
}

func headlineSection(balanced models.Corpus, categories ...string) string {
	helper := utils.NewStringHelper()

	var b strings.Builder

	b.WriteString("## Sample headlines\n\n")

	for _, category := range categories {
		fmt.Fprintf(&b, "### %s\n\n", category)

		shown := 0

		for _, a := range balanced {
			if a.SourceCategory != category || a.Headline == "" {
				continue
			}

			headline := helper.Truncate(helper.NormalizeWhitespace(a.Headline), headlineWidth)
			fmt.Fprintf(&b, "- %s (%d)\n", headline, a.Year)

			shown++
			if shown == headlineSamples {
				break
			}
		}

		b.WriteString("\n")
	}

	return b.String()
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

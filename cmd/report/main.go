// Package main provides the report command-line tool for summarizing an
// existing full corpus artifact without re-running the pipeline.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/Dhesel28/Capstone-Tibet/internal/output"
)

func main() {
	inputPath := flag.String("input", "", "Path to a full corpus artifact (JSON)")
	flag.Parse()

	if *inputPath == "" {
		fmt.Println("Usage: report -input <corpus.json>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	corpus, err := output.ReadFullJSON(*inputPath)
	if err != nil {
		log.Fatalf("Error reading artifact: %v\n", err)
	}

	fmt.Printf("📂 %s: %d articles\n\n", *inputPath, len(corpus))

	fmt.Println("By source category:")

	for _, line := range countLines(corpus.CountByCategory()) {
		fmt.Println(line)
	}

	fmt.Println("\nBy year and category:")

	perYear := make(map[int]map[string]int)
	for _, a := range corpus {
		if perYear[a.Year] == nil {
			perYear[a.Year] = make(map[string]int)
		}

		perYear[a.Year][a.SourceCategory]++
	}

	years := make([]int, 0, len(perYear))
	for y := range perYear {
		years = append(years, y)
	}

	sort.Ints(years)

	for _, y := range years {
		fmt.Printf("  %d\n", y)

		for _, line := range countLines(perYear[y]) {
			fmt.Printf("  %s\n", line)
		}
	}

	total := 0
	for _, a := range corpus {
		total += a.TokenCount
	}

	if len(corpus) > 0 {
		fmt.Printf("\nAverage token count: %.1f\n", float64(total)/float64(len(corpus)))
	}
}

func countLines(counts map[string]int) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("  %-25s %d", k, counts[k]))
	}

	return lines
}

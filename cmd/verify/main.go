// Package main provides the verify command-line tool for checking a
// signed run report against the artifacts on disk.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Dhesel28/Capstone-Tibet/pkg/metadata"
)

func main() {
	reportPath := flag.String("report", "", "Path to a signed run report")
	flatPath := flag.String("flat", "", "Path to the flat CSV artifact (optional)")
	fullPath := flag.String("full", "", "Path to the full JSON artifact (optional)")
	flag.Parse()

	if *reportPath == "" {
		fmt.Println("Usage: verify -report <report.md> [-flat <corpus.csv>] [-full <corpus.json>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	content, err := os.ReadFile(*reportPath)
	if err != nil {
		log.Fatalf("Error reading report: %v\n", err)
	}

	fmt.Printf("📂 Reading: %s (%d bytes)\n", *reportPath, len(content))

	manifest, err := metadata.Verify(string(content))
	if err != nil {
		log.Fatalf("❌ Report verification failed: %v\n", err)
	}

	fmt.Printf("✅ Report intact (run %s, generated %s)\n",
		manifest.RunID, manifest.Generated.Format("2006-01-02 15:04:05 MST"))

	checks := map[string]string{
		"flat": *flatPath,
		"full": *fullPath,
	}

	for label, path := range checks {
		if path == "" {
			continue
		}

		if err := manifest.VerifyArtifact(label, path); err != nil {
			log.Fatalf("❌ Artifact check failed: %v\n", err)
		}

		fmt.Printf("✅ %s artifact matches manifest: %s\n", label, path)
	}
}

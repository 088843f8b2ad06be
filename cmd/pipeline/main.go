// Package main provides the pipeline command that assembles the balanced
// Tibet media corpus from collector extracts.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/Dhesel28/Capstone-Tibet/internal/config"
	"github.com/Dhesel28/Capstone-Tibet/internal/logger"
	"github.com/Dhesel28/Capstone-Tibet/internal/pipeline"
)

func main() {
	// .env may provide PIPELINE_CONFIG and LOG_LEVEL defaults; absence
	// is not an error.
	_ = godotenv.Load()

	defaultConfig := os.Getenv("PIPELINE_CONFIG")
	if defaultConfig == "" {
		defaultConfig = "configs/pipeline.yaml"
	}

	configPath := flag.String("config", defaultConfig, "Path to pipeline YAML config")
	seed := flag.Int64("seed", 0, "Override the sampling seed from the config")
	minTokens := flag.Int("min-tokens", 0, "Override the minimum token threshold from the config")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Config error: %v\n", err)
		os.Exit(1)
	}

	if *seed != 0 {
		cfg.Pipeline.Seed = *seed
	}

	if *minTokens != 0 {
		cfg.Pipeline.MinTokens = *minTokens
	}

	level := cfg.Logging.Level
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		level = env
	}

	log := logger.NewLogger(level)

	log.Info("🚀 Starting corpus assembly")
	log.Info(fmt.Sprintf("📍 Config: %s (%s)", *configPath, cfg))

	startTime := time.Now()

	assembler := pipeline.NewAssembler(cfg, log)

	result, err := assembler.Run()
	if err != nil {
		log.Error(fmt.Sprintf("❌ Assembly failed: %v", err))
		os.Exit(1)
	}

	log.Info("✨ Assembly complete")

	fmt.Println("\n------------------------------------------------")
	fmt.Printf("📊 Summary Report\n")
	fmt.Println("------------------------------------------------")
	fmt.Printf("Run ID: %s\n", result.RunID)
	fmt.Printf("Loaded: %d\n", result.Stages.Loaded)
	fmt.Printf("In year range: %d\n", result.Stages.InYearRange)
	fmt.Printf("Deduplicated: %d\n", result.Stages.Deduplicated)
	fmt.Printf("Content-filtered: %d\n", result.Stages.Filtered)
	fmt.Printf("Balanced: %d\n", result.Stages.Balanced)
	fmt.Printf("Total Duration: %v\n", time.Since(startTime))
	fmt.Println("------------------------------------------------")
}

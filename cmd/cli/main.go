package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/plantops/linesight/internal/assistant"
	"github.com/plantops/linesight/internal/config"
	"github.com/plantops/linesight/internal/export"
	"github.com/plantops/linesight/internal/formatter"
	"github.com/plantops/linesight/internal/models"
	"github.com/plantops/linesight/internal/ui"
)

func main() {
	domain := flag.String("domain", "engine", "Domain profile: engine, aviation or healthcare")
	issue := flag.String("issue", "", "Free-text issue description")
	station := flag.String("station", "", "Station or unit id")
	window := flag.Int("window", 60, "Analysis window in minutes")
	useGenerator := flag.Bool("generator", false, "Route through the external narrative generator")
	condense := flag.Bool("condense", false, "Condense the narrative to a top-line summary")
	exportRUL := flag.Bool("export", false, "Append issue and RUL estimate to the export file")
	configPath := flag.String("config", "", "Path to config file")
	outputFormat := flag.String("format", "pretty", "Output format: 'pretty' or 'json'")
	noColor := flag.Bool("no-color", false, "Disable colored output")

	flag.Parse()

	// Initialize logger
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	// Initialize assistant
	assistantInstance, err := assistant.NewAssistant(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to create assistant", zap.Error(err))
	}

	var progress ui.ProgressReporter
	if *outputFormat == "json" {
		progress = &ui.NoOpProgress{}
	} else {
		sp := ui.NewSpinnerProgress()
		sp.Start(fmt.Sprintf("Analyzing %s signals (window: %dm)...", *domain, *window))
		progress = sp
	}

	ctx := context.Background()
	result, err := assistantInstance.Analyze(ctx, models.AnalysisRequest{
		Domain:        *domain,
		Issue:         *issue,
		Station:       *station,
		WindowMinutes: *window,
		UseGenerator:  *useGenerator,
		Condense:      *condense,
	})
	progress.Stop()

	if err != nil {
		logger.Fatal("Analysis failed", zap.Error(err))
	}

	// Output result
	if *outputFormat == "json" {
		output, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			logger.Fatal("Failed to marshal result", zap.Error(err))
		}
		fmt.Println(string(output))
	} else {
		outputFormatter := formatter.NewFormatter(!*noColor)
		fmt.Println(outputFormatter.FormatAnalysisResult(result))
	}

	if *exportRUL {
		record := export.Record{Issue: *issue, RULDays: result.Assessment.RULDays}
		if err := export.AppendFile(cfg.Export.Path, record); err != nil {
			logger.Fatal("Export failed", zap.Error(err))
		}
		fmt.Printf("Exported to %s (issue=%q, rul_days=%d)\n", cfg.Export.Path, record.Issue, record.RULDays)
	}
}

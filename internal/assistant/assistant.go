// Package assistant orchestrates one analysis request: window the
// samples, evaluate the domain's rules, render the narrative, and
// optionally route through the external generator with deterministic
// fallback to the rule-based path.
package assistant

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/plantops/linesight/internal/collectors"
	"github.com/plantops/linesight/internal/config"
	"github.com/plantops/linesight/internal/engine"
	"github.com/plantops/linesight/internal/llm"
	"github.com/plantops/linesight/internal/models"
	"github.com/plantops/linesight/internal/narrative"
	"github.com/plantops/linesight/internal/rules"
)

// FallbackNote is prepended to the rule-based narrative when the
// external generator was requested but unavailable.
const FallbackNote = "External generator not available; falling back to rule-based assessment."

type Assistant struct {
	source collectors.Source
	llm    llm.Client
	config *config.Config
	logger *zap.Logger
}

// NewAssistant wires the sample source and, when configured, the
// external generator. A missing or misconfigured generator is not an
// error: the generator path simply falls back per request.
func NewAssistant(cfg *config.Config, logger *zap.Logger) (*Assistant, error) {
	if err := rules.ValidateAll(); err != nil {
		return nil, fmt.Errorf("invalid rule configuration: %w", err)
	}

	source, err := collectors.NewSource(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create sample source: %w", err)
	}

	llmClient, err := llm.NewClient(cfg)
	if err != nil {
		logger.Warn("external generator not configured", zap.Error(err))
		llmClient = nil
	}

	return &Assistant{
		source: source,
		llm:    llmClient,
		config: cfg,
		logger: logger,
	}, nil
}

// NewAssistantWith wires explicit collaborators.
func NewAssistantWith(source collectors.Source, client llm.Client, cfg *config.Config, logger *zap.Logger) *Assistant {
	return &Assistant{
		source: source,
		llm:    client,
		config: cfg,
		logger: logger,
	}
}

// Analyze processes one request synchronously to completion.
func (a *Assistant) Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error) {
	profile, err := rules.Lookup(req.Domain)
	if err != nil {
		return nil, err
	}

	minutes := req.WindowMinutes
	if minutes <= 0 {
		minutes = a.config.Analysis.DefaultWindowMinutes
	}
	if max := a.config.Analysis.MaxWindowMinutes; max > 0 && minutes > max {
		minutes = max
	}
	req.WindowMinutes = minutes

	a.logger.Info("starting analysis",
		zap.String("domain", req.Domain),
		zap.Int("window_minutes", minutes),
		zap.Bool("use_generator", req.UseGenerator),
	)

	samples, err := a.source.Samples(ctx, req.Domain)
	if err != nil {
		return nil, fmt.Errorf("failed to collect samples: %w", err)
	}

	window := engine.Window(samples, time.Duration(minutes)*time.Minute)
	assessment := engine.Evaluate(profile, window)
	if req.Station != "" {
		assessment.Station = req.Station
	}
	text := narrative.Render(assessment, profile)

	result := &models.AnalysisResult{
		Request:    req,
		Assessment: assessment,
	}

	if req.UseGenerator {
		generated, err := a.generate(ctx, profile, req.Issue, window)
		if err != nil {
			a.logger.Warn("generator failed, using rule-based assessment", zap.Error(err))
			result.FellBack = true
			text = FallbackNote + "\n\n" + text
		} else {
			result.GeneratorUsed = true
			result.Assessment.Source = models.SourceGenerator
			text = generated
		}
	}

	if req.Condense {
		text = narrative.Condense(text)
	}
	result.Narrative = text

	a.logger.Info("analysis completed",
		zap.String("domain", req.Domain),
		zap.Bool("anomalous", assessment.Anomalous),
		zap.String("eta", assessment.TimeToAttention),
		zap.Bool("generator_used", result.GeneratorUsed),
	)

	return result, nil
}

// generate invokes the external narrative capability under the
// configured timeout. Every failure mode (no client, timeout, backend
// error, empty output) returns an error so Analyze can substitute the
// rule-based narrative; it never panics and never blocks indefinitely.
func (a *Assistant) generate(ctx context.Context, profile rules.Profile, issue string, window []models.SensorSample) (string, error) {
	if a.llm == nil {
		return "", fmt.Errorf("no generator client configured")
	}

	timeout := a.config.Analysis.GeneratorTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	user := fmt.Sprintf("User prompt: %s\n\nRecent data:\n%s",
		issue, serializeWindow(window, profile.TrailingCount))

	text, err := a.llm.Generate(ctx, profile.RoleFraming, user)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("generator returned empty narrative")
	}
	return text, nil
}

// serializeWindow flattens the last n window samples into CSV text for
// the generator prompt. Metric columns are sorted so the record layout
// is stable across runs.
func serializeWindow(window []models.SensorSample, n int) string {
	if n > 0 && n < len(window) {
		window = window[len(window)-n:]
	}
	if len(window) == 0 {
		return "(no samples in window)"
	}

	metricSet := make(map[string]struct{})
	for _, s := range window {
		for name := range s.Metrics {
			metricSet[name] = struct{}{}
		}
	}
	metrics := make([]string, 0, len(metricSet))
	for name := range metricSet {
		metrics = append(metrics, name)
	}
	sort.Strings(metrics)

	var sb strings.Builder
	sb.WriteString("timestamp,station")
	for _, m := range metrics {
		sb.WriteString("," + m)
	}
	sb.WriteString(",fault_code\n")

	for _, s := range window {
		sb.WriteString(s.Timestamp.Format(time.RFC3339))
		sb.WriteString("," + s.Station)
		for _, m := range metrics {
			sb.WriteString(fmt.Sprintf(",%g", s.Metrics[m]))
		}
		sb.WriteString("," + s.FaultCode + "\n")
	}
	return sb.String()
}

package assistant

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/plantops/linesight/internal/config"
	"github.com/plantops/linesight/internal/models"
	"github.com/plantops/linesight/internal/narrative"
	"github.com/plantops/linesight/internal/rules"
)

type fixedSource struct {
	samples []models.SensorSample
	err     error
}

func (f *fixedSource) Samples(ctx context.Context, domain string) ([]models.SensorSample, error) {
	return f.samples, f.err
}

type fakeGenerator struct {
	text string
	err  error
}

func (f *fakeGenerator) Generate(ctx context.Context, system, user string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Analysis.DefaultWindowMinutes = 60
	cfg.Analysis.MaxWindowMinutes = 240
	cfg.Analysis.GeneratorTimeout = time.Second
	return cfg
}

func anomalousWindow() []models.SensorSample {
	start := time.Date(2025, 8, 29, 8, 0, 0, 0, time.UTC)
	samples := make([]models.SensorSample, 20)
	for i := range samples {
		samples[i] = models.SensorSample{
			Timestamp: start.Add(time.Duration(i) * 5 * time.Minute),
			Station:   "2",
			Metrics:   map[string]float64{"vibration": 7.5, "temperature": 80},
			FaultCode: models.FaultOK,
		}
	}
	return samples
}

func TestAnalyzeRuleBasedPath(t *testing.T) {
	a := NewAssistantWith(&fixedSource{samples: anomalousWindow()}, nil, testConfig(), zaptest.NewLogger(t))

	result, err := a.Analyze(context.Background(), models.AnalysisRequest{
		Domain: rules.DomainEngine,
		Issue:  "Vibration spike on Station 2",
	})
	require.NoError(t, err)

	assert.True(t, result.Assessment.Anomalous)
	assert.False(t, result.GeneratorUsed)
	assert.False(t, result.FellBack)
	assert.Contains(t, result.Narrative, "Possible bearing wear")
	assert.Contains(t, result.Narrative, "**Estimated Time-to-Attention:** Likely failure within 3–5 days if untreated.")
}

func TestAnalyzeGeneratorSuccessBypassesRuleNarrative(t *testing.T) {
	gen := &fakeGenerator{text: "- opaque generated summary"}
	a := NewAssistantWith(&fixedSource{samples: anomalousWindow()}, gen, testConfig(), zaptest.NewLogger(t))

	result, err := a.Analyze(context.Background(), models.AnalysisRequest{
		Domain:       rules.DomainEngine,
		Issue:        "Vibration spike",
		UseGenerator: true,
	})
	require.NoError(t, err)

	assert.True(t, result.GeneratorUsed)
	assert.False(t, result.FellBack)
	assert.Equal(t, models.SourceGenerator, result.Assessment.Source)
	assert.Equal(t, "- opaque generated summary", result.Narrative)
	// the structured rule-based assessment is still computed and returned
	assert.True(t, result.Assessment.Anomalous)
}

func TestAnalyzeGeneratorFailuresAllFallBack(t *testing.T) {
	testCases := []struct {
		name   string
		client *fakeGenerator
	}{
		{name: "missing credential", client: nil},
		{name: "backend unreachable", client: &fakeGenerator{err: fmt.Errorf("connection refused")}},
		{name: "empty response", client: &fakeGenerator{text: "   "}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var a *Assistant
			if tc.client == nil {
				a = NewAssistantWith(&fixedSource{samples: anomalousWindow()}, nil, testConfig(), zaptest.NewLogger(t))
			} else {
				a = NewAssistantWith(&fixedSource{samples: anomalousWindow()}, tc.client, testConfig(), zaptest.NewLogger(t))
			}

			result, err := a.Analyze(context.Background(), models.AnalysisRequest{
				Domain:       rules.DomainEngine,
				UseGenerator: true,
			})
			require.NoError(t, err, "generator failure must never surface as an error")

			assert.False(t, result.GeneratorUsed)
			assert.True(t, result.FellBack)
			assert.Equal(t, models.SourceRules, result.Assessment.Source)
			assert.True(t, strings.HasPrefix(result.Narrative, FallbackNote))
			assert.Contains(t, result.Narrative, "Possible bearing wear",
				"fallback substitutes the rule-based assessment")
		})
	}
}

func TestAnalyzeCondense(t *testing.T) {
	a := NewAssistantWith(&fixedSource{samples: anomalousWindow()}, nil, testConfig(), zaptest.NewLogger(t))

	result, err := a.Analyze(context.Background(), models.AnalysisRequest{
		Domain:   rules.DomainEngine,
		Condense: true,
	})
	require.NoError(t, err)

	lines := strings.Split(result.Narrative, "\n")
	assert.Equal(t, narrative.CondenseHeading, lines[0])
	assert.LessOrEqual(t, len(lines), 4, "condensed output is the heading plus at most three lines")
}

func TestAnalyzeEmptySource(t *testing.T) {
	a := NewAssistantWith(&fixedSource{}, nil, testConfig(), zaptest.NewLogger(t))

	result, err := a.Analyze(context.Background(), models.AnalysisRequest{Domain: rules.DomainEngine})
	require.NoError(t, err, "an empty sample sequence is never an error")

	assert.False(t, result.Assessment.Anomalous)
	assert.Equal(t, []string{rules.Engine.NoAnomalyFinding}, result.Assessment.Findings)
}

func TestAnalyzeUnknownDomain(t *testing.T) {
	a := NewAssistantWith(&fixedSource{}, nil, testConfig(), zaptest.NewLogger(t))

	_, err := a.Analyze(context.Background(), models.AnalysisRequest{Domain: "submarine"})
	require.Error(t, err)
	assert.ErrorIs(t, err, rules.ErrUnknownDomain)
}

func TestAnalyzeClampsWindow(t *testing.T) {
	a := NewAssistantWith(&fixedSource{samples: anomalousWindow()}, nil, testConfig(), zaptest.NewLogger(t))

	result, err := a.Analyze(context.Background(), models.AnalysisRequest{
		Domain:        rules.DomainEngine,
		WindowMinutes: 100000,
	})
	require.NoError(t, err)
	assert.Equal(t, 240, result.Request.WindowMinutes)

	result, err = a.Analyze(context.Background(), models.AnalysisRequest{Domain: rules.DomainEngine})
	require.NoError(t, err)
	assert.Equal(t, 60, result.Request.WindowMinutes, "zero window uses the configured default")
}

func TestSerializeWindow(t *testing.T) {
	window := anomalousWindow()[:2]
	out := serializeWindow(window, 20)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "timestamp,station,temperature,vibration,fault_code", lines[0],
		"metric columns are sorted for a stable layout")
	assert.Contains(t, lines[1], ",2,80,7.5,OK")

	assert.Equal(t, "(no samples in window)", serializeWindow(nil, 20))
}

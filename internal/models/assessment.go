package models

import "time"

// ETANotApplicable is the default time-to-attention before any rule fires.
const ETANotApplicable = "N/A"

// Assessment source markers.
const (
	SourceRules     = "rule-based"
	SourceGenerator = "generator"
)

// Assessment is the structured result of one analysis. Findings and
// Actions are parallel lists: the i-th action pairs with the i-th
// finding. Assessments are built fresh per request and never mutated
// after construction.
type Assessment struct {
	Domain          string    `json:"domain"`
	Station         string    `json:"station,omitempty"`
	Findings        []string  `json:"findings"`
	Actions         []string  `json:"actions"`
	TimeToAttention string    `json:"time_to_attention"`
	ClosingNote     string    `json:"closing_note"`
	RULDays         int       `json:"rul_days"`
	Anomalous       bool      `json:"anomalous"`
	Source          string    `json:"source"`
	EvaluatedAt     time.Time `json:"evaluated_at"`
	WindowSamples   int       `json:"window_samples"`
}

// AnalysisRequest bundles the inputs of one user-triggered analysis.
type AnalysisRequest struct {
	Domain        string `json:"domain"`
	Issue         string `json:"issue"`
	Station       string `json:"station,omitempty"`
	WindowMinutes int    `json:"window_minutes"`
	UseGenerator  bool   `json:"use_generator"`
	Condense      bool   `json:"condense"`
}

// AnalysisResult is what the orchestrator hands back to callers: the
// rule-based assessment plus the narrative actually shown to the user.
// When the external generator succeeded, Narrative holds its opaque
// text and GeneratorUsed is true; otherwise Narrative is the rendered
// rule-based assessment, with FellBack set if the generator was
// requested but unavailable.
type AnalysisResult struct {
	Request       AnalysisRequest `json:"request"`
	Assessment    Assessment      `json:"assessment"`
	Narrative     string          `json:"narrative"`
	GeneratorUsed bool            `json:"generator_used"`
	FellBack      bool            `json:"fell_back,omitempty"`
}

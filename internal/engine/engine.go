// Package engine evaluates a domain's threshold rules against one
// observation window and produces a structured assessment. Evaluation
// is pure: the same window and profile always yield an identical
// assessment.
package engine

import (
	"github.com/plantops/linesight/internal/models"
	"github.com/plantops/linesight/internal/rules"
)

// Evaluate runs the profile's rules in declared order over the window.
// Each firing rule appends its finding/action pair. The first firing
// rule with a non-empty time-to-attention sets the assessment's ETA;
// later rules never overwrite it. When nothing fires the assessment
// carries exactly the profile's no-anomaly sentinel pair.
func Evaluate(profile rules.Profile, window []models.SensorSample) models.Assessment {
	a := models.Assessment{
		Domain:          profile.Domain,
		TimeToAttention: models.ETANotApplicable,
		ClosingNote:     profile.ClosingNote,
		Source:          models.SourceRules,
		WindowSamples:   len(window),
	}
	if len(window) > 0 {
		a.Station = window[len(window)-1].Station
		a.EvaluatedAt = window[len(window)-1].Timestamp
	}

	for _, r := range profile.Rules {
		if !fires(r, profile, window) {
			continue
		}
		a.Findings = append(a.Findings, r.Finding)
		a.Actions = append(a.Actions, r.Action)
		if a.TimeToAttention == models.ETANotApplicable && r.TimeToAttention != "" {
			a.TimeToAttention = r.TimeToAttention
		}
		if r.RULDays > 0 && (a.RULDays == 0 || r.RULDays < a.RULDays) {
			a.RULDays = r.RULDays
		}
	}

	if len(a.Findings) == 0 {
		a.Findings = []string{profile.NoAnomalyFinding}
		a.Actions = []string{profile.NoAnomalyAction}
		a.TimeToAttention = profile.NoAnomalyETA
		a.RULDays = profile.NoAnomalyRULDays
		return a
	}

	a.Anomalous = true
	if a.RULDays == 0 {
		a.RULDays = profile.NoAnomalyRULDays
	}
	return a
}

// fires evaluates one rule's predicate. An absent aggregate (empty
// window, metric missing from every sample) means the rule does not
// fire; it is never an error.
func fires(r rules.ThresholdRule, profile rules.Profile, window []models.SensorSample) bool {
	n := profile.Trailing(r)
	switch r.Comparison {
	case rules.FaultPresent:
		return FaultPresent(window, r.FaultCode, n)
	case rules.GreaterThan:
		mean, ok := TrailingMean(window, r.Metric, n)
		return ok && mean > r.Threshold
	case rules.LessThan:
		mean, ok := TrailingMean(window, r.Metric, n)
		return ok && mean < r.Threshold
	}
	return false
}

package rules

import "fmt"

// Comparison selects how a rule's aggregate is checked against its
// threshold. FaultPresent rules ignore the threshold and fire when the
// fault code appears anywhere in the trailing slice.
type Comparison string

const (
	GreaterThan  Comparison = ">"
	LessThan     Comparison = "<"
	FaultPresent Comparison = "=="
)

func (c Comparison) valid() bool {
	switch c {
	case GreaterThan, LessThan, FaultPresent:
		return true
	}
	return false
}

// ThresholdRule is one declarative check. Rules are data, not code:
// the engine evaluates them in declared order, and the first firing
// rule with a non-empty TimeToAttention sets the assessment's ETA.
type ThresholdRule struct {
	Metric          string
	FaultCode       string
	Comparison      Comparison
	Threshold       float64
	TrailingCount   int // 0 means "scan the whole window" (fault rules only)
	Finding         string
	Action          string
	TimeToAttention string
	RULDays         int
}

// Validate surfaces malformed rule configuration at startup rather
// than as a per-request failure.
func (r ThresholdRule) Validate() error {
	if !r.Comparison.valid() {
		return fmt.Errorf("rule %q: unsupported comparison %q", r.name(), r.Comparison)
	}
	if r.Comparison == FaultPresent {
		if r.FaultCode == "" {
			return fmt.Errorf("fault rule: empty fault code")
		}
	} else {
		if r.Metric == "" {
			return fmt.Errorf("threshold rule: empty metric name")
		}
		if r.TrailingCount < 0 {
			return fmt.Errorf("rule %q: negative trailing count", r.Metric)
		}
	}
	if r.Finding == "" {
		return fmt.Errorf("rule %q: missing finding message", r.name())
	}
	if r.Action == "" {
		return fmt.Errorf("rule %q: missing action message", r.name())
	}
	return nil
}

func (r ThresholdRule) name() string {
	if r.Comparison == FaultPresent {
		return r.FaultCode
	}
	return r.Metric
}

// Profile is one domain's complete rule configuration: the ordered
// rule table plus the sentinel texts used when nothing fires.
type Profile struct {
	Domain           string
	Rules            []ThresholdRule
	TrailingCount    int // default trailing count for rules that leave theirs at 0
	NoAnomalyFinding string
	NoAnomalyAction  string
	NoAnomalyETA     string
	NoAnomalyRULDays int
	ClosingNote      string
	ActionsHeading   string
	RoleFraming      string
}

// Validate checks the profile and every rule in it.
func (p Profile) Validate() error {
	if p.Domain == "" {
		return fmt.Errorf("profile: empty domain id")
	}
	if p.TrailingCount <= 0 {
		return fmt.Errorf("profile %s: trailing count must be positive", p.Domain)
	}
	if p.NoAnomalyFinding == "" || p.NoAnomalyAction == "" {
		return fmt.Errorf("profile %s: missing no-anomaly sentinel messages", p.Domain)
	}
	for i, r := range p.Rules {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("profile %s, rule %d: %w", p.Domain, i, err)
		}
	}
	return nil
}

// Trailing returns the effective trailing count for a metric rule.
func (p Profile) Trailing(r ThresholdRule) int {
	if r.TrailingCount > 0 {
		return r.TrailingCount
	}
	if r.Comparison == FaultPresent {
		// fault rules default to scanning the whole window
		return 0
	}
	return p.TrailingCount
}

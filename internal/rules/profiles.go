package rules

import (
	"errors"
	"fmt"
)

// Domain identifiers for the built-in profiles.
const (
	DomainEngine     = "engine"
	DomainAviation   = "aviation"
	DomainHealthcare = "healthcare"
)

// Engine is the engine test-line profile: high-vibration bearing wear,
// thermal stress, and the E42 drive fault.
var Engine = Profile{
	Domain:        DomainEngine,
	TrailingCount: 20,
	Rules: []ThresholdRule{
		{
			Metric:          "vibration",
			Comparison:      GreaterThan,
			Threshold:       7.0,
			Finding:         "Possible bearing wear or misalignment (high vibration).",
			Action:          "Schedule bearing inspection within next 24–48 hours; reduce RPM by 10% temporarily.",
			TimeToAttention: "Likely failure within 3–5 days if untreated.",
			RULDays:         4,
		},
		{
			Metric:          "temperature",
			Comparison:      GreaterThan,
			Threshold:       85,
			Finding:         "Thermal stress risk (elevated operating temperature).",
			Action:          "Check cooling flow, filters; verify ambient airflow; consider load balancing.",
			TimeToAttention: "Heat-related degradation possible in 1–2 weeks if persistent.",
			RULDays:         10,
		},
		{
			FaultCode:  "E42",
			Comparison: FaultPresent,
			Finding:    "Repeat fault E42 (drive anomaly) detected.",
			Action:     "Run diagnostic on drive controller; check power quality and cables.",
		},
	},
	NoAnomalyFinding: "No critical anomalies in the last window; continue normal monitoring.",
	NoAnomalyAction:  "Maintain routine checks; set alert thresholds for vibration >7 and temp >85°C.",
	NoAnomalyETA:     "No imminent failure indicated.",
	NoAnomalyRULDays: 30,
	ClosingNote:      "Map this to a maintenance playbook and capture fix as a reusable component.",
	ActionsHeading:   "Recommended Actions (next 24–48h)",
	RoleFraming: "You are a maintenance engineer. Summarize anomalies from the data, " +
		"estimate risk and time-to-failure, and propose concrete next actions. " +
		"Be concise and actionable. Use bullet points.",
}

// Aviation is the turnaround/ground-ops engine profile.
var Aviation = Profile{
	Domain:        DomainAviation,
	TrailingCount: 12,
	Rules: []ThresholdRule{
		{
			Metric:          "engine_vibration",
			Comparison:      GreaterThan,
			Threshold:       7.0,
			Finding:         "Vibration high – potential fan/LP spool imbalance.",
			Action:          "Run borescope if persists; balance check on next ground slot.",
			TimeToAttention: "Likely failure within 3–5 days if untreated.",
			RULDays:         4,
		},
		{
			Metric:          "egt",
			Comparison:      GreaterThan,
			Threshold:       620,
			Finding:         "EGT trending hot – check bleed/FADEC trims.",
			Action:          "Verify cooling/bleed; calibrate sensors in line with MEL.",
			TimeToAttention: "Heat-related degradation possible in 1–2 weeks if persistent.",
			RULDays:         10,
		},
		{
			FaultCode:     "E42",
			Comparison:    FaultPresent,
			TrailingCount: 12,
			Finding:       "Fault E42 observed – transient drive anomaly.",
			Action:        "Pull quick access recorder; inspect harness/connector.",
		},
	},
	NoAnomalyFinding: "No critical anomaly in last hour.",
	NoAnomalyAction:  "Continue normal ops; set alert thresholds Vib>7.0, EGT>620°C.",
	NoAnomalyETA:     "No imminent failure indicated.",
	NoAnomalyRULDays: 30,
	ClosingNote:      "Capture the read-out against MTTR and technical-delay metrics.",
	ActionsHeading:   "Next 1–2 Actions",
	RoleFraming: "You are an aircraft line maintenance engineer. Summarize anomalies from " +
		"the data, estimate risk and time-to-failure, and propose concrete next actions. " +
		"Be concise and actionable. Use bullet points.",
}

// Healthcare is the MRI cryo-system profile.
var Healthcare = Profile{
	Domain:        DomainHealthcare,
	TrailingCount: 18,
	Rules: []ThresholdRule{
		{
			Metric:          "magnet_temp",
			Comparison:      GreaterThan,
			Threshold:       4.6,
			Finding:         "Magnet temp trending high (cooling efficiency risk).",
			Action:          "Check cryo-cooler and room HVAC; inspect chiller loop.",
			TimeToAttention: "Cooling degradation possible within days if persistent.",
			RULDays:         7,
		},
		{
			Metric:          "helium_level",
			Comparison:      LessThan,
			Threshold:       75,
			Finding:         "Helium level trending low (quench risk if ignored).",
			Action:          "Plan top-up; verify boil-off rate and seals.",
			TimeToAttention: "Top-up needed within 1–2 weeks to avoid quench risk.",
			RULDays:         10,
		},
		{
			FaultCode:     "CRYO_WARN",
			Comparison:    FaultPresent,
			TrailingCount: 18,
			Finding:       "CRYO_WARN observed – intermittent cryo warning.",
			Action:        "Run OEM diagnostics; validate sensor calibration.",
		},
	},
	NoAnomalyFinding: "No critical anomaly in last 90 minutes.",
	NoAnomalyAction:  "Continue monitoring; alerts at Temp>4.6 K, He<75%.",
	NoAnomalyETA:     "No imminent failure indicated.",
	NoAnomalyRULDays: 30,
	ClosingNote:      "Log the scan against equipment uptime and cancellation metrics.",
	ActionsHeading:   "Next 1–2 Actions",
	RoleFraming: "You are a medical equipment service engineer. Summarize anomalies from " +
		"the data, estimate risk and time-to-failure, and propose concrete next actions. " +
		"Be concise and actionable. Use bullet points.",
}

var builtin = map[string]Profile{
	DomainEngine:     Engine,
	DomainAviation:   Aviation,
	DomainHealthcare: Healthcare,
}

// ErrUnknownDomain marks a request for a domain with no built-in
// profile, so callers can tell bad input from downstream failures.
var ErrUnknownDomain = errors.New("unknown domain")

// Lookup returns the built-in profile for a domain id.
func Lookup(domain string) (Profile, error) {
	p, ok := builtin[domain]
	if !ok {
		return Profile{}, fmt.Errorf("%w %q", ErrUnknownDomain, domain)
	}
	return p, nil
}

// Domains lists the available built-in domain ids.
func Domains() []string {
	return []string{DomainEngine, DomainAviation, DomainHealthcare}
}

// ValidateAll checks every built-in profile. Called once at startup.
func ValidateAll() error {
	for _, p := range builtin {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	return nil
}

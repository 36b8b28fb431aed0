package models

import "time"

// FaultOK is the sentinel fault code meaning "no fault recorded".
const FaultOK = "OK"

// SensorSample is one observation from a station or unit. Samples are
// immutable once produced; Metrics maps metric name to its reading.
type SensorSample struct {
	Timestamp time.Time          `json:"timestamp"`
	Station   string             `json:"station"`
	Metrics   map[string]float64 `json:"metrics"`
	FaultCode string             `json:"fault_code,omitempty"`
}

// HasFault reports whether the sample carries the given fault code.
func (s SensorSample) HasFault(code string) bool {
	return s.FaultCode == code && code != FaultOK
}

// Metric returns the named reading and whether it is present.
func (s SensorSample) Metric(name string) (float64, bool) {
	v, ok := s.Metrics[name]
	return v, ok
}

package engine

import (
	"time"

	"github.com/plantops/linesight/internal/models"
)

// Window returns the contiguous suffix of samples whose timestamp lies
// in [latest-duration, latest], where latest is the last timestamp
// present. Samples must already be ordered non-decreasing by time. An
// empty input yields an empty window; a duration covering the whole
// span yields every sample. Never errors.
func Window(samples []models.SensorSample, duration time.Duration) []models.SensorSample {
	if len(samples) == 0 {
		return nil
	}
	latest := samples[len(samples)-1].Timestamp
	cutoff := latest.Add(-duration)
	for i, s := range samples {
		if !s.Timestamp.Before(cutoff) {
			return samples[i:]
		}
	}
	return samples[len(samples):]
}

// trailing returns the last n samples of the window, or all of them
// when fewer than n exist. n == 0 means the whole window.
func trailing(window []models.SensorSample, n int) []models.SensorSample {
	if n <= 0 || n >= len(window) {
		return window
	}
	return window[len(window)-n:]
}

// TrailingMean computes the arithmetic mean of a metric over the last
// n samples of the window. The second return is false when no sample
// in the slice carries the metric, so callers can treat the aggregate
// as absent instead of propagating NaN.
func TrailingMean(window []models.SensorSample, metric string, n int) (float64, bool) {
	slice := trailing(window, n)
	var sum float64
	var count int
	for _, s := range slice {
		if v, ok := s.Metric(metric); ok {
			sum += v
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}

// FaultPresent reports whether the fault code appears anywhere in the
// last n samples of the window (existence check, not a mean).
func FaultPresent(window []models.SensorSample, code string, n int) bool {
	for _, s := range trailing(window, n) {
		if s.HasFault(code) {
			return true
		}
	}
	return false
}

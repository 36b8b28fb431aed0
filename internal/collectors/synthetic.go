package collectors

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/plantops/linesight/internal/models"
	"github.com/plantops/linesight/internal/rules"
)

// Synthetic generates a deterministic toy sample series for a domain,
// used whenever no CSV file or remote endpoint is configured. The
// engine series is a fixed dataset; aviation and healthcare draw
// clipped normal series from the given seed, so the same seed always
// yields the same window.
func Synthetic(domain string, end time.Time, seed int64) []models.SensorSample {
	switch domain {
	case rules.DomainAviation:
		return syntheticAviation(end, seed)
	case rules.DomainHealthcare:
		return syntheticHealthcare(end, seed)
	default:
		return syntheticEngine()
	}
}

// syntheticEngine returns the fixed test-line fallback series: sixteen
// five-minute readings across three stations with two E42 faults.
func syntheticEngine() []models.SensorSample {
	start := time.Date(2025, 8, 29, 8, 0, 0, 0, time.UTC)
	stations := []int{1, 2, 2, 2, 1, 2, 3, 2, 1, 3, 2, 1, 3, 2, 1, 3}
	vibration := []float64{4.1, 5.0, 7.5, 7.2, 4.8, 7.9, 5.5, 7.1, 4.2, 5.8, 7.6, 4.0, 5.4, 7.3, 4.3, 5.6}
	temperature := []float64{74, 78, 86, 88, 80, 90, 82, 89, 76, 83, 92, 75, 81, 91, 77, 82}
	faults := map[int]string{2: "E42", 5: "E42"}

	samples := make([]models.SensorSample, len(stations))
	for i := range stations {
		fault := models.FaultOK
		if f, ok := faults[i]; ok {
			fault = f
		}
		samples[i] = models.SensorSample{
			Timestamp: start.Add(time.Duration(i) * 5 * time.Minute),
			Station:   strconv.Itoa(stations[i]),
			Metrics: map[string]float64{
				"vibration":   vibration[i],
				"temperature": temperature[i],
			},
			FaultCode: fault,
		}
	}
	return samples
}

func syntheticAviation(end time.Time, seed int64) []models.SensorSample {
	rng := rand.New(rand.NewSource(seed))
	return series(end, 60*time.Minute, "ENG-1", rng, []channel{
		{name: "engine_vibration", mean: 5.5, stddev: 0.8, min: 3.5, max: 9.5},
		{name: "egt", mean: 560, stddev: 30, min: 480, max: 650},
	}, "E42", 0.10)
}

func syntheticHealthcare(end time.Time, seed int64) []models.SensorSample {
	rng := rand.New(rand.NewSource(seed))
	return series(end, 90*time.Minute, "MRI-1", rng, []channel{
		{name: "magnet_temp", mean: 4.2, stddev: 0.25, min: 3.6, max: 5.2},
		{name: "helium_level", mean: 82, stddev: 4, min: 65, max: 95},
	}, "CRYO_WARN", 0.08)
}

type channel struct {
	name   string
	mean   float64
	stddev float64
	min    float64
	max    float64
}

func series(end time.Time, span time.Duration, station string, rng *rand.Rand, channels []channel, faultCode string, faultProb float64) []models.SensorSample {
	const step = 5 * time.Minute
	n := int(span/step) + 1
	start := end.Add(-span)

	samples := make([]models.SensorSample, n)
	for i := 0; i < n; i++ {
		metrics := make(map[string]float64, len(channels))
		for _, c := range channels {
			metrics[c.name] = clip(rng.NormFloat64()*c.stddev+c.mean, c.min, c.max)
		}
		fault := models.FaultOK
		if rng.Float64() < faultProb {
			fault = faultCode
		}
		samples[i] = models.SensorSample{
			Timestamp: start.Add(time.Duration(i) * step),
			Station:   station,
			Metrics:   metrics,
			FaultCode: fault,
		}
	}
	return samples
}

func clip(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Package collectors produces the ordered sample sequences the engine
// consumes: CSV files, deterministic synthetic series, or a remote
// telemetry endpoint. The engine does not care which produced them.
package collectors

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/plantops/linesight/internal/models"
)

// timestamp layouts accepted in sensor CSVs, tried in order.
var csvTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// LoadCSV reads sensor samples from a CSV file. The header must carry
// a "timestamp" column; "station" (or "unit") and "fault_code" (or
// "error_code") are optional, and every remaining column is parsed as
// a numeric metric. Samples are returned sorted by timestamp.
func LoadCSV(path string) ([]models.SensorSample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sensor log: %w", err)
	}
	defer f.Close()

	return ParseCSV(f)
}

// ParseCSV parses sensor samples from CSV content.
func ParseCSV(r io.Reader) ([]models.SensorSample, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	tsCol, stationCol, faultCol := -1, -1, -1
	for i, name := range header {
		switch name {
		case "timestamp":
			tsCol = i
		case "station", "unit":
			stationCol = i
		case "fault_code", "error_code":
			faultCol = i
		}
	}
	if tsCol < 0 {
		return nil, fmt.Errorf("CSV header missing timestamp column")
	}

	var samples []models.SensorSample
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}

		ts, err := parseTimestamp(record[tsCol])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		sample := models.SensorSample{
			Timestamp: ts,
			Metrics:   make(map[string]float64),
			FaultCode: models.FaultOK,
		}
		for i, field := range record {
			switch i {
			case tsCol:
			case stationCol:
				sample.Station = field
			case faultCol:
				if field != "" {
					sample.FaultCode = field
				}
			default:
				v, err := strconv.ParseFloat(field, 64)
				if err != nil {
					return nil, fmt.Errorf("line %d, column %q: %w", line, header[i], err)
				}
				sample.Metrics[header[i]] = v
			}
		}
		samples = append(samples, sample)
	}

	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].Timestamp.Before(samples[j].Timestamp)
	})

	return samples, nil
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range csvTimeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

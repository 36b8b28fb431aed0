package collectors

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/plantops/linesight/internal/config"
	"github.com/plantops/linesight/internal/models"
)

// RemoteCollector fetches sensor samples as JSON from a telemetry
// endpoint. The endpoint returns an ordered array of samples for the
// requested domain.
type RemoteCollector struct {
	baseURL string
	client  *http.Client
}

func NewRemoteCollector(cfg *config.Config) *RemoteCollector {
	timeout := cfg.Data.RemoteTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &RemoteCollector{
		baseURL: cfg.Data.RemoteURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (r *RemoteCollector) Samples(ctx context.Context, domain string) ([]models.SensorSample, error) {
	url := fmt.Sprintf("%s/api/v1/samples?domain=%s", r.baseURL, domain)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch samples: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("telemetry endpoint returned status %d", resp.StatusCode)
	}

	var samples []models.SensorSample
	if err := json.NewDecoder(resp.Body).Decode(&samples); err != nil {
		return nil, fmt.Errorf("failed to decode samples: %w", err)
	}

	return samples, nil
}

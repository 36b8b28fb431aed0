package collectors

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/plantops/linesight/internal/config"
	"github.com/plantops/linesight/internal/models"
)

// Source is a stable ordered sequence of samples for a domain.
type Source interface {
	Samples(ctx context.Context, domain string) ([]models.SensorSample, error)
}

// NewSource builds the sample source selected by configuration.
func NewSource(cfg *config.Config, logger *zap.Logger) (Source, error) {
	switch cfg.Data.Source {
	case "file", "":
		return &FileSource{
			path:   cfg.Data.CSVPath,
			seed:   cfg.Data.SyntheticSeed,
			logger: logger,
		}, nil
	case "synthetic":
		return &SyntheticSource{seed: cfg.Data.SyntheticSeed}, nil
	case "remote":
		if cfg.Data.RemoteURL == "" {
			return nil, fmt.Errorf("remote sample source requires data.remote_url")
		}
		return NewRemoteCollector(cfg), nil
	default:
		return nil, fmt.Errorf("unknown sample source %q", cfg.Data.Source)
	}
}

// FileSource reads the configured CSV, falling back to the synthetic
// series when the file is missing so an analysis never fails for lack
// of data.
type FileSource struct {
	path   string
	seed   int64
	logger *zap.Logger
}

func (f *FileSource) Samples(ctx context.Context, domain string) ([]models.SensorSample, error) {
	if _, err := os.Stat(f.path); err != nil {
		f.logger.Warn("sensor log missing, using synthetic series",
			zap.String("path", f.path),
			zap.String("domain", domain),
		)
		return Synthetic(domain, time.Now().UTC().Truncate(time.Minute), f.seed), nil
	}
	return LoadCSV(f.path)
}

// SyntheticSource always generates the toy series for the domain.
type SyntheticSource struct {
	seed int64
}

func (s *SyntheticSource) Samples(ctx context.Context, domain string) ([]models.SensorSample, error) {
	return Synthetic(domain, time.Now().UTC().Truncate(time.Minute), s.seed), nil
}

var _ Source = (*RemoteCollector)(nil)

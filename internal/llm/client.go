package llm

import (
	"context"
	"fmt"

	"github.com/plantops/linesight/internal/config"
)

// Client is the narrative-generation capability. Generate returns the
// backend's opaque free text; any failure (missing key, unreachable
// backend, empty response) surfaces as an error so the caller can
// substitute the rule-based assessment.
type Client interface {
	Generate(ctx context.Context, system, user string) (string, error)
}

// NewClient picks the concrete backend once at configuration time.
func NewClient(cfg *config.Config) (Client, error) {
	switch cfg.LLM.Provider {
	case "anthropic":
		return NewAnthropicClient(cfg)
	case "openai":
		return NewOpenAIClient(cfg)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", cfg.LLM.Provider)
	}
}

// Package llm talks to the configured text-generation service. Callers hand
// it a prompt and get text back; everything that can go wrong upstream
// (transport, HTTP errors, blank replies) collapses into ErrUnavailable so
// components above never see raw transport failures.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shelfmark/core/internal/config"
)

// ErrUnavailable means the generation service could not be reached or did not
// return usable output.
var ErrUnavailable = errors.New("generation service unavailable")

// Generator produces text from a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// New builds the provider selected by config.
func New(cfg config.AIConfig) (Generator, error) {
	switch cfg.Provider {
	case "ollama":
		return newOllamaClient(cfg), nil
	case "openai":
		return newOpenAIClient(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported generation provider %q", cfg.Provider)
	}
}

// DecodeJSON decodes a JSON object out of a model reply, tolerating code
// fences and surrounding prose. It fails softly: callers decide whether a
// busted reply is an error or a degraded outcome.
func DecodeJSON(raw string, out interface{}) error {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```JSON")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	if err := json.Unmarshal([]byte(cleaned), out); err == nil {
		return nil
	}

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start >= 0 && end > start {
		if err := json.Unmarshal([]byte(cleaned[start:end+1]), out); err == nil {
			return nil
		}
	}
	return fmt.Errorf("invalid JSON in generation reply")
}

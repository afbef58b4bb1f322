package llm

import (
	"context"
	"fmt"
	"strings"
)

// Engine is one generative-text provider. GenerateOnce issues a single
// request against a single model; retry on rate limits and fallback across
// models live in RetryOn429 and Generate.
type Engine interface {
	Name() string
	Candidates() []string
	GenerateOnce(ctx context.Context, model, prompt string) (string, error)
	ListModels(ctx context.Context) ([]string, error)
}

type Engines struct {
	Gemini Engine
	OpenAI Engine
}

func (e *Engines) GetEngine(provider string) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "gemini":
		return e.Gemini, nil
	case "gpt", "openai":
		return e.OpenAI, nil
	default:
		return nil, fmt.Errorf("unknown provider %q; use 'gemini' or 'gpt'", provider)
	}
}

// CandidateModels builds the ordered list of models to attempt: the
// configured model first when set, then the fixed fallbacks, duplicates
// dropped.
func CandidateModels(preferred string, fallbacks ...string) []string {
	out := make([]string, 0, len(fallbacks)+1)
	seen := make(map[string]bool, len(fallbacks)+1)
	for _, m := range append([]string{preferred}, fallbacks...) {
		m = strings.TrimSpace(m)
		if m == "" || seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	return out
}

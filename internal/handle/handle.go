package handle

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/mmohamedd-cyber/ai-report-generator/internal/config"
	"github.com/mmohamedd-cyber/ai-report-generator/internal/llm"
)

type Handle struct {
	engs   *llm.Engines
	cfg    *config.Config
	policy llm.RetryPolicy
}

func New(engs *llm.Engines, cfg *config.Config) *Handle {
	return &Handle{
		engs:   engs,
		cfg:    cfg,
		policy: llm.DefaultRetryPolicy(),
	}
}

// WithRetryPolicy overrides the rate-limit retry schedule (e.g., instant
// sleeps in tests).
func (d *Handle) WithRetryPolicy(p llm.RetryPolicy) *Handle {
	d.policy = p
	return d
}

// engine resolves a per-request provider override, falling back to the
// configured default.
func (d *Handle) engine(provider string) (llm.Engine, error) {
	if strings.TrimSpace(provider) == "" {
		provider = d.cfg.Provider
	}
	return d.engs.GetEngine(provider)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

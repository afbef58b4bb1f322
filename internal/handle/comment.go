package handle

import (
	"context"
	"encoding/json"
	"log"
	"mime"
	"net/http"
	"time"

	"github.com/mmohamedd-cyber/ai-report-generator/internal/llm"
	"github.com/mmohamedd-cyber/ai-report-generator/internal/report"
)

// requestBudget caps one inbound request across every candidate model and
// backoff sleep. Individual provider calls are cut shorter by the engine
// client timeout.
const requestBudget = 70 * time.Second

const modelsHint = "GET /api/models lists the models available to this key"

func (d *Handle) Comment(w http.ResponseWriter, r *http.Request) {
	ct, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || ct != "application/json" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Content-Type must be application/json"})
		return
	}

	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "bad json: " + err.Error()})
		return
	}

	provider, _ := body["provider"].(string)
	engine, err := d.engine(provider)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
		return
	}

	req := report.Sanitize(body)
	prompt := report.BuildPrompt(req)

	ctx, cancel := context.WithTimeout(r.Context(), requestBudget)
	defer cancel()

	res, err := llm.Generate(ctx, engine, prompt, d.policy)
	if err != nil {
		writeError(w, err, modelsHint)
		return
	}

	comment := report.StripDigits(res.Text)
	log.Printf("comment generated: provider=%s model=%s chars=%d", engine.Name(), res.Model, len(comment))
	writeJSON(w, http.StatusOK, map[string]any{"comment": comment})
}

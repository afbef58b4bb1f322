package handle

import (
	"context"
	"net/http"

	"github.com/mmohamedd-cyber/ai-report-generator/internal/llm"
)

const modelsNote = "set GEMINI_MODEL or OPENAI_MODEL to change the preferred model"

func (d *Handle) Models(w http.ResponseWriter, r *http.Request) {
	engine, err := d.engine(r.URL.Query().Get("provider"))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestBudget)
	defer cancel()

	var names []string
	err = llm.RetryOn429(d.policy, func() error {
		var lerr error
		names, lerr = engine.ListModels(ctx)
		return lerr
	})
	if err != nil {
		writeError(w, err, "")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"models": names,
		"note":   modelsNote,
	})
}

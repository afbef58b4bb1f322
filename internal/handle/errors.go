package handle

import (
	"errors"
	"log"
	"net/http"

	"github.com/mmohamedd-cyber/ai-report-generator/internal/llm"
)

// writeError maps engine failures onto the response. Provider statuses are
// mirrored along with the provider's own payload; a missing credential is
// the operator's problem, so it reports as 500 without touching the network.
func writeError(w http.ResponseWriter, err error, hint string) {
	var ue *llm.UpstreamError
	switch {
	case errors.Is(err, llm.ErrNoCredential):
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
	case errors.As(err, &ue):
		body := map[string]any{
			"error":  ue.Error(),
			"status": ue.StatusCode,
			"data":   ue.Payload,
		}
		if ue.Model != "" {
			body["model"] = ue.Model
		}
		if hint != "" {
			body["hint"] = hint
		}
		writeJSON(w, ue.StatusCode, body)
	default:
		log.Printf("internal error: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error":  "internal error",
			"detail": err.Error(),
		})
	}
}

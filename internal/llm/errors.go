package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNoCredential marks a call refused locally because no API key is
// configured. The refusal must happen before any network I/O.
var ErrNoCredential = errors.New("credential not configured")

// UpstreamError is a provider reply with a non-2xx status. Handlers mirror
// StatusCode back to the client and attach Payload for diagnosability.
type UpstreamError struct {
	Provider   string
	Model      string
	StatusCode int
	Payload    any
}

func (e *UpstreamError) Error() string {
	if e.Model != "" {
		return fmt.Sprintf("%s %s: upstream status %d", e.Provider, e.Model, e.StatusCode)
	}
	return fmt.Sprintf("%s: upstream status %d", e.Provider, e.StatusCode)
}

// ErrorPayload decodes a provider error body. Bodies that are not JSON
// objects are kept verbatim under a "raw" key rather than dropped.
func ErrorPayload(body []byte) any {
	var m map[string]any
	if err := json.Unmarshal(body, &m); err != nil || m == nil {
		return map[string]any{"raw": strings.TrimSpace(string(body))}
	}
	return m
}

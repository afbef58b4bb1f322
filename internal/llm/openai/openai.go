package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mmohamedd-cyber/ai-report-generator/internal/llm"
)

const defaultBaseURL = "https://api.openai.com"

var fallbackModels = []string{"gpt-4.1-mini", "gpt-4o-mini"}

// Engine talks to the Responses API. Auth is always the Bearer header;
// OpenAI has no query-parameter mode.
type Engine struct {
	APIKey  string
	Model   string
	BaseURL string

	httpc *http.Client
}

func New(apiKey, model string) *Engine {
	return &Engine{
		APIKey:  strings.TrimSpace(apiKey),
		Model:   strings.TrimSpace(model),
		BaseURL: defaultBaseURL,
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (e *Engine) WithHTTPClient(c *http.Client) *Engine {
	if c != nil {
		e.httpc = c
	}
	return e
}

func (e *Engine) WithBaseURL(base string) *Engine {
	e.BaseURL = strings.TrimRight(base, "/")
	return e
}

func (e *Engine) Name() string { return "gpt" }

func (e *Engine) Candidates() []string {
	return llm.CandidateModels(e.Model, fallbackModels...)
}

func (e *Engine) GenerateOnce(ctx context.Context, model, prompt string) (string, error) {
	if e.APIKey == "" {
		return "", fmt.Errorf("%w: OPENAI_API_KEY missing", llm.ErrNoCredential)
	}

	body := map[string]any{
		"model": model,
		"input": []any{
			map[string]any{
				"role": "user",
				"content": []any{
					map[string]any{"type": "input_text", "text": prompt},
				},
			},
		},
		"temperature": 0.7,
	}
	payload, _ := json.Marshal(body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.BaseURL+"/v1/responses", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("openai: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.APIKey)

	resp, err := e.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("openai: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &llm.UpstreamError{
			Provider:   e.Name(),
			Model:      model,
			StatusCode: resp.StatusCode,
			Payload:    llm.ErrorPayload(raw),
		}
	}
	return llm.ExtractText(raw), nil
}

func (e *Engine) ListModels(ctx context.Context) ([]string, error) {
	if e.APIKey == "" {
		return nil, fmt.Errorf("%w: OPENAI_API_KEY missing", llm.ErrNoCredential)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.BaseURL+"/v1/models", nil)
	if err != nil {
		return nil, fmt.Errorf("openai: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+e.APIKey)

	resp, err := e.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("openai: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &llm.UpstreamError{
			Provider:   e.Name(),
			StatusCode: resp.StatusCode,
			Payload:    llm.ErrorPayload(raw),
		}
	}

	var env struct {
		Data []struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("openai: parse model list: %w", err)
	}
	names := make([]string, 0, len(env.Data))
	for _, m := range env.Data {
		if m.ID != "" {
			names = append(names, m.ID)
		}
	}
	return names, nil
}

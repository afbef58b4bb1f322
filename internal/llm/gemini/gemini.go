package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/mmohamedd-cyber/ai-report-generator/internal/llm"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

// Auth modes for generateContent calls. Google accepts the key either as a
// query parameter or as the x-goog-api-key header.
const (
	AuthQuery  = "query"
	AuthHeader = "header"
)

var fallbackModels = []string{"gemini-2.5-flash", "gemini-2.0-flash", "gemini-1.5-flash"}

type Engine struct {
	APIKey   string
	Model    string
	AuthMode string
	BaseURL  string

	httpc *http.Client
}

func New(apiKey, model string) *Engine {
	return &Engine{
		APIKey:   strings.TrimSpace(apiKey),
		Model:    strings.TrimSpace(model),
		AuthMode: AuthQuery,
		BaseURL:  defaultBaseURL,
		httpc:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (e *Engine) WithHTTPClient(c *http.Client) *Engine {
	e.httpc = c
	return e
}

func (e *Engine) WithAuthMode(mode string) *Engine {
	if mode == AuthHeader {
		e.AuthMode = AuthHeader
	} else {
		e.AuthMode = AuthQuery
	}
	return e
}

func (e *Engine) WithBaseURL(base string) *Engine {
	e.BaseURL = strings.TrimRight(base, "/")
	return e
}

func (e *Engine) Name() string { return "gemini" }

func (e *Engine) Candidates() []string {
	return llm.CandidateModels(e.Model, fallbackModels...)
}

// GenerateOnce runs a single generateContent call against one model. Rate
// limits are not retried here; the caller owns that.
func (e *Engine) GenerateOnce(ctx context.Context, model, prompt string) (string, error) {
	if e.APIKey == "" {
		return "", fmt.Errorf("%w: GEMINI_API_KEY missing", llm.ErrNoCredential)
	}

	body := map[string]any{
		"contents": []map[string]any{
			{"parts": []map[string]any{{"text": prompt}}},
		},
		"generationConfig": map[string]any{
			"temperature": 0.7,
		},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("gemini: marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", e.BaseURL, model)
	if e.AuthMode == AuthQuery {
		endpoint += "?key=" + url.QueryEscape(e.APIKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("gemini: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if e.AuthMode == AuthHeader {
		req.Header.Set("x-goog-api-key", e.APIKey)
	}

	resp, err := e.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini: %w", redactQuery(err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("gemini: read response: %w", err)
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

// ListModels returns the model names the provider advertises, via the
// official SDK rather than the raw REST surface.
func (e *Engine) ListModels(ctx context.Context) ([]string, error) {
	if e.APIKey == "" {
		return nil, fmt.Errorf("%w: GEMINI_API_KEY missing", llm.ErrNoCredential)
	}

	cl, err := genai.NewClient(ctx, option.WithAPIKey(e.APIKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: new client: %w", err)
	}
	defer cl.Close()

	var names []string
	it := cl.ListModels(ctx)
	for {
		m, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			var gerr *googleapi.Error
			if errors.As(err, &gerr) {
				return nil, &llm.UpstreamError{
					Provider:   e.Name(),
					StatusCode: gerr.Code,
					Payload:    llm.ErrorPayload([]byte(gerr.Body)),
				}
			}
			return nil, fmt.Errorf("gemini: list models: %w", err)
		}
		names = append(names, m.Name)
	}
	return names, nil
}

// redactQuery strips the query string from transport errors. url.Error
// echoes the full request URL, which in query auth mode carries the key.
func redactQuery(err error) error {
	var uerr *url.Error
	if !errors.As(err, &uerr) {
		return err
	}
	if u, perr := url.Parse(uerr.URL); perr == nil && u.RawQuery != "" {
		u.RawQuery = ""
		uerr.URL = u.String()
	}
	return err
}

package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mmohamedd-cyber/ai-report-generator/internal/llm"
)

func TestGenerateOnceSendsResponsesRequest(t *testing.T) {
	var gotPath, gotAuth, gotModel, gotText string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		var body struct {
			Model string `json:"model"`
			Input []struct {
				Content []struct {
					Type string `json:"type"`
					Text string `json:"text"`
				} `json:"content"`
			} `json:"input"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
			gotModel = body.Model
			if len(body.Input) > 0 && len(body.Input[0].Content) > 0 {
				gotText = body.Input[0].Content[0].Text
			}
		}
		w.Write([]byte(`{"output_text": "Omar keeps improving."}`))
	}))
	defer srv.Close()

	e := New("sk-test", "gpt-4.1-mini").WithBaseURL(srv.URL)
	text, err := e.GenerateOnce(context.Background(), "gpt-4.1-mini", "Write the comment now.")
	if err != nil {
		t.Fatalf("GenerateOnce: %v", err)
	}
	if text != "Omar keeps improving." {
		t.Errorf("text = %q", text)
	}
	if gotPath != "/v1/responses" {
		t.Errorf("path = %q", gotPath)
	}
	if gotAuth != "Bearer sk-test" {
		t.Errorf("auth = %q", gotAuth)
	}
	if gotModel != "gpt-4.1-mini" {
		t.Errorf("model = %q", gotModel)
	}
	if gotText != "Write the comment now." {
		t.Errorf("prompt = %q", gotText)
	}
}

func TestGenerateOnceUpstreamStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"type": "rate_limit_exceeded"}}`))
	}))
	defer srv.Close()

	e := New("sk-test", "").WithBaseURL(srv.URL)
	_, err := e.GenerateOnce(context.Background(), "gpt-4.1-mini", "p")

	var ue *llm.UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("err = %v, want UpstreamError", err)
	}
	if ue.StatusCode != 429 || ue.Provider != "gpt" || ue.Model != "gpt-4.1-mini" {
		t.Errorf("got %+v", ue)
	}
}

type countingTransport struct{ calls int }

func (c *countingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	c.calls++
	return nil, errors.New("no network in this test")
}

func TestGenerateOnceMissingKey(t *testing.T) {
	tr := &countingTransport{}
	e := New("", "").WithHTTPClient(&http.Client{Transport: tr})

	_, err := e.GenerateOnce(context.Background(), "gpt-4.1-mini", "p")
	if !errors.Is(err, llm.ErrNoCredential) {
		t.Fatalf("err = %v, want ErrNoCredential", err)
	}
	if tr.calls != 0 {
		t.Errorf("made %d network calls without a key", tr.calls)
	}
}

func TestListModels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/models" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer sk-test" {
			t.Errorf("auth = %q", r.Header.Get("Authorization"))
		}
		w.Write([]byte(`{"data": [{"id": "gpt-4.1-mini"}, {"id": "gpt-4o-mini"}, {"id": ""}]}`))
	}))
	defer srv.Close()

	e := New("sk-test", "").WithBaseURL(srv.URL)
	names, err := e.ListModels(context.Background())
	if err != nil {
		t.Fatalf("ListModels: %v", err)
	}
	want := []string{"gpt-4.1-mini", "gpt-4o-mini"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Errorf("names = %v", names)
	}
}

func TestListModelsUpstreamStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": {"code": "invalid_api_key"}}`))
	}))
	defer srv.Close()

	e := New("sk-bad", "").WithBaseURL(srv.URL)
	_, err := e.ListModels(context.Background())

	var ue *llm.UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("err = %v, want UpstreamError", err)
	}
	if ue.StatusCode != 401 || ue.Model != "" {
		t.Errorf("got %+v", ue)
	}
}

func TestCandidatesDefaults(t *testing.T) {
	got := New("sk-test", "").Candidates()
	if strings.Join(got, ",") != strings.Join(fallbackModels, ",") {
		t.Errorf("got %v, want %v", got, fallbackModels)
	}

	got = New("sk-test", "gpt-4o-mini").Candidates()
	want := []string{"gpt-4o-mini", "gpt-4.1-mini"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("got %v, want %v", got, want)
	}
}

package llm

import (
	"encoding/json"
	"strings"
)

// Provider response shapes differ: Gemini nests text under
// candidates[].content.parts[], the Responses API under output/output_text.
// ExtractText tries each known shape in order; the first one yielding text
// wins, and an unrecognized body yields "" rather than an error.
func ExtractText(raw []byte) string {
	for _, extract := range []func([]byte) string{
		extractCandidatesText,
		extractResponsesText,
	} {
		if s := strings.TrimSpace(extract(raw)); s != "" {
			return s
		}
	}
	return ""
}

func extractCandidatesText(raw []byte) string {
	var env struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return ""
	}
	var b strings.Builder
	for _, c := range env.Candidates {
		for _, p := range c.Content.Parts {
			b.WriteString(p.Text)
		}
	}
	return b.String()
}

// extractResponsesText prefers the `output_text` convenience field and
// otherwise concatenates the text segments of output[i].content[j].
func extractResponsesText(raw []byte) string {
	type content struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}
	type output struct {
		Content []content `json:"content"`
	}
	var env struct {
		Output     []output `json:"output"`
		OutputText string   `json:"output_text"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return ""
	}
	if s := strings.TrimSpace(env.OutputText); s != "" {
		return s
	}
	var b strings.Builder
	for _, o := range env.Output {
		for _, c := range o.Content {
			if strings.TrimSpace(c.Text) == "" {
				continue
			}
			// both `output_text` and `text` are seen in practice
			if c.Type == "output_text" || c.Type == "text" || c.Type == "" {
				if b.Len() > 0 {
					b.WriteByte('\n')
				}
				b.WriteString(c.Text)
			}
		}
	}
	return b.String()
}

package report

import (
	"strconv"
	"strings"
)

// maxTopics caps every topic list; anything past the first ten surviving
// entries is ignored.
const maxTopics = 10

type CommentRequest struct {
	StudentFirstName string   `json:"studentFirstName"`
	StrengthTopics   []string `json:"strengthTopics"`
	DevelopingTopics []string `json:"developingTopics"`
	FocusTopics      []string `json:"focusTopics"`
}

// Sanitize builds a well-formed CommentRequest from whatever JSON object the
// client sent. Missing or mistyped fields degrade to defaults, never to an
// error.
func Sanitize(body map[string]any) CommentRequest {
	req := CommentRequest{
		StudentFirstName: coerceString(body["studentFirstName"]),
		StrengthTopics:   coerceTopics(body["strengthTopics"]),
		DevelopingTopics: coerceTopics(body["developingTopics"]),
		FocusTopics:      coerceTopics(body["focusTopics"]),
	}
	if req.StudentFirstName == "" {
		req.StudentFirstName = "Student"
	}
	return req
}

func coerceString(v any) string {
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return ""
	}
}

// coerceTopics keeps the first maxTopics non-empty trimmed entries, in order.
func coerceTopics(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(arr))
	for _, el := range arr {
		s := coerceString(el)
		if s == "" {
			continue
		}
		out = append(out, s)
		if len(out) == maxTopics {
			break
		}
	}
	return out
}

// StripDigits removes every 0-9 from generated text and trims the result.
// The prompt already forbids numbers; this holds the line when the model
// ignores it.
func StripDigits(s string) string {
	return strings.TrimSpace(strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return -1
		}
		return r
	}, s))
}

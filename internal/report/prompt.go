package report

import (
	"encoding/json"
	"strings"
)

const promptRules = `You are an experienced primary school teacher writing a short report-card comment about a student.

Rules:
- Write 2 to 4 sentences in warm, encouraging, professional language.
- Mention the student's first name exactly once; refer back with "they" or rephrase.
- Do not use digits, marks, percentages or scores of any kind.
- Only mention topics present in the data below; do not invent achievements.
`

const focusRule = `- Start with the student's strengths, then present the focus topics constructively as next steps.
`

const noFocusRule = `- There are no focus topics this term: praise the student's strengths and encourage them to keep up the effort.
`

// BuildPrompt renders the instruction block and the sanitized student data
// into the single text blob sent to the model. Same request, same prompt.
func BuildPrompt(req CommentRequest) string {
	var b strings.Builder
	b.WriteString(promptRules)
	if len(req.FocusTopics) == 0 {
		b.WriteString(noFocusRule)
	} else {
		b.WriteString(focusRule)
	}

	data, _ := json.Marshal(req)
	b.WriteString("\nSTUDENT_JSON:\n")
	b.Write(data)
	b.WriteString("\n\nWrite the comment now.")
	return b.String()
}

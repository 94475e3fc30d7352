package inference

import (
	"fmt"
	"strings"
)

// Prompts shared by the remote providers. Each asks for a strict JSON
// shape so responses can be parsed without heuristics; parsing lives in
// parse.go.

const systemPrompt = "You are an ESG disclosure analysis engine. " +
	"Answer only with the exact JSON shape requested, no prose, no code fences."

func summarizePrompt(text string, minLen, maxLen int) string {
	return fmt.Sprintf(`Summarize the following sustainability report text in a single paragraph of between %d and %d words. Respond with the summary text only.

Text:
%s`, minLen, maxLen, text)
}

func sentimentPrompt(text string) string {
	return fmt.Sprintf(`Classify the sentiment of the following text. Respond with JSON: {"label": "POSITIVE" or "NEGATIVE", "score": confidence between 0 and 1}.

Text:
%s`, text)
}

func labelsPrompt(text string, labels []string) string {
	quoted := make([]string, len(labels))
	for i, l := range labels {
		quoted[i] = fmt.Sprintf("%q", l)
	}
	return fmt.Sprintf(`Score how strongly the following text relates to each candidate label. Scores are independent confidences between 0 and 1; several labels may score high. Respond with JSON: [{"label": ..., "score": ...}, ...] covering every candidate exactly once.

Candidates: [%s]

Text:
%s`, strings.Join(quoted, ", "), text)
}

func answerPrompt(question, contextText string) string {
	return fmt.Sprintf(`Answer the question using only the context. Respond with JSON: {"answer": "yes" or "no" or "unclear", "score": confidence between 0 and 1}.

Question: %s

Context:
%s`, question, contextText)
}

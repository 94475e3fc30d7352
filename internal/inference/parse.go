package inference

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/greenstamp/greenstamp/internal/model"
)

// stripFences removes markdown code fences some models wrap JSON in
// despite instructions
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
	}
	return strings.TrimSpace(s)
}

func parseLabeledScore(raw string) (model.LabeledScore, error) {
	var out model.LabeledScore
	if err := json.Unmarshal([]byte(stripFences(raw)), &out); err != nil {
		return model.LabeledScore{}, fmt.Errorf("unusable sentiment response %q: %w", raw, err)
	}
	out.Label = strings.ToUpper(strings.TrimSpace(out.Label))
	out.Score = clamp01(out.Score)
	return out, nil
}

// parseLabeledScores parses a multi-label response and keeps only the
// requested candidates, clamped to [0,1]. Candidates the model omitted
// simply stay unscored.
func parseLabeledScores(raw string, candidates []string) ([]model.LabeledScore, error) {
	var scored []model.LabeledScore
	if err := json.Unmarshal([]byte(stripFences(raw)), &scored); err != nil {
		return nil, fmt.Errorf("unusable classification response %q: %w", raw, err)
	}

	allowed := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		allowed[strings.ToLower(c)] = true
	}

	out := make([]model.LabeledScore, 0, len(scored))
	for _, ls := range scored {
		if !allowed[strings.ToLower(strings.TrimSpace(ls.Label))] {
			continue
		}
		out = append(out, model.LabeledScore{
			Label: strings.TrimSpace(ls.Label),
			Score: clamp01(ls.Score),
		})
	}
	return out, nil
}

func parseAnswer(raw string) (model.Answer, error) {
	var payload struct {
		Answer string  `json:"answer"`
		Score  float64 `json:"score"`
	}
	if err := json.Unmarshal([]byte(stripFences(raw)), &payload); err != nil {
		return model.Answer{}, fmt.Errorf("unusable answer response %q: %w", raw, err)
	}
	return model.Answer{
		Text:  strings.ToLower(strings.TrimSpace(payload.Answer)),
		Score: clamp01(payload.Score),
	}, nil
}

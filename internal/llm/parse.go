package llm

import (
	"encoding/json"
	"strings"

	"github.com/sevigo/review-crew/internal/core"
)

const (
	neutralScore = 5
	minScore     = 1
	maxScore     = 10
)

// evaluationPayload is the JSON shape the evaluation prompt asks for.
type evaluationPayload struct {
	Scores  map[string]json.Number `json:"scores"`
	Summary string                 `json:"summary"`
}

// parseEvaluation extracts dimension scores from the model's JSON response.
// It tolerates the usual model quirks: a wrapping code fence, a flat
// {dimension: score} object without the "scores" envelope, and scores emitted
// as floats or strings. The result always carries exactly the declared
// dimensions; anything missing or unparsable becomes the neutral midpoint.
func parseEvaluation(raw string, dims []string) (core.ScoreMap, string) {
	cleaned := stripMarkdownFence(raw)

	var payload evaluationPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil || payload.Scores == nil {
		// Some models skip the envelope and return {dimension: score, ...}.
		var flat map[string]json.Number
		if err := json.Unmarshal([]byte(cleaned), &flat); err != nil {
			return neutralScores(dims), ""
		}
		payload.Scores = flat
	}

	scores := make(core.ScoreMap, len(dims))
	for _, d := range dims {
		scores[d] = neutralScore
		if n, ok := payload.Scores[d]; ok {
			if f, err := n.Float64(); err == nil {
				scores[d] = clampScore(int(f))
			}
		}
	}
	return scores, strings.TrimSpace(payload.Summary)
}

func clampScore(s int) int {
	if s < minScore {
		return minScore
	}
	if s > maxScore {
		return maxScore
	}
	return s
}

// stripMarkdownFence removes a wrapping ```json ... ``` (or bare ```) fence
// that models frequently add around JSON output.
func stripMarkdownFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		// drop the language tag on the opening fence line
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

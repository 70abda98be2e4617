package openai

import (
	"encoding/json"
	"fmt"

	"github.com/zatekoja/nursematch/internal/domain/providers"
)

const rankingSystemPrompt = `You are a staffing coordinator for a home-care nursing platform. You rank nurse candidates against a patient request.

Consider, in rough order of importance: requested services against the candidate's services, requested expertise against expertiseTags, distance between the request location and the candidate location when both are present, availability overlap with the requested time window, rating weighted by reviewsCount, and urgency (urgent requests favor candidates in the same city). Avoid ties unless genuinely justified.

Return ONLY valid JSON with this schema:
{
  "results": [
    {"id": string (candidate id), "score": number (0 to 1), "reason": string (one short sentence)}
  ]
}
Rank every candidate you are given, highest score first. Do not invent candidate ids. Do not include any text outside the JSON object.`

// matchResultSchema is the strict output schema declared to the endpoint.
var matchResultSchema = map[string]interface{}{
	"type":                 "object",
	"additionalProperties": false,
	"required":             []string{"results"},
	"properties": map[string]interface{}{
		"results": map[string]interface{}{
			"type": "array",
			"items": map[string]interface{}{
				"type":                 "object",
				"additionalProperties": false,
				"required":             []string{"id", "score", "reason"},
				"properties": map[string]interface{}{
					"id":     map[string]interface{}{"type": "string"},
					"score":  map[string]interface{}{"type": "number", "minimum": 0, "maximum": 1},
					"reason": map[string]interface{}{"type": "string"},
				},
			},
		},
	},
}

func buildRankingUserPrompt(payload *providers.RankPayload) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal rank payload: %w", err)
	}
	return fmt.Sprintf(
		"Rank the candidates for this request. Respond with JSON only.\n\n%s",
		data,
	), nil
}

package services

import (
	"encoding/json"
	"sort"

	"github.com/zatekoja/nursematch/internal/domain/entities"
	apperrors "github.com/zatekoja/nursematch/pkg/errors"
	"github.com/zatekoja/nursematch/pkg/utils"
)

// maxParseExcerpt bounds the offending-text excerpt carried in
// malformed-response errors. The full payload never reaches logs or the
// caller.
const maxParseExcerpt = 160

type modelResponse struct {
	Results []modelResult `json:"results"`
}

type modelResult struct {
	ID     string   `json:"id"`
	Score  *float64 `json:"score"`
	Reason string   `json:"reason"`
}

// ParseRankedResults parses the model's textual JSON answer, sorts by
// descending score and resolves display names against the full candidate
// list. An id the model invented degrades to using the id itself as the
// name; it never raises an error.
func ParseRankedResults(text string, nurses []*entities.Nurse) ([]*entities.MatchResult, error) {
	var parsed modelResponse
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, apperrors.NewMalformedResponseError(
			"model returned invalid JSON: "+utils.TruncateForLog(text, maxParseExcerpt), err)
	}

	namesByID := make(map[string]string, len(nurses))
	for _, nurse := range nurses {
		namesByID[nurse.ID] = nurse.Name
	}

	results := make([]*entities.MatchResult, 0, len(parsed.Results))
	for _, item := range parsed.Results {
		result := &entities.MatchResult{
			ID:     item.ID,
			Score:  clampScore(item.Score),
			Reason: item.Reason,
			Name:   item.ID,
		}
		if name, ok := namesByID[item.ID]; ok {
			result.Name = name
		}
		results = append(results, result)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results, nil
}

// clampScore treats a missing score as 0 and bounds the rest to [0,1].
func clampScore(score *float64) float64 {
	if score == nil {
		return 0
	}
	switch {
	case *score < 0:
		return 0
	case *score > 1:
		return 1
	default:
		return *score
	}
}

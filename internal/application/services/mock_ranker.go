package services

import (
	"fmt"

	"github.com/zatekoja/nursematch/internal/domain/entities"
)

// mockScoreStep is the fixed score decrement between mock ranking
// positions.
const mockScoreStep = 0.15

// MockRank is the deterministic stand-in used when no live model endpoint
// is configured. It keeps the output contract of the model path: the first
// topK candidates in their existing order with strictly decreasing scores
// starting at 1.0, never negative. It performs no I/O and never fails for
// a non-empty candidate list.
func MockRank(req *entities.MatchRequest, nurses []*entities.Nurse) []*entities.MatchResult {
	limit := req.TopK
	if limit > len(nurses) {
		limit = len(nurses)
	}

	results := make([]*entities.MatchResult, 0, limit)
	for i := 0; i < limit; i++ {
		nurse := nurses[i]
		score := 1.0 - mockScoreStep*float64(i)
		if score < 0 {
			score = 0
		}
		results = append(results, &entities.MatchResult{
			ID:     nurse.ID,
			Score:  score,
			Reason: mockReason(nurse),
			Name:   nurse.Name,
		})
	}
	return results
}

func mockReason(nurse *entities.Nurse) string {
	service := "general care"
	if len(nurse.Services) > 0 {
		service = nurse.Services[0]
	}
	city := nurse.City
	if city == "" {
		city = "the requested area"
	}
	return fmt.Sprintf("Offers %s in %s", service, city)
}

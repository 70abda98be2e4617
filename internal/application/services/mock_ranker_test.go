package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/nursematch/internal/domain/entities"
)

func mockCandidates(n int) []*entities.Nurse {
	nurses := make([]*entities.Nurse, 0, n)
	for i := 0; i < n; i++ {
		nurses = append(nurses, &entities.Nurse{
			ID:       fmt.Sprintf("n-%03d", i+1),
			Name:     fmt.Sprintf("Nurse %d", i+1),
			City:     "Tel Aviv",
			Services: []string{"Wound Care"},
		})
	}
	return nurses
}

func TestMockRank_ReturnsMinOfTopKAndCandidates(t *testing.T) {
	req := &entities.MatchRequest{}
	req.Normalize()

	assert.Len(t, MockRank(req, mockCandidates(10)), 5)
	assert.Len(t, MockRank(req, mockCandidates(2)), 2)
	assert.Empty(t, MockRank(req, mockCandidates(0)))
}

func TestMockRank_ScoresAreDecreasingAndNonNegative(t *testing.T) {
	req := &entities.MatchRequest{TopK: 10}
	results := MockRank(req, mockCandidates(10))
	require.Len(t, results, 10)

	for i, result := range results {
		assert.GreaterOrEqual(t, result.Score, 0.0)
		assert.LessOrEqual(t, result.Score, 1.0)
		if i > 0 {
			assert.LessOrEqual(t, result.Score, results[i-1].Score)
		}
	}

	assert.Equal(t, 1.0, results[0].Score)
	// Position 7 would go negative (1.0 - 0.15*7) and is clamped.
	assert.Equal(t, 0.0, results[7].Score)
}

func TestMockRank_PreservesCandidateOrder(t *testing.T) {
	req := &entities.MatchRequest{TopK: 3}
	results := MockRank(req, mockCandidates(5))

	require.Len(t, results, 3)
	assert.Equal(t, "n-001", results[0].ID)
	assert.Equal(t, "n-002", results[1].ID)
	assert.Equal(t, "n-003", results[2].ID)
}

func TestMockRank_ReasonReferencesServiceAndCity(t *testing.T) {
	req := &entities.MatchRequest{TopK: 1}
	nurse := &entities.Nurse{ID: "n-1", Name: "Dana", City: "Haifa", Services: []string{"Palliative Care"}}

	results := MockRank(req, []*entities.Nurse{nurse})
	require.Len(t, results, 1)
	assert.Contains(t, results[0].Reason, "Palliative Care")
	assert.Contains(t, results[0].Reason, "Haifa")
}

func TestMockRank_HandlesMissingServiceAndCity(t *testing.T) {
	req := &entities.MatchRequest{TopK: 1}
	results := MockRank(req, []*entities.Nurse{{ID: "n-1", Name: "Dana"}})

	require.Len(t, results, 1)
	assert.NotEmpty(t, results[0].Reason)
}

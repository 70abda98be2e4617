package services

import (
	"time"

	"github.com/zatekoja/nursematch/internal/domain/entities"
	"github.com/zatekoja/nursematch/internal/domain/providers"
)

// BuildRankPayload projects a request and candidate list into the compact
// payload sent to the model. Only fields that matter for ranking are kept
// to bound token cost. Inputs are never mutated; every call produces a
// fresh projection.
func BuildRankPayload(req *entities.MatchRequest, nurses []*entities.Nurse) *providers.RankPayload {
	query := providers.RankQuery{
		City:           req.City,
		ServicesQuery:  coalesceSlice(req.ServicesQuery),
		ExpertiseQuery: coalesceSlice(req.ExpertiseQuery),
		Urgent:         req.Urgent,
		TopK:           req.TopK,
	}
	if req.Start != nil {
		query.Start = req.Start.Format(time.RFC3339)
	}
	if req.End != nil {
		query.End = req.End.Format(time.RFC3339)
	}
	if req.Location != nil {
		lat, lng := req.Location.Latitude, req.Location.Longitude
		query.Lat, query.Lng = &lat, &lng
	}

	candidates := make([]providers.RankCandidate, 0, len(nurses))
	for _, nurse := range nurses {
		candidate := providers.RankCandidate{
			ID:            nurse.ID,
			Name:          nurse.Name,
			City:          nurse.City,
			Rating:        nurse.Rating,
			ReviewsCount:  nurse.ReviewsCount,
			Services:      coalesceSlice(nurse.Services),
			ExpertiseTags: coalesceSlice(nurse.ExpertiseTags),
			Availability:  nurse.Availability,
		}
		if nurse.Location != nil {
			lat, lng := nurse.Location.Latitude, nurse.Location.Longitude
			candidate.Lat, candidate.Lng = &lat, &lng
		}
		candidates = append(candidates, candidate)
	}

	return &providers.RankPayload{
		Query:      query,
		Candidates: candidates,
	}
}

func coalesceSlice(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

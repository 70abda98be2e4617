package services

import (
	"context"
	"errors"

	"github.com/zatekoja/nursematch/internal/domain/entities"
	"github.com/zatekoja/nursematch/internal/domain/providers"
	"github.com/zatekoja/nursematch/internal/infrastructure/observability"
)

// CandidateSource supplies the full candidate list for a request.
type CandidateSource interface {
	LoadNurses(ctx context.Context) []*entities.Nurse
}

// MatchService runs the ranking pipeline: resolve candidates, build the
// compact payload, call the model with retries, validate and rank the
// answer. When no live endpoint is configured it uses the deterministic
// mock ranker instead.
type MatchService struct {
	source CandidateSource
	ranker providers.RankingProvider
}

// NewMatchService creates a match service. A nil ranker means no live
// model endpoint is configured.
func NewMatchService(source CandidateSource, ranker providers.RankingProvider) *MatchService {
	return &MatchService{
		source: source,
		ranker: ranker,
	}
}

// Match ranks candidates for the request. The result list is sorted by
// descending score and sliced to topK after re-sorting; nothing about a
// request persists past the call.
func (s *MatchService) Match(ctx context.Context, req *entities.MatchRequest) ([]*entities.MatchResult, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	nurses := s.source.LoadNurses(ctx)

	if s.ranker == nil {
		return MockRank(req, nurses), nil
	}

	payload := BuildRankPayload(req, nurses)

	text, err := s.ranker.RankNurses(ctx, payload)
	if err != nil {
		if errors.Is(err, providers.ErrRankerNotConfigured) {
			observability.LoggerFromContext(ctx).Info().
				Msg("model ranker not configured, using mock ranking")
			return MockRank(req, nurses), nil
		}
		return nil, err
	}

	// Name resolution uses the full list, not the truncated set the model
	// saw.
	results, err := ParseRankedResults(text, nurses)
	if err != nil {
		return nil, err
	}

	if len(results) > req.TopK {
		results = results[:req.TopK]
	}
	return results, nil
}

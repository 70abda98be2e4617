package providers

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrRankerNotConfigured indicates no live model endpoint is configured.
// This is not a failure: callers fall back to the deterministic ranker.
var ErrRankerNotConfigured = errors.New("model ranker is not configured")

// RankingProvider ranks candidates against a request using an external
// model endpoint. Implementations own transport, retries and response
// normalization; the returned text is the model's raw JSON answer.
type RankingProvider interface {
	// RankNurses sends the compact payload to the model and returns the
	// extracted textual JSON answer for validation downstream.
	RankNurses(ctx context.Context, payload *RankPayload) (string, error)
}

// RankPayload is the compact, schema-conformant projection sent to the
// model. It carries only fields needed for ranking to bound token cost.
type RankPayload struct {
	Query      RankQuery       `json:"query"`
	Candidates []RankCandidate `json:"candidates"`
}

// RankQuery is the request portion of the payload.
type RankQuery struct {
	City           string   `json:"city,omitempty"`
	ServicesQuery  []string `json:"servicesQuery"`
	ExpertiseQuery []string `json:"expertiseQuery"`
	Start          string   `json:"start,omitempty"`
	End            string   `json:"end,omitempty"`
	Lat            *float64 `json:"lat,omitempty"`
	Lng            *float64 `json:"lng,omitempty"`
	Urgent         bool     `json:"urgent"`
	TopK           int      `json:"topK"`
}

// RankCandidate is the candidate portion of the payload.
type RankCandidate struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	City          string          `json:"city,omitempty"`
	Rating        float64         `json:"rating"`
	ReviewsCount  int             `json:"reviewsCount"`
	Services      []string        `json:"services"`
	ExpertiseTags []string        `json:"expertiseTags"`
	Lat           *float64        `json:"lat,omitempty"`
	Lng           *float64        `json:"lng,omitempty"`
	Availability  json.RawMessage `json:"availability,omitempty"`
}

package entities

import (
	"time"

	apperrors "github.com/zatekoja/nursematch/pkg/errors"
)

const defaultTopK = 5

// MatchRequest is a patient staffing request to rank candidates against.
type MatchRequest struct {
	City           string     `json:"city,omitempty"`
	ServicesQuery  []string   `json:"servicesQuery,omitempty"`
	Service        string     `json:"service,omitempty"` // legacy single-service field
	ExpertiseQuery []string   `json:"expertiseQuery,omitempty"`
	Start          *time.Time `json:"start,omitempty"`
	End            *time.Time `json:"end,omitempty"`
	Location       *Location  `json:"location,omitempty"`
	Urgent         bool       `json:"urgent,omitempty"`
	TopK           int        `json:"topK,omitempty"`
}

// Normalize applies defaults and folds the legacy single-service field into
// servicesQuery. It never mutates slices shared with the caller.
func (r *MatchRequest) Normalize() {
	if len(r.ServicesQuery) == 0 && r.Service != "" {
		r.ServicesQuery = []string{r.Service}
	}
	if r.ServicesQuery == nil {
		r.ServicesQuery = []string{}
	}
	if r.ExpertiseQuery == nil {
		r.ExpertiseQuery = []string{}
	}
	if r.TopK <= 0 {
		r.TopK = defaultTopK
	}
}

// Validate checks pair fields that must be present together.
func (r *MatchRequest) Validate() error {
	if (r.Start == nil) != (r.End == nil) {
		return apperrors.NewValidationError("start and end must be provided together")
	}
	if r.Start != nil && r.End != nil && r.End.Before(*r.Start) {
		return apperrors.NewValidationError("end must not precede start")
	}
	if r.TopK < 0 {
		return apperrors.NewValidationError("topK must be positive")
	}
	return nil
}

// MatchResult is a single ranked candidate. Score is always in [0,1] and
// Name is resolved from the full candidate list, degrading to the raw id.
type MatchResult struct {
	ID     string  `json:"id"`
	Score  float64 `json:"score"`
	Reason string  `json:"reason"`
	Name   string  `json:"name"`
}

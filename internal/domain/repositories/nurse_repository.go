package repositories

import (
	"context"

	"github.com/zatekoja/nursematch/internal/domain/entities"
)

// NurseRepository loads the candidate list from a backing store.
type NurseRepository interface {
	// ListNurses returns all active candidates.
	ListNurses(ctx context.Context) ([]*entities.Nurse, error)

	// Count returns the number of candidate records in the store.
	Count(ctx context.Context) (int, error)

	// Ping verifies the store connection.
	Ping(ctx context.Context) error

	// Close releases the store handle.
	Close() error
}

package database

import (
	"context"
	"database/sql"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/lib/pq"
	"github.com/zatekoja/nursematch/internal/domain/entities"
	"github.com/zatekoja/nursematch/internal/domain/repositories"
	"github.com/zatekoja/nursematch/internal/infrastructure/clients/postgres"
	apperrors "github.com/zatekoja/nursematch/pkg/errors"
)

const nursesTable = "nurses"

// NurseAdapter implements candidate persistence in Postgres.
type NurseAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

var _ repositories.NurseRepository = (*NurseAdapter)(nil)

// NewNurseAdapter creates a new nurse adapter.
func NewNurseAdapter(client *postgres.Client) *NurseAdapter {
	return &NurseAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// ListNurses returns all active candidates ordered by id.
func (a *NurseAdapter) ListNurses(ctx context.Context) ([]*entities.Nurse, error) {
	query, args, err := a.db.From(nursesTable).
		Select(
			"id", "name", "city", "rating", "reviews_count",
			"services", "expertise_tags", "latitude", "longitude", "availability",
		).
		Where(goqu.Ex{"is_active": true}).
		Order(goqu.I("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build nurse list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list nurses", err)
	}
	defer rows.Close()

	nurses := []*entities.Nurse{}
	for rows.Next() {
		nurse := &entities.Nurse{}
		var (
			lat          sql.NullFloat64
			lng          sql.NullFloat64
			availability []byte
		)
		err := rows.Scan(
			&nurse.ID,
			&nurse.Name,
			&nurse.City,
			&nurse.Rating,
			&nurse.ReviewsCount,
			pq.Array(&nurse.Services),
			pq.Array(&nurse.ExpertiseTags),
			&lat,
			&lng,
			&availability,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan nurse", err)
		}
		if lat.Valid && lng.Valid {
			nurse.Location = &entities.Location{Latitude: lat.Float64, Longitude: lng.Float64}
		}
		if len(availability) > 0 {
			nurse.Availability = availability
		}
		nurses = append(nurses, nurse)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating nurses", err)
	}

	return nurses, nil
}

// Count returns the number of active candidate records.
func (a *NurseAdapter) Count(ctx context.Context) (int, error) {
	query, args, err := a.db.From(nursesTable).
		Select(goqu.COUNT("*")).
		Where(goqu.Ex{"is_active": true}).
		ToSQL()
	if err != nil {
		return 0, apperrors.NewInternalError("failed to build nurse count query", err)
	}

	var count int
	if err := a.client.DB().QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, apperrors.NewInternalError("failed to count nurses", err)
	}
	return count, nil
}

// Ping verifies the store connection.
func (a *NurseAdapter) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// Close releases the store handle.
func (a *NurseAdapter) Close() error {
	return a.client.Close()
}

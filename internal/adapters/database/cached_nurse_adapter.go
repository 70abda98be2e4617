package database

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"
	"github.com/zatekoja/nursematch/internal/domain/entities"
	"github.com/zatekoja/nursematch/internal/domain/providers"
	"github.com/zatekoja/nursematch/internal/domain/repositories"
)

// nurseListTTL keeps the candidate list cache short-lived; only the list
// read path is cached, never model responses.
const nurseListTTL = 60

const nurseListCacheKey = "nurses:list"

// CachedNurseAdapter wraps a NurseRepository with a read cache.
type CachedNurseAdapter struct {
	adapter repositories.NurseRepository
	cache   providers.CacheProvider
}

var _ repositories.NurseRepository = (*CachedNurseAdapter)(nil)

// NewCachedNurseAdapter creates a new cached nurse adapter.
func NewCachedNurseAdapter(adapter repositories.NurseRepository, cache providers.CacheProvider) *CachedNurseAdapter {
	return &CachedNurseAdapter{
		adapter: adapter,
		cache:   cache,
	}
}

// ListNurses returns the candidate list, served from cache when fresh.
func (a *CachedNurseAdapter) ListNurses(ctx context.Context) ([]*entities.Nurse, error) {
	if cached, err := a.cache.Get(ctx, nurseListCacheKey); err == nil {
		var nurses []*entities.Nurse
		if err := json.Unmarshal(cached, &nurses); err != nil {
			log.Warn().Err(err).Msg("failed to unmarshal cached nurse list")
		} else {
			return nurses, nil
		}
	}

	nurses, err := a.adapter.ListNurses(ctx)
	if err != nil {
		return nil, err
	}

	// Update cache asynchronously to avoid blocking the response.
	go func() {
		bgCtx := context.Background()
		if data, err := json.Marshal(nurses); err == nil {
			if err := a.cache.Set(bgCtx, nurseListCacheKey, data, nurseListTTL); err != nil {
				log.Warn().Err(err).Msg("failed to cache nurse list")
			}
		}
	}()

	return nurses, nil
}

// Count delegates to the backing store.
func (a *CachedNurseAdapter) Count(ctx context.Context) (int, error) {
	return a.adapter.Count(ctx)
}

// Ping delegates to the backing store.
func (a *CachedNurseAdapter) Ping(ctx context.Context) error {
	return a.adapter.Ping(ctx)
}

// Close releases the backing store handle.
func (a *CachedNurseAdapter) Close() error {
	return a.adapter.Close()
}

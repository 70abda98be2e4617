package nursestore

import (
	"context"

	"github.com/zatekoja/nursematch/internal/adapters/database"
	"github.com/zatekoja/nursematch/internal/adapters/search"
	"github.com/zatekoja/nursematch/internal/domain/entities"
	"github.com/zatekoja/nursematch/internal/domain/providers"
	"github.com/zatekoja/nursematch/internal/domain/repositories"
	"github.com/zatekoja/nursematch/internal/infrastructure/clients/postgres"
	"github.com/zatekoja/nursematch/internal/infrastructure/clients/typesense"
	"github.com/zatekoja/nursematch/internal/infrastructure/observability"
	"github.com/zatekoja/nursematch/pkg/config"
)

// Kind identifies the selected candidate source.
type Kind string

const (
	// KindDisabled serves candidates from the bundled static file.
	KindDisabled Kind = "disabled"
	// KindPostgres serves candidates from the relational store.
	KindPostgres Kind = "postgres"
	// KindTypesense serves candidates from the document store.
	KindTypesense Kind = "typesense"
)

// Health is the resolver's status projection for external observability.
type Health struct {
	Enabled   bool   `json:"enabled"`
	Kind      string `json:"kind"`
	Connected bool   `json:"connected"`
	Records   int    `json:"records"`
	Reason    string `json:"reason,omitempty"`
}

// Resolver owns the candidate source selection and its connection state.
// It is constructed once at process start; selection is never per-request.
// LoadNurses never fails: any store problem falls back to the static file.
type Resolver struct {
	kind       Kind
	repo       repositories.NurseRepository
	static     []*entities.Nurse
	initReason string
}

// New builds a resolver from configuration. A store initialization failure
// degrades to the static file and records the reason; any handle opened
// before the failure is released.
func New(cfg *config.Config, cache providers.CacheProvider) *Resolver {
	resolver := &Resolver{
		kind:   KindDisabled,
		static: loadStatic(cfg.Nurses.StaticFile),
	}
	logger := observability.GetLogger()

	if !cfg.Nurses.StoreEnabled {
		logger.Info().Msg("nurse store disabled, serving static candidates")
		return resolver
	}

	kind := Kind(cfg.Nurses.StoreKind)
	switch kind {
	case KindPostgres:
		client, err := postgres.NewClient(&cfg.Database)
		if err != nil {
			resolver.initReason = err.Error()
			logger.Error().Err(err).Msg("postgres nurse store unavailable, serving static candidates")
			return resolver
		}
		resolver.attach(kind, database.NewNurseAdapter(client), cache)

	case KindTypesense:
		client, err := typesense.NewClient(&cfg.Typesense)
		if err != nil {
			resolver.initReason = err.Error()
			logger.Error().Err(err).Msg("typesense nurse store unavailable, serving static candidates")
			return resolver
		}
		adapter := search.NewTypesenseNurseAdapter(client)
		if err := adapter.InitSchema(context.Background()); err != nil {
			resolver.initReason = err.Error()
			logger.Error().Err(err).Msg("typesense schema init failed, serving static candidates")
			return resolver
		}
		resolver.attach(kind, adapter, cache)

	default:
		resolver.initReason = "unknown store kind: " + cfg.Nurses.StoreKind
		logger.Error().Str("kind", cfg.Nurses.StoreKind).Msg("unknown nurse store kind, serving static candidates")
	}

	return resolver
}

func (r *Resolver) attach(kind Kind, repo repositories.NurseRepository, cache providers.CacheProvider) {
	r.kind = kind
	if cache != nil {
		r.repo = database.NewCachedNurseAdapter(repo, cache)
		return
	}
	r.repo = repo
}

// LoadNurses returns the candidate list from the selected source, falling
// back to the static file on any store error. It never propagates store
// failures to the caller.
func (r *Resolver) LoadNurses(ctx context.Context) []*entities.Nurse {
	if r.repo == nil {
		return r.static
	}

	nurses, err := r.repo.ListNurses(ctx)
	if err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).
			Str("kind", string(r.kind)).
			Msg("nurse store query failed, serving static candidates")
		recordFallbackMetric(ctx, r.kind)
		return r.static
	}
	return nurses
}

// Health reports the resolver state without throwing.
func (r *Resolver) Health(ctx context.Context) Health {
	health := Health{
		Enabled: r.repo != nil,
		Kind:    string(r.kind),
		Reason:  r.initReason,
	}

	if r.repo == nil {
		health.Records = len(r.static)
		return health
	}

	if err := r.repo.Ping(ctx); err == nil {
		health.Connected = true
	}

	if count, err := r.repo.Count(ctx); err == nil {
		health.Records = count
	}

	return health
}

// Close releases the store handle, if any.
func (r *Resolver) Close() error {
	if r.repo == nil {
		return nil
	}
	return r.repo.Close()
}

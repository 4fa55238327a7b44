package datasources

import (
	"context"

	"github.com/Abotareq/imDb-sub000/internal/domain"
)

type EntityLister interface {
	ListEntities(ctx context.Context, filters domain.EntityFilters, options domain.EntityListOptions) ([]domain.Entity, error)
}

type EntityCounter interface {
	CountEntities(ctx context.Context, filters domain.EntityFilters) (int64, error)
}

type EntityFetcher interface {
	FetchEntity(ctx context.Context, entityID string) (domain.Entity, error)
}

type EntityCreator interface {
	CreateEntity(ctx context.Context, entity domain.Entity) error
}

type EntityUpdater interface {
	UpdateEntity(ctx context.Context, entity domain.Entity) error
}

type EntityDeleter interface {
	DeleteEntity(ctx context.Context, entityID string) error
}

// EntityRatingSetter writes the derived rating cache on an entity. The
// write is unconditional; it does not require the rating to have changed.
type EntityRatingSetter interface {
	SetEntityRating(ctx context.Context, entityID string, rating float64) error
}

// PreferenceMatchLister lists entities matching a type or containing a
// genre, excluding the given entity IDs, best-rated first.
type PreferenceMatchLister interface {
	ListEntitiesByPreference(
		ctx context.Context,
		entityType domain.EntityType,
		genre string,
		excludeEntityIDs []string,
		limit int,
	) ([]domain.Entity, error)
}

// TopRatedEntityLister lists the globally best-rated entities, newest
// first among ties, excluding the given entity IDs.
type TopRatedEntityLister interface {
	ListTopRatedEntities(ctx context.Context, excludeEntityIDs []string, limit int) ([]domain.Entity, error)
}

type EntityRepository interface {
	EntityLister
	EntityCounter
	EntityFetcher
	EntityCreator
	EntityUpdater
	EntityDeleter
	EntityRatingSetter
	PreferenceMatchLister
	TopRatedEntityLister
}

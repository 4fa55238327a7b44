package datasources

import (
	"context"

	"github.com/Abotareq/imDb-sub000/internal/domain"
)

type AwardLister interface {
	ListAwards(ctx context.Context, filters domain.AwardFilters, page, pageSize int) ([]domain.Award, error)
}

type AwardFetcher interface {
	FetchAward(ctx context.Context, awardID string) (domain.Award, error)
}

type AwardCreator interface {
	CreateAward(ctx context.Context, award domain.Award) error
}

type AwardUpdater interface {
	UpdateAward(ctx context.Context, award domain.Award) error
}

type AwardDeleter interface {
	DeleteAward(ctx context.Context, awardID string) error
}

type AwardRepository interface {
	AwardLister
	AwardFetcher
	AwardCreator
	AwardUpdater
	AwardDeleter
}

package datasources

import (
	"context"

	"github.com/Abotareq/imDb-sub000/internal/domain"
)

type PersonLister interface {
	ListPeople(ctx context.Context, filters domain.PersonFilters, page, pageSize int) ([]domain.Person, error)
}

type PersonFetcher interface {
	FetchPerson(ctx context.Context, personID string) (domain.Person, error)
}

type PersonCreator interface {
	CreatePerson(ctx context.Context, person domain.Person) error
}

type PersonUpdater interface {
	UpdatePerson(ctx context.Context, person domain.Person) error
}

type PersonDeleter interface {
	DeletePerson(ctx context.Context, personID string) error
}

type PersonRepository interface {
	PersonLister
	PersonFetcher
	PersonCreator
	PersonUpdater
	PersonDeleter
}

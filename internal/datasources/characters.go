package datasources

import (
	"context"

	"github.com/Abotareq/imDb-sub000/internal/domain"
)

type CharacterLister interface {
	ListCharacters(ctx context.Context, filters domain.CharacterFilters, page, pageSize int) ([]domain.Character, error)
}

type CharacterFetcher interface {
	FetchCharacter(ctx context.Context, characterID string) (domain.Character, error)
}

type CharacterCreator interface {
	CreateCharacter(ctx context.Context, character domain.Character) error
}

type CharacterUpdater interface {
	UpdateCharacter(ctx context.Context, character domain.Character) error
}

type CharacterDeleter interface {
	DeleteCharacter(ctx context.Context, characterID string) error
}

type CharacterRepository interface {
	CharacterLister
	CharacterFetcher
	CharacterCreator
	CharacterUpdater
	CharacterDeleter
}

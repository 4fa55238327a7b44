package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/huandu/go-sqlbuilder"

	"github.com/Abotareq/imDb-sub000/internal/domain"
)

var characterColumns = []string{"id", "name", "description", "created_at", "updated_at"}

func scanCharacter(row rowScanner) (domain.Character, error) {
	var (
		c           domain.Character
		description sql.NullString
	)

	if err := row.Scan(&c.ID, &c.Name, &description, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return domain.Character{}, err
	}

	c.Description = description.String
	return c, nil
}

func (r *Repository) ListCharacters(
	ctx context.Context,
	filters domain.CharacterFilters,
	page, pageSize int,
) ([]domain.Character, error) {
	sb := sqlbuilder.Select(characterColumns...)
	sb.From("characters")

	if filters.NameContains != "" {
		sb.Where(sb.Like("name", "%"+filters.NameContains+"%"))
	}
	sb.OrderBy("name")
	sb.Offset((page - 1) * pageSize)
	sb.Limit(pageSize)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running characters query: %w", err)
	}
	defer closeRows(rows)

	characters := []domain.Character{}
	for rows.Next() {
		c, err := scanCharacter(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning character: %w", err)
		}
		characters = append(characters, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating characters: %w", err)
	}

	return characters, nil
}

func (r *Repository) FetchCharacter(ctx context.Context, characterID string) (domain.Character, error) {
	sb := sqlbuilder.Select(characterColumns...)
	sb.From("characters")
	sb.Where(sb.Equal("id", characterID))

	query, args := sb.Build()
	c, err := scanCharacter(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Character{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Character{}, fmt.Errorf("fetching character: %w", err)
	}
	return c, nil
}

func (r *Repository) CreateCharacter(ctx context.Context, character domain.Character) error {
	ib := sqlbuilder.InsertInto("characters")
	ib.Cols(characterColumns...)
	ib.Values(
		character.ID, character.Name, character.Description,
		character.CreatedAt, character.UpdatedAt,
	)

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting character: %w", err)
	}
	return nil
}

func (r *Repository) UpdateCharacter(ctx context.Context, character domain.Character) error {
	ub := sqlbuilder.Update("characters")
	ub.Set(
		ub.Assign("name", character.Name),
		ub.Assign("description", character.Description),
		ub.Assign("updated_at", character.UpdatedAt),
	)
	ub.Where(ub.Equal("id", character.ID))

	query, args := ub.Build()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating character: %w", err)
	}

	if err := requireAffected(res); errors.Is(err, domain.ErrNotFound) {
		if _, fetchErr := r.FetchCharacter(ctx, character.ID); fetchErr != nil {
			return fetchErr
		}
	} else if err != nil {
		return err
	}
	return nil
}

func (r *Repository) DeleteCharacter(ctx context.Context, characterID string) error {
	del := sqlbuilder.DeleteFrom("characters")
	del.Where(del.Equal("id", characterID))

	query, args := del.Build()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("deleting character: %w", err)
	}
	return requireAffected(res)
}

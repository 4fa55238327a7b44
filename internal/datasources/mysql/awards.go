package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/huandu/go-sqlbuilder"

	"github.com/Abotareq/imDb-sub000/internal/domain"
)

var awardColumns = []string{
	"id", "name", "category", "year", "entity_id", "person_id", "created_at", "updated_at",
}

func scanAward(row rowScanner) (domain.Award, error) {
	var (
		a        domain.Award
		entityID sql.NullString
		personID sql.NullString
	)

	if err := row.Scan(
		&a.ID, &a.Name, &a.Category, &a.Year, &entityID, &personID,
		&a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return domain.Award{}, err
	}

	a.EntityID = entityID.String
	a.PersonID = personID.String
	return a, nil
}

func (r *Repository) ListAwards(
	ctx context.Context,
	filters domain.AwardFilters,
	page, pageSize int,
) ([]domain.Award, error) {
	sb := sqlbuilder.Select(awardColumns...)
	sb.From("awards")

	var conds []string
	if filters.Year > 0 {
		conds = append(conds, sb.Equal("year", filters.Year))
	}
	if filters.EntityID != "" {
		conds = append(conds, sb.Equal("entity_id", filters.EntityID))
	}
	if filters.PersonID != "" {
		conds = append(conds, sb.Equal("person_id", filters.PersonID))
	}
	if len(conds) > 0 {
		sb.Where(conds...)
	}

	sb.OrderBy("year DESC", "name")
	sb.Offset((page - 1) * pageSize)
	sb.Limit(pageSize)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running awards query: %w", err)
	}
	defer closeRows(rows)

	awards := []domain.Award{}
	for rows.Next() {
		a, err := scanAward(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning award: %w", err)
		}
		awards = append(awards, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating awards: %w", err)
	}

	return awards, nil
}

func (r *Repository) FetchAward(ctx context.Context, awardID string) (domain.Award, error) {
	sb := sqlbuilder.Select(awardColumns...)
	sb.From("awards")
	sb.Where(sb.Equal("id", awardID))

	query, args := sb.Build()
	a, err := scanAward(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Award{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Award{}, fmt.Errorf("fetching award: %w", err)
	}
	return a, nil
}

func (r *Repository) CreateAward(ctx context.Context, award domain.Award) error {
	ib := sqlbuilder.InsertInto("awards")
	ib.Cols(awardColumns...)
	ib.Values(
		award.ID, award.Name, award.Category, award.Year,
		nullableID(award.EntityID), nullableID(award.PersonID),
		award.CreatedAt, award.UpdatedAt,
	)

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting award: %w", err)
	}
	return nil
}

func (r *Repository) UpdateAward(ctx context.Context, award domain.Award) error {
	ub := sqlbuilder.Update("awards")
	ub.Set(
		ub.Assign("name", award.Name),
		ub.Assign("category", award.Category),
		ub.Assign("year", award.Year),
		ub.Assign("entity_id", nullableID(award.EntityID)),
		ub.Assign("person_id", nullableID(award.PersonID)),
		ub.Assign("updated_at", award.UpdatedAt),
	)
	ub.Where(ub.Equal("id", award.ID))

	query, args := ub.Build()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating award: %w", err)
	}

	if err := requireAffected(res); errors.Is(err, domain.ErrNotFound) {
		if _, fetchErr := r.FetchAward(ctx, award.ID); fetchErr != nil {
			return fetchErr
		}
	} else if err != nil {
		return err
	}
	return nil
}

func (r *Repository) DeleteAward(ctx context.Context, awardID string) error {
	del := sqlbuilder.DeleteFrom("awards")
	del.Where(del.Equal("id", awardID))

	query, args := del.Build()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("deleting award: %w", err)
	}
	return requireAffected(res)
}

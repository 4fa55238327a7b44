package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/huandu/go-sqlbuilder"

	"github.com/Abotareq/imDb-sub000/internal/domain"
)

var entityColumns = []string{
	"id", "type", "title", "description", "release_year", "poster_url",
	"rating", "genres", "directors", "cast_members", "seasons",
	"created_at", "updated_at",
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntity(row rowScanner) (domain.Entity, error) {
	var (
		e           domain.Entity
		description sql.NullString
		genres      []byte
		directors   []byte
		castMembers []byte
		seasons     []byte
	)

	if err := row.Scan(
		&e.ID, &e.Type, &e.Title, &description, &e.ReleaseYear, &e.PosterURL,
		&e.Rating, &genres, &directors, &castMembers, &seasons,
		&e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return domain.Entity{}, err
	}

	e.Description = description.String
	if err := unmarshalJSON(genres, &e.Genres); err != nil {
		return domain.Entity{}, err
	}
	if err := unmarshalJSON(directors, &e.Directors); err != nil {
		return domain.Entity{}, err
	}
	if err := unmarshalJSON(castMembers, &e.Cast); err != nil {
		return domain.Entity{}, err
	}
	if err := unmarshalJSON(seasons, &e.Seasons); err != nil {
		return domain.Entity{}, err
	}

	return e, nil
}

func buildEntityConditions(sb *sqlbuilder.SelectBuilder, filters domain.EntityFilters) []string {
	var conds []string

	if filters.Type != "" {
		conds = append(conds, sb.Equal("type", string(filters.Type)))
	}

	if filters.Genre != "" {
		conds = append(conds, genreContains(sb, filters.Genre))
	}

	if filters.TitleContains != "" {
		conds = append(conds, sb.Like("title", "%"+filters.TitleContains+"%"))
	}

	if filters.MinRating > 0 {
		conds = append(conds, sb.GreaterEqualThan("rating", filters.MinRating))
	}

	if filters.ReleaseYear > 0 {
		conds = append(conds, sb.Equal("release_year", filters.ReleaseYear))
	}

	return conds
}

// genreContains matches entities whose genres JSON array contains an
// element with the given name.
func genreContains(sb *sqlbuilder.SelectBuilder, genre string) string {
	return "JSON_SEARCH(genres, 'one', " + sb.Args.Add(genre) + ", NULL, '$[*].name') IS NOT NULL"
}

func (r *Repository) ListEntities(
	ctx context.Context,
	filters domain.EntityFilters,
	options domain.EntityListOptions,
) ([]domain.Entity, error) {
	sb := sqlbuilder.Select(entityColumns...)
	sb.From("entities")

	conds := buildEntityConditions(sb, filters)
	if len(conds) > 0 {
		sb.Where(conds...)
	}

	orderBy := options.OrderBy
	if orderBy == "" {
		orderBy = domain.EntityOrderingFieldCreatedAt
	}
	ordering := string(orderBy)
	if options.Desc {
		ordering += " DESC"
	}
	sb.OrderBy(ordering)
	sb.Offset((options.Page - 1) * options.PageSize)
	sb.Limit(options.PageSize)

	return r.queryEntities(ctx, sb)
}

func (r *Repository) queryEntities(ctx context.Context, sb *sqlbuilder.SelectBuilder) ([]domain.Entity, error) {
	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running entities query: %w", err)
	}
	defer closeRows(rows)

	entities := []domain.Entity{}
	for rows.Next() {
		e, err := scanEntity(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning entity: %w", err)
		}
		entities = append(entities, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entities: %w", err)
	}

	return entities, nil
}

func (r *Repository) CountEntities(ctx context.Context, filters domain.EntityFilters) (int64, error) {
	sb := sqlbuilder.Select("COUNT(*)")
	sb.From("entities")

	conds := buildEntityConditions(sb, filters)
	if len(conds) > 0 {
		sb.Where(conds...)
	}

	query, args := sb.Build()
	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting entities: %w", err)
	}
	return count, nil
}

func (r *Repository) FetchEntity(ctx context.Context, entityID string) (domain.Entity, error) {
	sb := sqlbuilder.Select(entityColumns...)
	sb.From("entities")
	sb.Where(sb.Equal("id", entityID))

	query, args := sb.Build()
	e, err := scanEntity(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Entity{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Entity{}, fmt.Errorf("fetching entity: %w", err)
	}
	return e, nil
}

func (r *Repository) CreateEntity(ctx context.Context, entity domain.Entity) error {
	genres, err := marshalJSON(entity.Genres)
	if err != nil {
		return err
	}
	directors, err := marshalJSON(entity.Directors)
	if err != nil {
		return err
	}
	castMembers, err := marshalJSON(entity.Cast)
	if err != nil {
		return err
	}
	seasons, err := marshalJSON(entity.Seasons)
	if err != nil {
		return err
	}

	ib := sqlbuilder.InsertInto("entities")
	ib.Cols(entityColumns...)
	ib.Values(
		entity.ID, string(entity.Type), entity.Title, entity.Description,
		entity.ReleaseYear, entity.PosterURL, entity.Rating,
		genres, directors, castMembers, seasons,
		entity.CreatedAt, entity.UpdatedAt,
	)

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting entity: %w", mapWriteErr(err))
	}
	return nil
}

func (r *Repository) UpdateEntity(ctx context.Context, entity domain.Entity) error {
	genres, err := marshalJSON(entity.Genres)
	if err != nil {
		return err
	}
	directors, err := marshalJSON(entity.Directors)
	if err != nil {
		return err
	}
	castMembers, err := marshalJSON(entity.Cast)
	if err != nil {
		return err
	}
	seasons, err := marshalJSON(entity.Seasons)
	if err != nil {
		return err
	}

	ub := sqlbuilder.Update("entities")
	ub.Set(
		ub.Assign("type", string(entity.Type)),
		ub.Assign("title", entity.Title),
		ub.Assign("description", entity.Description),
		ub.Assign("release_year", entity.ReleaseYear),
		ub.Assign("poster_url", entity.PosterURL),
		ub.Assign("genres", genres),
		ub.Assign("directors", directors),
		ub.Assign("cast_members", castMembers),
		ub.Assign("seasons", seasons),
		ub.Assign("updated_at", entity.UpdatedAt),
	)
	ub.Where(ub.Equal("id", entity.ID))

	query, args := ub.Build()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating entity: %w", mapWriteErr(err))
	}

	// Rows affected is zero both for a missing row and for a no-op update;
	// distinguish with an existence check only in the missing case.
	if err := requireAffected(res); errors.Is(err, domain.ErrNotFound) {
		if _, fetchErr := r.FetchEntity(ctx, entity.ID); fetchErr != nil {
			return fetchErr
		}
	} else if err != nil {
		return err
	}
	return nil
}

func (r *Repository) DeleteEntity(ctx context.Context, entityID string) error {
	del := sqlbuilder.DeleteFrom("entities")
	del.Where(del.Equal("id", entityID))

	query, args := del.Build()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("deleting entity: %w", err)
	}
	return requireAffected(res)
}

func (r *Repository) SetEntityRating(ctx context.Context, entityID string, rating float64) error {
	ub := sqlbuilder.Update("entities")
	ub.Set(ub.Assign("rating", rating))
	ub.Where(ub.Equal("id", entityID))

	query, args := ub.Build()
	// Deliberately no affected-rows check: the rating write is
	// unconditional and tolerates the entity having been deleted since the
	// triggering review operation started.
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("setting entity rating: %w", err)
	}
	return nil
}

func (r *Repository) ListEntitiesByPreference(
	ctx context.Context,
	entityType domain.EntityType,
	genre string,
	excludeEntityIDs []string,
	limit int,
) ([]domain.Entity, error) {
	if entityType == "" && genre == "" {
		return []domain.Entity{}, nil
	}

	sb := sqlbuilder.Select(entityColumns...)
	sb.From("entities")

	var matches []string
	if entityType != "" {
		matches = append(matches, sb.Equal("type", string(entityType)))
	}
	if genre != "" {
		matches = append(matches, genreContains(sb, genre))
	}

	conds := []string{sb.Or(matches...)}
	if len(excludeEntityIDs) > 0 {
		conds = append(conds, sb.NotIn("id", sqlbuilder.Flatten(excludeEntityIDs)...))
	}
	sb.Where(conds...)
	sb.OrderBy("rating DESC", "created_at DESC")
	sb.Limit(limit)

	return r.queryEntities(ctx, sb)
}

func (r *Repository) ListTopRatedEntities(
	ctx context.Context,
	excludeEntityIDs []string,
	limit int,
) ([]domain.Entity, error) {
	sb := sqlbuilder.Select(entityColumns...)
	sb.From("entities")

	if len(excludeEntityIDs) > 0 {
		sb.Where(sb.NotIn("id", sqlbuilder.Flatten(excludeEntityIDs)...))
	}
	sb.OrderBy("rating DESC", "created_at DESC")
	sb.Limit(limit)

	return r.queryEntities(ctx, sb)
}

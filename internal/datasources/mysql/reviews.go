package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/huandu/go-sqlbuilder"

	"github.com/Abotareq/imDb-sub000/internal/domain"
)

var reviewColumns = []string{
	"id", "user_id", "entity_id", "rating", "comment", "created_at", "updated_at",
}

func scanReview(row rowScanner) (domain.Review, error) {
	var rv domain.Review
	if err := row.Scan(
		&rv.ID, &rv.UserID, &rv.EntityID, &rv.Rating, &rv.Comment,
		&rv.CreatedAt, &rv.UpdatedAt,
	); err != nil {
		return domain.Review{}, err
	}
	return rv, nil
}

func (r *Repository) FetchReview(ctx context.Context, reviewID string) (domain.Review, error) {
	sb := sqlbuilder.Select(reviewColumns...)
	sb.From("reviews")
	sb.Where(sb.Equal("id", reviewID))

	query, args := sb.Build()
	rv, err := scanReview(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Review{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Review{}, fmt.Errorf("fetching review: %w", err)
	}
	return rv, nil
}

func (r *Repository) ListEntityReviews(
	ctx context.Context,
	entityID string,
	page, pageSize int,
) ([]domain.Review, error) {
	sb := sqlbuilder.Select(reviewColumns...)
	sb.From("reviews")
	sb.Where(sb.Equal("entity_id", entityID))
	sb.OrderBy("created_at DESC")
	sb.Offset((page - 1) * pageSize)
	sb.Limit(pageSize)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running reviews query: %w", err)
	}
	defer closeRows(rows)

	reviews := []domain.Review{}
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning review: %w", err)
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reviews: %w", err)
	}

	return reviews, nil
}

func (r *Repository) FetchUserEntityReview(ctx context.Context, userID, entityID string) (domain.Review, error) {
	sb := sqlbuilder.Select(reviewColumns...)
	sb.From("reviews")
	sb.Where(sb.Equal("user_id", userID), sb.Equal("entity_id", entityID))

	query, args := sb.Build()
	rv, err := scanReview(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Review{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Review{}, fmt.Errorf("fetching user entity review: %w", err)
	}
	return rv, nil
}

func (r *Repository) CreateReview(ctx context.Context, review domain.Review) error {
	ib := sqlbuilder.InsertInto("reviews")
	ib.Cols(reviewColumns...)
	ib.Values(
		review.ID, review.UserID, review.EntityID, review.Rating,
		review.Comment, review.CreatedAt, review.UpdatedAt,
	)

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting review: %w", mapWriteErr(err))
	}
	return nil
}

func (r *Repository) UpdateReview(ctx context.Context, review domain.Review) error {
	ub := sqlbuilder.Update("reviews")
	ub.Set(
		ub.Assign("rating", review.Rating),
		ub.Assign("comment", review.Comment),
		ub.Assign("updated_at", review.UpdatedAt),
	)
	ub.Where(ub.Equal("id", review.ID))

	query, args := ub.Build()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating review: %w", err)
	}

	if err := requireAffected(res); errors.Is(err, domain.ErrNotFound) {
		if _, fetchErr := r.FetchReview(ctx, review.ID); fetchErr != nil {
			return fetchErr
		}
	} else if err != nil {
		return err
	}
	return nil
}

func (r *Repository) DeleteReview(ctx context.Context, reviewID string) error {
	del := sqlbuilder.DeleteFrom("reviews")
	del.Where(del.Equal("id", reviewID))

	query, args := del.Build()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("deleting review: %w", err)
	}
	return requireAffected(res)
}

func (r *Repository) DeleteEntityReviews(ctx context.Context, entityID string) (int64, error) {
	del := sqlbuilder.DeleteFrom("reviews")
	del.Where(del.Equal("entity_id", entityID))

	query, args := del.Build()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("deleting entity reviews: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reading affected rows: %w", err)
	}
	return n, nil
}

func (r *Repository) DeleteUserReviews(ctx context.Context, userID string) ([]string, error) {
	sb := sqlbuilder.Select("DISTINCT entity_id")
	sb.From("reviews")
	sb.Where(sb.Equal("user_id", userID))

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing user review entities: %w", err)
	}
	defer closeRows(rows)

	var entityIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning entity ID: %w", err)
		}
		entityIDs = append(entityIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entity IDs: %w", err)
	}

	del := sqlbuilder.DeleteFrom("reviews")
	del.Where(del.Equal("user_id", userID))

	query, args = del.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("deleting user reviews: %w", err)
	}

	return entityIDs, nil
}

func (r *Repository) AverageEntityRating(ctx context.Context, entityID string) (float64, int64, error) {
	sb := sqlbuilder.Select("COALESCE(AVG(rating), 0)", "COUNT(*)")
	sb.From("reviews")
	sb.Where(sb.Equal("entity_id", entityID))

	query, args := sb.Build()
	var avg float64
	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&avg, &count); err != nil {
		return 0, 0, fmt.Errorf("averaging entity rating: %w", err)
	}
	return avg, count, nil
}

func (r *Repository) CountUserReviews(ctx context.Context, userID string) (int64, error) {
	sb := sqlbuilder.Select("COUNT(*)")
	sb.From("reviews")
	sb.Where(sb.Equal("user_id", userID))

	query, args := sb.Build()
	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting user reviews: %w", err)
	}
	return count, nil
}

func (r *Repository) ListUserReviewedEntities(ctx context.Context, userID string) ([]domain.ReviewedEntity, error) {
	sb := sqlbuilder.Select("r.entity_id", "r.rating", "e.type", "e.genres")
	sb.From("reviews r")
	sb.JoinWithOption(sqlbuilder.InnerJoin, "entities e", "e.id = r.entity_id")
	sb.Where(sb.Equal("r.user_id", userID))
	sb.OrderBy("r.created_at")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running reviewed entities query: %w", err)
	}
	defer closeRows(rows)

	reviewed := []domain.ReviewedEntity{}
	for rows.Next() {
		var (
			re     domain.ReviewedEntity
			genres []byte
		)
		if err := rows.Scan(&re.EntityID, &re.Rating, &re.EntityType, &genres); err != nil {
			return nil, fmt.Errorf("scanning reviewed entity: %w", err)
		}

		var parsed []domain.Genre
		if err := unmarshalJSON(genres, &parsed); err != nil {
			return nil, err
		}
		for _, g := range parsed {
			re.Genres = append(re.Genres, g.Name)
		}

		reviewed = append(reviewed, re)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reviewed entities: %w", err)
	}

	return reviewed, nil
}

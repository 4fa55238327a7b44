package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/huandu/go-sqlbuilder"

	"github.com/Abotareq/imDb-sub000/internal/domain"
)

var articleColumns = []string{
	"id", "author_id", "entity_id", "title", "body", "tags", "created_at", "updated_at",
}

func scanArticle(row rowScanner) (domain.Article, error) {
	var (
		a        domain.Article
		entityID sql.NullString
		tags     []byte
	)

	if err := row.Scan(
		&a.ID, &a.AuthorID, &entityID, &a.Title, &a.Body, &tags,
		&a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return domain.Article{}, err
	}

	a.EntityID = entityID.String
	if err := unmarshalJSON(tags, &a.Tags); err != nil {
		return domain.Article{}, err
	}

	return a, nil
}

func nullableID(id string) sql.NullString {
	if id == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: id, Valid: true}
}

func (r *Repository) ListArticles(
	ctx context.Context,
	filters domain.ArticleFilters,
	page, pageSize int,
) ([]domain.Article, error) {
	sb := sqlbuilder.Select(articleColumns...)
	sb.From("articles")

	var conds []string
	if filters.EntityID != "" {
		conds = append(conds, sb.Equal("entity_id", filters.EntityID))
	}
	if filters.AuthorID != "" {
		conds = append(conds, sb.Equal("author_id", filters.AuthorID))
	}
	if filters.Tag != "" {
		conds = append(conds, "JSON_CONTAINS(tags, "+sb.Args.Add(fmt.Sprintf("%q", filters.Tag))+")")
	}
	if len(conds) > 0 {
		sb.Where(conds...)
	}

	sb.OrderBy("created_at DESC")
	sb.Offset((page - 1) * pageSize)
	sb.Limit(pageSize)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running articles query: %w", err)
	}
	defer closeRows(rows)

	articles := []domain.Article{}
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning article: %w", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating articles: %w", err)
	}

	return articles, nil
}

func (r *Repository) FetchArticle(ctx context.Context, articleID string) (domain.Article, error) {
	sb := sqlbuilder.Select(articleColumns...)
	sb.From("articles")
	sb.Where(sb.Equal("id", articleID))

	query, args := sb.Build()
	a, err := scanArticle(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Article{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Article{}, fmt.Errorf("fetching article: %w", err)
	}
	return a, nil
}

func (r *Repository) CreateArticle(ctx context.Context, article domain.Article) error {
	tags, err := marshalJSON(article.Tags)
	if err != nil {
		return err
	}

	ib := sqlbuilder.InsertInto("articles")
	ib.Cols(articleColumns...)
	ib.Values(
		article.ID, article.AuthorID, nullableID(article.EntityID),
		article.Title, article.Body, tags, article.CreatedAt, article.UpdatedAt,
	)

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting article: %w", err)
	}
	return nil
}

func (r *Repository) UpdateArticle(ctx context.Context, article domain.Article) error {
	tags, err := marshalJSON(article.Tags)
	if err != nil {
		return err
	}

	ub := sqlbuilder.Update("articles")
	ub.Set(
		ub.Assign("entity_id", nullableID(article.EntityID)),
		ub.Assign("title", article.Title),
		ub.Assign("body", article.Body),
		ub.Assign("tags", tags),
		ub.Assign("updated_at", article.UpdatedAt),
	)
	ub.Where(ub.Equal("id", article.ID))

	query, args := ub.Build()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating article: %w", err)
	}

	if err := requireAffected(res); errors.Is(err, domain.ErrNotFound) {
		if _, fetchErr := r.FetchArticle(ctx, article.ID); fetchErr != nil {
			return fetchErr
		}
	} else if err != nil {
		return err
	}
	return nil
}

func (r *Repository) DeleteArticle(ctx context.Context, articleID string) error {
	del := sqlbuilder.DeleteFrom("articles")
	del.Where(del.Equal("id", articleID))

	query, args := del.Build()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("deleting article: %w", err)
	}
	return requireAffected(res)
}

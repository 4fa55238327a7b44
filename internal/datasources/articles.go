package datasources

import (
	"context"

	"github.com/Abotareq/imDb-sub000/internal/domain"
)

type ArticleLister interface {
	ListArticles(ctx context.Context, filters domain.ArticleFilters, page, pageSize int) ([]domain.Article, error)
}

type ArticleFetcher interface {
	FetchArticle(ctx context.Context, articleID string) (domain.Article, error)
}

type ArticleCreator interface {
	CreateArticle(ctx context.Context, article domain.Article) error
}

type ArticleUpdater interface {
	UpdateArticle(ctx context.Context, article domain.Article) error
}

type ArticleDeleter interface {
	DeleteArticle(ctx context.Context, articleID string) error
}

type ArticleRepository interface {
	ArticleLister
	ArticleFetcher
	ArticleCreator
	ArticleUpdater
	ArticleDeleter
}

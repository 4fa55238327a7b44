package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Abotareq/imDb-sub000/internal/datasources/mocks"
	"github.com/Abotareq/imDb-sub000/internal/domain"
)

type mockArticleUpdateRepository struct {
	*mocks.MockArticleFetcher
	*mocks.MockArticleUpdater
}

func TestArticleUpdate_ServeHTTP(t *testing.T) {
	articleID := "507f1f77bcf86cd799439031"
	stored := domain.Article{
		ID:        articleID,
		AuthorID:  "author1",
		Title:     "Original title",
		Body:      "Original body.",
		Tags:      []string{"news"},
		CreatedAt: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name       string
		callerID   string
		callerRole domain.Role
		body       string
		updated    bool
		wantStatus int
		wantTitle  string
	}{
		{
			name:       "author_updates_own_article",
			callerID:   "author1",
			callerRole: domain.RoleUser,
			body:       `{"title": "Revised title"}`,
			updated:    true,
			wantStatus: http.StatusOK,
			wantTitle:  "Revised title",
		},
		{
			name:       "admin_updates_any_article",
			callerID:   "admin1",
			callerRole: domain.RoleAdmin,
			body:       `{"body": "Edited body."}`,
			updated:    true,
			wantStatus: http.StatusOK,
			wantTitle:  "Original title",
		},
		{
			name:       "other_user_forbidden",
			callerID:   "stranger",
			callerRole: domain.RoleUser,
			body:       `{"title": "Hijacked"}`,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "empty_title_rejected",
			callerID:   "author1",
			callerRole: domain.RoleUser,
			body:       `{"title": ""}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repository := mockArticleUpdateRepository{
				MockArticleFetcher: mocks.NewMockArticleFetcher(t),
				MockArticleUpdater: mocks.NewMockArticleUpdater(t),
			}
			repository.MockArticleFetcher.EXPECT().
				FetchArticle(mock.Anything, articleID).
				Return(stored, nil).
				Maybe()

			if test.updated {
				repository.MockArticleUpdater.EXPECT().
					UpdateArticle(mock.Anything, mock.MatchedBy(func(a domain.Article) bool {
						return a.ID == articleID && !a.UpdatedAt.IsZero()
					})).
					Return(nil).
					Once()
			}

			controller := ArticleUpdate{Repository: repository}

			req := httptest.NewRequest(http.MethodPatch, "/v1/articles/"+articleID, strings.NewReader(test.body))
			req = mux.SetURLVars(req, map[string]string{"articleID": articleID})
			req = testContextWithUser(test.callerID, test.callerRole)(req)
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			assert.Equal(t, test.wantStatus, rec.Code)
			if test.wantStatus == http.StatusOK {
				var article domain.Article
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&article))
				assert.Equal(t, test.wantTitle, article.Title)
				assert.Equal(t, "author1", article.AuthorID)
			}
		})
	}
}

package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abotareq/imDb-sub000/internal/auth"
	"github.com/Abotareq/imDb-sub000/internal/domain"
	"github.com/Abotareq/imDb-sub000/internal/transport/web/controller"
)

func testRequest() *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/v1/entities", nil)
	ctx := domain.ContextWithLogger(req.Context(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	return req.WithContext(ctx)
}

func TestNewAuthMiddleware(t *testing.T) {
	echoIdentity := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-User-ID", domain.UserIDFromContext(r.Context()))
		w.Header().Set("X-Role", string(domain.RoleFromContext(r.Context())))
	})

	t.Run("validator_match_sets_identity", func(t *testing.T) {
		middleware := NewAuthMiddleware([]AuthValidator{
			func(*http.Request) (*AuthResult, error) {
				return &AuthResult{UserID: "user1", Role: domain.RoleAdmin}, nil
			},
		})

		rec := httptest.NewRecorder()
		middleware(echoIdentity).ServeHTTP(rec, testRequest())

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "user1", rec.Header().Get("X-User-ID"))
		assert.Equal(t, "admin", rec.Header().Get("X-Role"))
	})

	t.Run("no_validator_match_continues_anonymous", func(t *testing.T) {
		middleware := NewAuthMiddleware([]AuthValidator{
			func(*http.Request) (*AuthResult, error) { return nil, nil },
		})

		rec := httptest.NewRecorder()
		middleware(echoIdentity).ServeHTTP(rec, testRequest())

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("X-User-ID"))
	})

	t.Run("validator_error_rejects", func(t *testing.T) {
		middleware := NewAuthMiddleware([]AuthValidator{
			func(*http.Request) (*AuthResult, error) {
				return nil, assert.AnError
			},
		})

		rec := httptest.NewRecorder()
		middleware(echoIdentity).ServeHTTP(rec, testRequest())

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"message":"invalid session"}`, rec.Body.String())
	})
}

func TestNewSessionCookieValidator(t *testing.T) {
	tokens := auth.TokenService{
		Secret:   []byte("test-secret"),
		Issuer:   "catalog-test",
		Duration: time.Hour,
	}
	validate := NewSessionCookieValidator(tokens)

	t.Run("no_cookie_does_not_apply", func(t *testing.T) {
		result, err := validate(testRequest())

		assert.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("valid_cookie", func(t *testing.T) {
		token, _, err := tokens.Sign(domain.User{ID: "user1", Role: domain.RoleUser})
		require.NoError(t, err)

		req := testRequest()
		req.AddCookie(&http.Cookie{Name: controller.SessionCookieName, Value: token})

		result, err := validate(req)

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "user1", result.UserID)
		assert.Equal(t, domain.RoleUser, result.Role)
	})

	t.Run("garbage_cookie_rejected", func(t *testing.T) {
		req := testRequest()
		req.AddCookie(&http.Cookie{Name: controller.SessionCookieName, Value: "not-a-token"})

		result, err := validate(req)

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestRequireRoleMiddleware(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	withIdentity := func(req *http.Request, userID string, role domain.Role) *http.Request {
		ctx := domain.ContextWithUserID(req.Context(), userID)
		ctx = domain.ContextWithRole(ctx, role)
		return req.WithContext(ctx)
	}

	t.Run("admin_passes", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := withIdentity(testRequest(), "admin1", domain.RoleAdmin)

		requireRoleMiddleware(domain.RoleAdmin, ok).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("user_forbidden", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := withIdentity(testRequest(), "user1", domain.RoleUser)

		requireRoleMiddleware(domain.RoleAdmin, ok).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.JSONEq(t, `{"message": "forbidden"}`, rec.Body.String())
	})

	t.Run("anonymous_unauthorized", func(t *testing.T) {
		rec := httptest.NewRecorder()

		requireRoleMiddleware(domain.RoleAdmin, ok).ServeHTTP(rec, testRequest())

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"message": "authentication required"}`, rec.Body.String())
	})
}

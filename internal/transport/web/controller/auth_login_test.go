package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Abotareq/imDb-sub000/internal/auth"
	"github.com/Abotareq/imDb-sub000/internal/command"
	"github.com/Abotareq/imDb-sub000/internal/datasources/mocks"
	"github.com/Abotareq/imDb-sub000/internal/domain"
)

func testTokenService() auth.TokenService {
	return auth.TokenService{
		Secret:   []byte("test-secret"),
		Issuer:   "test",
		Duration: time.Hour,
	}
}

func TestAuthLogin_ServeHTTP(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := domain.User{
		ID:           "507f1f77bcf86cd799439011",
		Username:     "moviefan",
		Email:        "fan@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	}

	cases := []struct {
		name       string
		body       string
		fetchErr   error
		wantStatus int
		wantCookie bool
	}{
		{
			name:       "valid_credentials",
			body:       `{"email":"fan@example.com","password":"correct-horse"}`,
			wantStatus: http.StatusOK,
			wantCookie: true,
		},
		{
			name:       "wrong_password",
			body:       `{"email":"fan@example.com","password":"battery-staple"}`,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unknown_email",
			body:       `{"email":"fan@example.com","password":"correct-horse"}`,
			fetchErr:   domain.ErrNotFound,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing_password",
			body:       `{"email":"fan@example.com"}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := mocks.NewMockUserByEmailFetcher(t)
			fetcher.EXPECT().
				FetchUserByEmail(mock.Anything, "fan@example.com").
				Return(stored, tc.fetchErr).
				Maybe()

			tokens := testTokenService()
			controller := AuthLogin{
				AuthenticateCmd: command.NewAuthenticateUser(fetcher),
				Tokens:          tokens,
			}

			req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", strings.NewReader(tc.body))
			req = testContext()(req)
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			if !tc.wantCookie {
				assert.Empty(t, rec.Result().Cookies())
				return
			}

			var got domain.User
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
			assert.Equal(t, stored.ID, got.ID)
			assert.Empty(t, got.PasswordHash, "hash must never be serialized")

			cookies := rec.Result().Cookies()
			require.Len(t, cookies, 1)
			cookie := cookies[0]
			assert.Equal(t, SessionCookieName, cookie.Name)
			assert.True(t, cookie.HttpOnly)

			claims, err := tokens.Parse(cookie.Value)
			require.NoError(t, err)
			assert.Equal(t, stored.ID, claims.UserID)
			assert.Equal(t, domain.RoleUser, claims.Role)
		})
	}
}

func TestAuthLogout_ClearsCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil)
	req = testContextWithUser("user1", domain.RoleUser)(req)
	rec := httptest.NewRecorder()

	AuthLogout{}.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

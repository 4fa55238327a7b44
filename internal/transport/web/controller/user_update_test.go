package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Abotareq/imDb-sub000/internal/datasources"
	"github.com/Abotareq/imDb-sub000/internal/datasources/mocks"
	"github.com/Abotareq/imDb-sub000/internal/domain"
)

type mockUserRepository struct {
	*mocks.MockUserFetcher
	*mocks.MockUserUpdater
}

var _ interface {
	datasources.UserFetcher
	datasources.UserUpdater
} = mockUserRepository{}

func TestUserUpdate_ServeHTTP(t *testing.T) {
	const userID = "507f1f77bcf86cd799439011"

	stored := domain.User{
		ID:       userID,
		Username: "moviefan",
		Email:    "fan@example.com",
		Role:     domain.RoleUser,
	}

	cases := []struct {
		name         string
		callerID     string
		callerRole   domain.Role
		body         string
		wantStatus   int
		wantUsername string
		wantEmail    string
	}{
		{
			name:         "self_update",
			callerID:     userID,
			callerRole:   domain.RoleUser,
			body:         `{"username":"cinephile"}`,
			wantStatus:   http.StatusOK,
			wantUsername: "cinephile",
			wantEmail:    "fan@example.com",
		},
		{
			name:         "admin_updates_other",
			callerID:     "507f1f77bcf86cd799439099",
			callerRole:   domain.RoleAdmin,
			body:         `{"email":"new@example.com"}`,
			wantStatus:   http.StatusOK,
			wantUsername: "moviefan",
			wantEmail:    "new@example.com",
		},
		{
			name:       "other_user_forbidden",
			callerID:   "507f1f77bcf86cd799439099",
			callerRole: domain.RoleUser,
			body:       `{"username":"cinephile"}`,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "invalid_email",
			callerID:   userID,
			callerRole: domain.RoleUser,
			body:       `{"email":"not-an-email"}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := mocks.NewMockUserFetcher(t)
			updater := mocks.NewMockUserUpdater(t)

			if tc.wantStatus == http.StatusOK {
				fetcher.EXPECT().
					FetchUser(mock.Anything, userID).
					Return(stored, nil)
				updater.EXPECT().
					UpdateUser(mock.Anything, mock.MatchedBy(func(u domain.User) bool {
						return u.Username == tc.wantUsername && u.Email == tc.wantEmail
					})).
					Return(nil)
			}

			controller := UserUpdate{Repository: mockUserRepository{fetcher, updater}}

			req := httptest.NewRequest(http.MethodPatch, "/v1/users/"+userID, strings.NewReader(tc.body))
			req = testContextWithUser(tc.callerID, tc.callerRole)(req)
			req = mux.SetURLVars(req, map[string]string{"userID": userID})
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantStatus == http.StatusOK {
				var got domain.User
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
				assert.Equal(t, tc.wantUsername, got.Username)
				assert.Equal(t, tc.wantEmail, got.Email)
			}
		})
	}
}

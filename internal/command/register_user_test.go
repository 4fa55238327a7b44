package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Abotareq/imDb-sub000/internal/datasources/mocks"
	"github.com/Abotareq/imDb-sub000/internal/domain"
)

func TestRegisterUser_Execute(t *testing.T) {
	creator := mocks.NewMockUserCreator(t)

	var created domain.User
	creator.EXPECT().
		CreateUser(mock.Anything, mock.MatchedBy(func(u domain.User) bool {
			created = u
			return domain.ValidID(u.ID) && u.Role == domain.RoleUser && !u.Verified
		})).
		Return(nil)

	cmd := NewRegisterUser(creator)

	resp, err := cmd.Execute(testContext(), RegisterUserRequest{
		Username: "moviefan",
		Email:    "fan@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)

	assert.Equal(t, "moviefan", resp.User.Username)
	assert.Equal(t, domain.RoleUser, resp.User.Role)
	// Password is stored hashed, never verbatim.
	assert.NotEqual(t, "hunter2hunter2", created.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("hunter2hunter2")))
}

func TestRegisterUser_DuplicateConflicts(t *testing.T) {
	creator := mocks.NewMockUserCreator(t)

	creator.EXPECT().
		CreateUser(mock.Anything, mock.Anything).
		Return(domain.ErrConflict)

	cmd := NewRegisterUser(creator)

	_, err := cmd.Execute(testContext(), RegisterUserRequest{
		Username: "moviefan",
		Email:    "fan@example.com",
		Password: "hunter2hunter2",
	})
	require.ErrorIs(t, err, domain.ErrConflict)
}

func TestAuthenticateUser_Execute(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := domain.User{
		ID:           "user1",
		Email:        "fan@example.com",
		PasswordHash: string(hash),
	}

	cases := []struct {
		name     string
		password string
		fetchErr error
		wantErr  error
	}{
		{
			name:     "valid_credentials",
			password: "correct-horse",
		},
		{
			name:     "wrong_password",
			password: "battery-staple",
			wantErr:  domain.ErrInvalidCredentials,
		},
		{
			name:     "unknown_email",
			password: "correct-horse",
			fetchErr: domain.ErrNotFound,
			wantErr:  domain.ErrInvalidCredentials,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := mocks.NewMockUserByEmailFetcher(t)
			fetcher.EXPECT().
				FetchUserByEmail(mock.Anything, "fan@example.com").
				Return(stored, tc.fetchErr)

			cmd := NewAuthenticateUser(fetcher)

			resp, err := cmd.Execute(testContext(), AuthenticateUserRequest{
				Email:    "fan@example.com",
				Password: tc.password,
			})

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "user1", resp.User.ID)
		})
	}
}

package command

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/Abotareq/imDb-sub000/internal/datasources"
	"github.com/Abotareq/imDb-sub000/internal/domain"
)

type AuthenticateUserRequest struct {
	Email    string
	Password string
}

type AuthenticateUserResponse struct {
	User domain.User
}

// AuthenticateUser checks login credentials. An unknown email and a wrong
// password both return ErrInvalidCredentials.
type AuthenticateUser struct {
	UserFetcher datasources.UserByEmailFetcher
}

// NewAuthenticateUser creates a properly initialized AuthenticateUser command.
func NewAuthenticateUser(userFetcher datasources.UserByEmailFetcher) *AuthenticateUser {
	return &AuthenticateUser{UserFetcher: userFetcher}
}

func (c *AuthenticateUser) Execute(
	ctx context.Context,
	req AuthenticateUserRequest,
) (AuthenticateUserResponse, error) {
	user, err := c.UserFetcher.FetchUserByEmail(ctx, req.Email)
	if errors.Is(err, domain.ErrNotFound) {
		return AuthenticateUserResponse{}, domain.ErrInvalidCredentials
	}
	if err != nil {
		return AuthenticateUserResponse{}, fmt.Errorf("fetching user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return AuthenticateUserResponse{}, domain.ErrInvalidCredentials
	}

	return AuthenticateUserResponse{User: user}, nil
}

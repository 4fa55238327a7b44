package command

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Abotareq/imDb-sub000/internal/datasources"
	"github.com/Abotareq/imDb-sub000/internal/domain"
)

type RegisterUserRequest struct {
	Username string
	Email    string
	Password string
}

type RegisterUserResponse struct {
	User domain.User
}

// RegisterUser creates a new account with the default role. Taken
// usernames and emails surface as ErrConflict from the storage layer's
// unique constraints.
type RegisterUser struct {
	UserCreator datasources.UserCreator
}

// NewRegisterUser creates a properly initialized RegisterUser command.
func NewRegisterUser(userCreator datasources.UserCreator) *RegisterUser {
	return &RegisterUser{UserCreator: userCreator}
}

func (c *RegisterUser) Execute(ctx context.Context, req RegisterUserRequest) (RegisterUserResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return RegisterUserResponse{}, fmt.Errorf("hashing password: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:           domain.NewID(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := c.UserCreator.CreateUser(ctx, user); err != nil {
		return RegisterUserResponse{}, fmt.Errorf("creating user: %w", err)
	}

	return RegisterUserResponse{User: user}, nil
}

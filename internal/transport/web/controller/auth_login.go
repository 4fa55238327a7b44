package controller

import (
	"net/http"

	"github.com/Abotareq/imDb-sub000/internal/auth"
	"github.com/Abotareq/imDb-sub000/internal/command"
	"github.com/Abotareq/imDb-sub000/internal/domain"
)

// AuthLoginRequest is the JSON request body for login.
type AuthLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthLogin handles POST /v1/auth/login.
type AuthLogin struct {
	AuthenticateCmd *command.AuthenticateUser
	Tokens          auth.TokenService
}

func (c AuthLogin) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var reqBody AuthLoginRequest
	if err := decodeJSON(r, &reqBody); err != nil {
		logger.ErrorContext(ctx, "unable to parse login body", "error", err)
		respondBadRequest(ctx, w, "invalid request body")
		return
	}

	result, err := c.AuthenticateCmd.Execute(ctx, command.AuthenticateUserRequest{
		Email:    reqBody.Email,
		Password: reqBody.Password,
	})
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	if err := setSessionCookie(w, c.Tokens, result.User); err != nil {
		respondError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, result.User)
}

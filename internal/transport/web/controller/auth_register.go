package controller

import (
	"net/http"
	"time"

	"github.com/Abotareq/imDb-sub000/internal/auth"
	"github.com/Abotareq/imDb-sub000/internal/command"
	"github.com/Abotareq/imDb-sub000/internal/domain"
)

// SessionCookieName is the HTTP-only cookie carrying the signed session
// token.
const SessionCookieName = "imdb_session"

// AuthRegisterRequest is the JSON request body for registration.
type AuthRegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64,alphanum"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// AuthRegister handles POST /v1/auth/register.
type AuthRegister struct {
	RegisterCmd *command.RegisterUser
	Tokens      auth.TokenService
}

func (c AuthRegister) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var reqBody AuthRegisterRequest
	if err := decodeJSON(r, &reqBody); err != nil {
		logger.ErrorContext(ctx, "unable to parse registration body", "error", err)
		respondBadRequest(ctx, w, "invalid request body")
		return
	}

	result, err := c.RegisterCmd.Execute(ctx, command.RegisterUserRequest{
		Username: reqBody.Username,
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

	writeJSON(ctx, w, http.StatusCreated, result.User)
}

func setSessionCookie(w http.ResponseWriter, tokens auth.TokenService, user domain.User) error {
	token, expires, err := tokens.Sign(user)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

package controller

import (
	"net/http"
	"time"

	"github.com/Abotareq/imDb-sub000/internal/datasources"
	"github.com/Abotareq/imDb-sub000/internal/domain"
)

// UserUpdate handles PATCH /v1/users/{userID}. A user may edit their own
// username and email; admins may edit anyone's.
type UserUpdate struct {
	Repository interface {
		datasources.UserFetcher
		datasources.UserUpdater
	}
}

type UserUpdateRequest struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=50"`
	Email    *string `json:"email" validate:"omitempty,email"`
}

func (c UserUpdate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	userID, err := pathID(r, "userID")
	if err != nil {
		respondBadRequest(ctx, w, err.Error())
		return
	}

	if userID != domain.UserIDFromContext(ctx) && domain.RoleFromContext(ctx) != domain.RoleAdmin {
		respondError(ctx, w, domain.ErrForbidden)
		return
	}

	var req UserUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.ErrorContext(ctx, "unable to decode user update request", "error", err)
		respondBadRequest(ctx, w, err.Error())
		return
	}

	user, err := c.Repository.FetchUser(ctx, userID)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	user.UpdatedAt = time.Now().UTC()

	if err := c.Repository.UpdateUser(ctx, user); err != nil {
		respondError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, user)
}

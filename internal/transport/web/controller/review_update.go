package controller

import (
	"context"
	"net/http"

	"github.com/Abotareq/imDb-sub000/internal/command"
	"github.com/Abotareq/imDb-sub000/internal/domain"
)

// ReviewUpdate handles PATCH /v1/reviews/{reviewID}. Author or admin only.
type ReviewUpdate struct {
	Command interface {
		Execute(ctx context.Context, req command.UpdateReviewRequest) (command.UpdateReviewResponse, error)
	}
}

type ReviewUpdateRequest struct {
	Rating  *int    `json:"rating" validate:"omitempty,gte=1,lte=10"`
	Comment *string `json:"comment" validate:"omitempty,max=1000"`
}

func (c ReviewUpdate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	reviewID, err := pathID(r, "reviewID")
	if err != nil {
		respondBadRequest(ctx, w, err.Error())
		return
	}

	var req ReviewUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.ErrorContext(ctx, "unable to decode review update request", "error", err)
		respondBadRequest(ctx, w, err.Error())
		return
	}

	resp, err := c.Command.Execute(ctx, command.UpdateReviewRequest{
		ReviewID:   reviewID,
		CallerID:   domain.UserIDFromContext(ctx),
		CallerRole: domain.RoleFromContext(ctx),
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, resp.Review)
}

package controller

import (
	"context"
	"net/http"

	"github.com/Abotareq/imDb-sub000/internal/command"
	"github.com/Abotareq/imDb-sub000/internal/domain"
)

// ReviewCreate handles POST /v1/reviews. The review belongs to the
// authenticated caller; the body cannot review on someone else's behalf.
type ReviewCreate struct {
	Command interface {
		Execute(ctx context.Context, req command.CreateReviewRequest) (command.CreateReviewResponse, error)
	}
}

type ReviewCreateRequest struct {
	EntityID string `json:"entity_id" validate:"required,hexadecimal,len=24"`
	Rating   int    `json:"rating" validate:"required,gte=1,lte=10"`
	Comment  string `json:"comment" validate:"max=1000"`
}

func (c ReviewCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var req ReviewCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.ErrorContext(ctx, "unable to decode review create request", "error", err)
		respondBadRequest(ctx, w, err.Error())
		return
	}

	resp, err := c.Command.Execute(ctx, command.CreateReviewRequest{
		UserID:   domain.UserIDFromContext(ctx),
		EntityID: req.EntityID,
		Rating:   req.Rating,
		Comment:  req.Comment,
	})
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, resp.Review)
}

package controller

import (
	"context"
	"net/http"

	"github.com/Abotareq/imDb-sub000/internal/command"
)

// VerificationRun handles POST /v1/admin/verify-users, triggering one
// verification sweep on demand. Admin only; enforced by the router.
type VerificationRun struct {
	Command interface {
		Execute(ctx context.Context, req command.AutoVerifyUsersRequest) (command.AutoVerifyUsersResponse, error)
	}
}

type VerificationRunResponse struct {
	Evaluated int `json:"evaluated"`
	Verified  int `json:"verified"`
}

func (c VerificationRun) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	resp, err := c.Command.Execute(ctx, command.AutoVerifyUsersRequest{})
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, VerificationRunResponse{
		Evaluated: resp.Evaluated,
		Verified:  resp.Verified,
	})
}

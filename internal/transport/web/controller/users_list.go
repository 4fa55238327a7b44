package controller

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/Abotareq/imDb-sub000/internal/datasources"
	"github.com/Abotareq/imDb-sub000/internal/domain"
)

// UsersList handles GET /v1/users. Admin only; enforced by the router.
type UsersList struct {
	Lister datasources.UserLister
}

type UsersListResponse struct {
	Data []domain.User `json:"data"`
}

func (c UsersList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filters, err := userFiltersFromQuery(r.URL.Query())
	if err != nil {
		respondBadRequest(ctx, w, err.Error())
		return
	}

	page, pageSize, err := parsePagination(r.URL.Query())
	if err != nil {
		respondBadRequest(ctx, w, err.Error())
		return
	}

	users, err := c.Lister.ListUsers(ctx, filters, domain.UserListOptions{Page: page, PageSize: pageSize})
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, UsersListResponse{Data: users})
}

func userFiltersFromQuery(q url.Values) (domain.UserFilters, error) {
	var filters domain.UserFilters

	if s := q.Get("verified"); s != "" {
		switch s {
		case "true":
			verified := true
			filters.Verified = &verified
		case "false":
			verified := false
			filters.Verified = &verified
		default:
			return domain.UserFilters{}, fmt.Errorf("invalid verified filter [%s]", s)
		}
	}

	if s := q.Get("role"); s != "" {
		if s != string(domain.RoleUser) && s != string(domain.RoleAdmin) {
			return domain.UserFilters{}, fmt.Errorf("invalid role filter [%s]", s)
		}
		filters.Role = domain.Role(s)
	}

	return filters, nil
}

package controller

import (
	"net/http"
)

// AuthLogout handles POST /v1/auth/logout by clearing the session cookie.
type AuthLogout struct{}

func (c AuthLogout) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	clearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

package server

import (
	"context"
	"fmt"
	"golang.org/x/crypto/acme/autocert"
	"net/http"
)

// Server terminates HTTP for the catalog API. In production it obtains its
// own certificate for AutocertHostname; TLSDisabled serves plain HTTP on
// TLSDisabledPort for local development.
type Server struct {
	TLSDisabled      bool
	TLSDisabledPort  int
	AutocertHostname string
	Router           http.Handler
}

func (s *Server) Run(ctx context.Context) error {
	if s.TLSDisabled {
		return http.ListenAndServe(fmt.Sprintf(":%d", s.TLSDisabledPort), s.Router)
	}
	return http.Serve(autocert.NewListener(s.AutocertHostname), s.Router)
}

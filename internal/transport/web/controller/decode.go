package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/Abotareq/imDb-sub000/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// decodeJSON reads a request body into an explicit DTO and validates it.
// Every write endpoint goes through this rather than assembling fields ad
// hoc from the raw body.
func decodeJSON[T any](r *http.Request, dst *T) error {
	if err := jsonDecodeBody(r, dst); err != nil {
		return err
	}
	if err := validate.Struct(dst); err != nil {
		return fmt.Errorf("validating request body: %w", err)
	}
	return nil
}

func jsonDecodeBody[T any](r *http.Request, dst *T) error {
	if r.Body == nil || r.ContentLength == 0 {
		return fmt.Errorf("missing request body")
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("parsing request body: %w", err)
	}
	return nil
}

// pathID extracts and shape-checks a 24-hex identifier route variable.
func pathID(r *http.Request, name string) (string, error) {
	id := mux.Vars(r)[name]
	if !domain.ValidID(id) {
		return "", fmt.Errorf("malformed identifier [%s]", id)
	}
	return id, nil
}

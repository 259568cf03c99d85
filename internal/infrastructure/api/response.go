package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"inventify-hub/internal/domain"

	"github.com/rs/zerolog"
)

var errInvalidBody = errors.New("invalid request body")

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors onto HTTP statuses. Anything unrecognised is
// a store failure and is reported as 500 without detail.
func writeError(w http.ResponseWriter, r *http.Request, logger zerolog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": domain.ErrUnauthorized.Error()})
	case errors.Is(err, domain.ErrForbidden):
		writeJSON(w, http.StatusForbidden, map[string]string{"message": domain.ErrForbidden.Error()})
	case errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrMissingField),
		errors.Is(err, errInvalidBody):
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
	default:
		logger.Error().
			Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("Request failed")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "internal server error"})
	}
}

// decodeJSON reads the request body into v. An empty body leaves v untouched.
// Numbers are kept as json.Number so documents are stored with the value the
// client sent.
func decodeJSON(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %v", errInvalidBody, err)
	}
	return nil
}

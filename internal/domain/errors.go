package domain

import "errors"

var (
	// ErrUnauthorized means the credential is missing, invalid or expired
	ErrUnauthorized = errors.New("unauthorized access")
	// ErrForbidden means the credential is valid but lacks privilege
	ErrForbidden = errors.New("forbidden access")
	// ErrInvalidID means an identifier is not a valid document id
	ErrInvalidID = errors.New("invalid id")
	// ErrMissingField means a required field is absent from the input
	ErrMissingField = errors.New("missing required field")
)

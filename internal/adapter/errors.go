package adapter

import "errors"

// Status classification errors produced by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("product not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrGatewayTimeout      = errors.New("gateway timeout")
)

// ErrMalformedBody is returned when a 2xx response carries a body that cannot
// be decoded into the expected type.
var ErrMalformedBody = errors.New("malformed response body")

package adapter

import (
	"errors"

	"github.com/MKhiriev/go-insight-keeper/models"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrQuotaExceeded       = errors.New("daily analysis limit reached")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrBadGateway          = errors.New("analysis failed")
	ErrInternalServerError = errors.New("internal server error")
	ErrNoSessionCookie     = errors.New("server did not set a session cookie")
)

// QuotaError is returned for a 429 on the analysis endpoint. It matches
// [ErrQuotaExceeded] and carries the usage reported by the server.
type QuotaError struct {
	Usage models.Usage
}

func (e *QuotaError) Error() string {
	return ErrQuotaExceeded.Error()
}

func (e *QuotaError) Is(target error) bool {
	return target == ErrQuotaExceeded
}

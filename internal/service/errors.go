package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-insight-keeper/models"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrEmptyTranscript     = errors.New("transcript is empty")

	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrAccountInactive         = errors.New("account is inactive")
	ErrUnauthenticated         = errors.New("unauthenticated")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrQuotaExceeded = errors.New("daily analysis quota exceeded")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Client-side errors.
var (
	ErrTooManyAttempts = errors.New("too many login attempts, try again later")
	ErrAnalysisFailed  = errors.New("analysis failed")
	ErrNoActiveCapture = errors.New("no capture in progress")
)

// QuotaExceededError carries the usage that caused a refusal. It matches
// ErrQuotaExceeded with errors.Is.
type QuotaExceededError struct {
	Usage models.Usage
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("%s: used %d of %d", ErrQuotaExceeded, e.Usage.Used, e.Usage.Limit)
}

func (e *QuotaExceededError) Is(target error) bool {
	return target == ErrQuotaExceeded
}

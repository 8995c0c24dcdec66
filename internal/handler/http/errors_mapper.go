package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-insight-keeper/internal/app"
	"github.com/MKhiriev/go-insight-keeper/internal/logger"
	"github.com/MKhiriev/go-insight-keeper/internal/provider"
	"github.com/MKhiriev/go-insight-keeper/internal/service"
	"github.com/MKhiriev/go-insight-keeper/internal/store"
	"github.com/MKhiriev/go-insight-keeper/internal/utils"
	"github.com/MKhiriev/go-insight-keeper/internal/validators"
	"github.com/MKhiriev/go-insight-keeper/models"
)

// errorStatuses is checked in order, so an error wrapping several targets
// gets the status of the first one listed.
var errorStatuses = []struct {
	target error
	status int
}{
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrEmptyTranscript, http.StatusBadRequest},
	{ErrInvalidJSON, http.StatusBadRequest},

	{service.ErrUnauthenticated, http.StatusUnauthorized},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrAccountInactive, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},

	{service.ErrQuotaExceeded, http.StatusTooManyRequests},

	{provider.ErrProviderUnavailable, http.StatusBadGateway},
	{provider.ErrMalformedProviderResponse, http.StatusBadGateway},

	{store.ErrConversationNotFound, http.StatusNotFound},
	{ErrInvalidConversationID, http.StatusNotFound},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError picks the user-facing text for err. The wording never
// reveals which part of a credential check failed.
func messageFromError(err error, status int) string {
	switch status {
	case http.StatusBadRequest:
		switch {
		case errors.Is(err, service.ErrEmptyTranscript):
			return app.MsgEmptyTranscript
		case errors.Is(err, validators.ErrNoFieldsToUpdate):
			return app.MsgEmptyPatch
		}
		return app.MsgInvalidDataProvided
	case http.StatusUnauthorized:
		if errors.Is(err, service.ErrUnauthenticated) {
			return app.MsgUnauthenticated
		}
		return app.MsgInvalidCredentials
	case http.StatusTooManyRequests:
		return app.MsgQuotaExceeded
	case http.StatusBadGateway:
		return app.MsgAnalysisFailed
	case http.StatusNotFound:
		return app.MsgConversationNotFound
	}
	return app.MsgInternalServerError
}

// writeError logs err and writes the JSON error body. A quota refusal also
// carries the caller's usage.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	response := models.ErrorResponse{Error: messageFromError(err, status)}

	var quotaErr *service.QuotaExceededError
	if errors.As(err, &quotaErr) {
		usage := quotaErr.Usage
		response.Usage = &usage
	}

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, wErr := utils.WriteJSON(w, response, status); wErr != nil {
		log.Err(wErr).Msg("failed to write error response")
	}
}

// writeResponse writes data as JSON with the given status.
func writeResponse(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write response")
	}
}

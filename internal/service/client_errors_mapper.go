// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-insight-keeper/internal/adapter"
	"github.com/MKhiriev/go-insight-keeper/internal/app"
	"github.com/MKhiriev/go-insight-keeper/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var quotaErr *adapter.QuotaError
	if errors.As(err, &quotaErr) {
		return &QuotaExceededError{Usage: quotaErr.Usage}
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		if msg == app.MsgEmptyTranscript {
			return ErrEmptyTranscript
		}
		return ErrInvalidDataProvided

	case errors.Is(err, adapter.ErrUnauthorized):
		if msg == app.MsgInvalidCredentials {
			return ErrInvalidCredentials
		}
		return ErrUnauthenticated

	case errors.Is(err, adapter.ErrNotFound):
		return store.ErrConversationNotFound

	case errors.Is(err, adapter.ErrTooManyRequests):
		return ErrTooManyAttempts

	case errors.Is(err, adapter.ErrBadGateway):
		return ErrAnalysisFailed
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-insight-keeper/internal/service"
)

// ErrUserQuit is returned when the user leaves a flow with ctrl+c.
var ErrUserQuit = errors.New("user quit")

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var quotaErr *service.QuotaExceededError
	switch {
	case errors.As(err, &quotaErr):
		return fmt.Sprintf("Daily analysis limit reached (%d of %d). Capture continues; analysis resumes tomorrow.",
			quotaErr.Usage.Used, quotaErr.Usage.Limit)
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid email or password"
	case errors.Is(err, service.ErrTooManyAttempts):
		return "Too many attempts, try again in a minute"
	case errors.Is(err, service.ErrUnauthenticated):
		return "Session expired, sign in again"
	case errors.Is(err, service.ErrAnalysisFailed):
		return "Analysis failed, it will be retried on the next cycle"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network is down or the server is unavailable"
	}

	return err.Error()
}

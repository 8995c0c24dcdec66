// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer the terminal client uses to
// talk to the insight server.
//
// [ServerAdapter] decouples client services from HTTP. The session is the
// server's cookie value; it is captured on login and replayed on every call,
// so it can be persisted locally and restored at start-up.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrUnauthorized]
// for 401, [ErrQuotaExceeded] for 429).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-insight-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines the client's view of the insight API.
type ServerAdapter interface {
	// SetSession stores the session cookie value replayed on every request.
	SetSession(session string)

	// Session returns the current session cookie value, or "".
	Session() string

	// Login exchanges credentials for a session. On success the session
	// cookie is captured via SetSession.
	Login(ctx context.Context, email, password string) (models.User, error)

	// Logout ends the session on the server and forgets it locally. The
	// local session is dropped even when the request fails.
	Logout(ctx context.Context) error

	// Me returns the signed-in user with today's usage.
	Me(ctx context.Context) (models.MeResponse, error)

	CreateConversation(ctx context.Context) (models.Conversation, error)
	ListConversations(ctx context.Context) ([]models.ConversationSummary, error)
	GetConversation(ctx context.Context, conversationID int64) (models.Conversation, error)
	UpdateConversation(ctx context.Context, conversationID int64, patch models.ConversationPatch) error

	// Analyze runs one analysis turn. A refused turn returns an error
	// matching [ErrQuotaExceeded] that carries the usage (see [QuotaError]).
	Analyze(ctx context.Context, req models.AnalysisRequest) (models.AnalysisResponse, error)

	// ServerVersion returns the plain-text server version.
	ServerVersion(ctx context.Context) (string, error)
}

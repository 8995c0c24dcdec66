// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrNoSessionCookie is returned by the session middleware when the
	// request carries no session cookie or an empty one.
	ErrNoSessionCookie = errors.New("no session cookie")

	// ErrInvalidConversationID is returned when the {id} path parameter is
	// not a positive integer.
	ErrInvalidConversationID = errors.New("invalid conversation id")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid json body")

	// ErrSessionPanic is returned when session resolution panicked; the
	// request degrades to 401.
	ErrSessionPanic = errors.New("session resolution panicked")
)

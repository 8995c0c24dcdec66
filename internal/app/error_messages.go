// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the user-facing message strings written into API error
// bodies, so that handlers and middleware use the same wording.
package app

const (
	// MsgInvalidDataProvided is returned when a body cannot be decoded or a
	// required field is missing.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgEmptyTranscript is returned by the analysis endpoint when the
	// transcript is empty after trimming.
	MsgEmptyTranscript = "transcript is empty"

	// MsgEmptyPatch is returned when a conversation patch carries no field.
	MsgEmptyPatch = "no fields to update"

	// MsgInvalidCredentials covers unknown emails, wrong passwords and
	// inactive accounts alike.
	MsgInvalidCredentials = "invalid email or password"

	// MsgUnauthenticated is the uniform body of every 401 on protected routes.
	MsgUnauthenticated = "not authenticated"

	// MsgQuotaExceeded is returned with the caller's usage when the daily
	// analysis limit is reached.
	MsgQuotaExceeded = "daily analysis limit reached"

	// MsgTooManyRequests is returned by the login throttle.
	MsgTooManyRequests = "too many requests, try again later"

	// MsgConversationNotFound is returned for absent and foreign
	// conversations alike.
	MsgConversationNotFound = "conversation not found"

	// MsgAnalysisFailed is returned when the analysis provider is unreachable
	// or its answer could not be understood.
	MsgAnalysisFailed = "analysis failed"

	// MsgInternalServerError is returned for unexpected failures.
	MsgInternalServerError = "internal server error"
)

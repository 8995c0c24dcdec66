// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is an account allowed to run conversation analyses.
// PasswordHash is a bcrypt digest and never leaves the server.
type User struct {
	// UserID is the database identifier, also used as the token subject.
	UserID int64 `json:"id"`

	// Email is the unique, lower-cased login identifier.
	Email string `json:"email"`

	// PasswordHash holds the bcrypt hash of the account password.
	PasswordHash string `json:"-"`

	// DisplayName is shown in the client header.
	DisplayName string `json:"display_name"`

	// DailyLimit is the maximum number of analysis calls per calendar day.
	DailyLimit int `json:"daily_limit"`

	// IsAdmin marks accounts created with elevated limits.
	IsAdmin bool `json:"is_admin"`

	// IsActive may be flipped externally; inactive accounts are rejected
	// on every authenticated request.
	IsActive bool `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

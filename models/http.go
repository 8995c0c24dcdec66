package models

// ErrorResponse is the JSON body of every non-2xx API response.
type ErrorResponse struct {
	Error string `json:"error"`
	Usage *Usage `json:"usage,omitempty"`
}

// OKResponse acknowledges mutations without a payload.
type OKResponse struct {
	OK bool `json:"ok"`
}

// UserResponse wraps a user for login.
type UserResponse struct {
	User User `json:"user"`
}

// MeResponse is returned by GET /api/auth/me.
type MeResponse struct {
	User  User  `json:"user"`
	Usage Usage `json:"usage"`
}

// ConversationResponse wraps a single conversation.
type ConversationResponse struct {
	Conversation Conversation `json:"conversation"`
}

// ConversationListResponse wraps a listing.
type ConversationListResponse struct {
	Conversations []ConversationSummary `json:"conversations"`
}

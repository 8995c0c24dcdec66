package tui

import (
	"time"

	"github.com/MKhiriev/go-insight-keeper/models"
)

// NavigateTo asks [RootModel] to switch pages. Payload, when set, is
// delivered to the new page as its first message.
type NavigateTo struct {
	Page    string
	Payload any
}

// LoginResult finishes the login flow.
type LoginResult struct {
	Me  models.MeResponse
	Err error
}

// LogoutResult finishes the main loop and returns to the login screen.
type LogoutResult struct {
	Err error
}

type tickMsg time.Time

type captureStartedMsg struct {
	err error
}

type captureStoppedMsg struct {
	err error
}

type pasteDoneMsg struct {
	err error
}

type historyLoadedMsg struct {
	items []models.ConversationSummary
	err   error
}

type conversationOpenedMsg struct {
	conversation models.Conversation
	err          error
}

type openConversation struct {
	id int64
}

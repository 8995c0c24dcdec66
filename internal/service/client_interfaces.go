package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-insight-keeper/internal/transcript"
	"github.com/MKhiriev/go-insight-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../tui/services_mock_test.go -package=tui

// ClientAuthService manages the terminal client's server session.
type ClientAuthService interface {
	// Restore replays the locally saved session and probes GET /api/auth/me.
	// It returns ErrUnauthenticated when nothing is saved or the server
	// rejects the session; a rejected session is forgotten.
	Restore(ctx context.Context) (models.MeResponse, error)

	// Login signs in, persists the session locally and returns the user with
	// today's usage.
	Login(ctx context.Context, email, password string) (models.MeResponse, error)

	// Logout ends the session on the server and forgets it locally. The
	// local copy is dropped even if the server cannot be reached.
	Logout(ctx context.Context) error
}

// ClientCaptureService holds the state of one live capture: the
// conversation id, the transcript accumulator, the high-water mark, the
// rolling summary, the insight blocks, the meta history and the usage.
type ClientCaptureService interface {
	// Begin creates a server conversation and resets all capture state.
	Begin(ctx context.Context) (models.Conversation, error)

	// Push records a speech segment into the transcript.
	Push(seg transcript.Segment)

	// AnalyzePending sends the transcript suffix after the high-water mark.
	// An empty suffix is skipped without a server call and without an error.
	AnalyzePending(ctx context.Context) error

	// AnalyzePasted starts a new capture holding text as its whole
	// transcript and analyses it at once.
	AnalyzePasted(ctx context.Context, text string) error

	// Close flushes the capture to the server (transcript, blocks, meta and
	// ended_at) without a final analysis. Closing an idle capture is a no-op.
	Close(ctx context.Context) error

	// Recover closes out a capture journaled by a previous run that never
	// reached Close. It reports whether a journal was found.
	Recover(ctx context.Context) (bool, error)

	// SetUsage seeds the quota display, e.g. from GET /api/auth/me.
	SetUsage(usage models.Usage)

	Snapshot() CaptureSnapshot
}

// ClientAnalysisJob periodically analyses the open capture.
type ClientAnalysisJob interface {
	// Start launches the ticker goroutine. An interval <= 0 falls back to
	// DefaultAnalysisInterval. A running job is halted first.
	Start(ctx context.Context, interval time.Duration)

	// Countdown is the time left until the next scheduled attempt.
	Countdown() time.Duration

	// Trigger requests an attempt now and restarts the period.
	Trigger()

	// InFlight reports whether an analysis call is running.
	InFlight() bool

	// LastError is the outcome of the most recent attempt.
	LastError() error

	// Stop halts the ticker, waits for an in-flight call and flushes the
	// capture with ClientCaptureService.Close.
	Stop(ctx context.Context) error
}

// ClientHistoryService reads past conversations.
type ClientHistoryService interface {
	List(ctx context.Context) ([]models.ConversationSummary, error)
	Open(ctx context.Context, conversationID int64) (models.Conversation, error)
}

// CaptureSnapshot is a consistent copy of the capture state for rendering.
type CaptureSnapshot struct {
	Active         bool
	ConversationID int64
	Transcript     string
	Provisional    string
	// Pending is the finalized text not analyzed yet.
	Pending      string
	Blocks       []models.InsightBlock
	Meta         *models.MetaAnalysis
	MetaHistory  []models.MetaSnapshot
	Usage        models.Usage
	Turns        int
	LastAnalysis time.Time
}

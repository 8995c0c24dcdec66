package store

import (
	"context"

	"github.com/MKhiriev/go-insight-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalSessionRepository keeps the single saved server session.
type LocalSessionRepository interface {
	SaveSession(ctx context.Context, session models.LocalSession) error
	LoadSession(ctx context.Context) (models.LocalSession, error)
	ClearSession(ctx context.Context) error
}

// LocalJournalRepository keeps the snapshot of the open capture.
type LocalJournalRepository interface {
	SaveJournal(ctx context.Context, journal models.CaptureJournal) error
	LoadJournal(ctx context.Context) (models.CaptureJournal, error)
	ClearJournal(ctx context.Context) error
}

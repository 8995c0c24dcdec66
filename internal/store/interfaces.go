package store

import (
	"context"

	"github.com/MKhiriev/go-insight-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository reads and creates accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// UsageRepository is the per-user daily quota ledger. date is formatted
// "2006-01-02". Increment must be a single atomic statement.
type UsageRepository interface {
	GetUsage(ctx context.Context, userID int64, date string) (int, error)
	Increment(ctx context.Context, userID int64, date string) (int, error)
}

// ConversationRepository persists conversations owned by one user. Every
// method is scoped by userID; foreign rows behave as absent ones.
type ConversationRepository interface {
	Create(ctx context.Context, userID int64, title string) (models.Conversation, error)
	Get(ctx context.Context, userID, conversationID int64) (models.Conversation, error)
	Update(ctx context.Context, userID, conversationID int64, patch models.ConversationPatch) error
	List(ctx context.Context, userID int64, limit int) ([]models.ConversationSummary, error)
	SetTitleIfDefault(ctx context.Context, userID, conversationID int64, defaultTitle, title string) (bool, error)
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

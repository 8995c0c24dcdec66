package service

import (
	"context"

	"github.com/MKhiriev/go-insight-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService verifies credentials and session tokens.
type AuthService interface {
	// RegisterUser hashes password and stores a new account. Used by the
	// provisioning tool; there is no public sign-up.
	RegisterUser(ctx context.Context, user models.User, password string) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	// Authenticate resolves a session token to an active account.
	Authenticate(ctx context.Context, tokenString string) (models.User, error)
}

// UsageService is the daily quota ledger as seen by the API.
type UsageService interface {
	// Check returns today's usage, or a *QuotaExceededError when no unit is
	// left. It never consumes a unit.
	Check(ctx context.Context, user models.User) (models.Usage, error)
	// Consume atomically takes one unit and returns the new usage.
	Consume(ctx context.Context, user models.User) (models.Usage, error)
	Current(ctx context.Context, user models.User) (models.Usage, error)
}

// ConversationService manages the conversations of one user.
type ConversationService interface {
	Create(ctx context.Context, userID int64) (models.Conversation, error)
	Get(ctx context.Context, userID, conversationID int64) (models.Conversation, error)
	Update(ctx context.Context, userID, conversationID int64, patch models.ConversationPatch) error
	List(ctx context.Context, userID int64) ([]models.ConversationSummary, error)

	// SaveAnalysis stores the merged blocks and the latest meta of a turn.
	SaveAnalysis(ctx context.Context, userID, conversationID int64, blocks []models.InsightBlock, meta models.MetaAnalysis) error
	// NameFromFirstInsight renames a conversation that still carries the
	// default title to the title of the first block a turn added. Reports
	// whether the title changed.
	NameFromFirstInsight(ctx context.Context, userID, conversationID int64, title string) (bool, error)
}

// AnalysisService runs one incremental analysis turn.
type AnalysisService interface {
	Analyze(ctx context.Context, user models.User, req models.AnalysisRequest) (models.AnalysisResponse, error)
}

// AppInfoService exposes build information of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-insight-keeper/internal/config"
	"github.com/MKhiriev/go-insight-keeper/internal/logger"
	"github.com/MKhiriev/go-insight-keeper/internal/store"
	"github.com/MKhiriev/go-insight-keeper/internal/utils"
	"github.com/MKhiriev/go-insight-keeper/models"
)

// DefaultDailyLimit and AdminDailyLimit are the quotas given to new
// accounts when none is specified.
const (
	DefaultDailyLimit = 50
	AdminDailyLimit   = 999
)

// authService is the concrete implementation of AuthService.
// Passwords are bcrypt hashes; sessions are stateless HS256 tokens.
type authService struct {
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// RegisterUser creates a new account.
//
// The email is normalised and the password hashed with bcrypt. A zero
// DailyLimit is replaced by DefaultDailyLimit, or AdminDailyLimit for
// admins. Returns ErrInvalidDataProvided when the email or password is
// empty, or a wrapped store.ErrEmailAlreadyExists.
func (a *authService) RegisterUser(ctx context.Context, user models.User, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	user.Email = NormalizeEmail(user.Email)
	if user.Email == "" || password == "" {
		log.Error().Str("email", user.Email).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	if user.DailyLimit <= 0 {
		user.DailyLimit = DefaultDailyLimit
		if user.IsAdmin {
			user.DailyLimit = AdminDailyLimit
		}
	}
	if user.DisplayName == "" {
		user.DisplayName = user.Email
	}

	hash, err := utils.HashPassword(password, utils.PasswordCost)
	if err != nil {
		return models.User{}, err
	}
	user.PasswordHash = hash
	user.IsActive = true

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an account by email and password.
//
// Unknown emails and wrong passwords both yield ErrInvalidCredentials. An
// inactive account yields ErrAccountInactive, which the API reports with the
// same body.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return models.User{}, ErrInvalidCredentials
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Info().Str("email", email).Msg("login for unknown email")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = utils.ComparePassword(foundUser.PasswordHash, password); err != nil {
		log.Info().Int64("user_id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	if !foundUser.IsActive {
		log.Info().Int64("user_id", foundUser.UserID).Msg("login for inactive account")
		return models.User{}, ErrAccountInactive
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string. Any validation failure
// (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// Authenticate resolves a session token to the account it names.
//
// Every failure wraps ErrUnauthenticated. Missing and inactive accounts also
// wrap store.ErrNoUserWasFound and ErrAccountInactive so the caller can drop
// the session cookie; a bad token or a store failure does not.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	if strings.TrimSpace(tokenString) == "" {
		return models.User{}, ErrUnauthenticated
	}

	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", token.UserID).Msg("error loading session user")
		return models.User{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	if !user.IsActive {
		return models.User{}, fmt.Errorf("%w: %w", ErrUnauthenticated, ErrAccountInactive)
	}

	return user, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-insight-keeper/internal/adapter"
	"github.com/MKhiriev/go-insight-keeper/internal/logger"
	"github.com/MKhiriev/go-insight-keeper/internal/store"
	"github.com/MKhiriev/go-insight-keeper/models"
)

type clientAuthService struct {
	sessions store.LocalSessionRepository
	adapter  adapter.ServerAdapter
	now      func() time.Time
	logger   *logger.Logger
}

func NewClientAuthService(sessions store.LocalSessionRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{sessions: sessions, adapter: serverAdapter, now: time.Now, logger: logger}
}

func (a *clientAuthService) Restore(ctx context.Context) (models.MeResponse, error) {
	saved, err := a.sessions.LoadSession(ctx)
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		return models.MeResponse{}, ErrUnauthenticated
	}
	if err != nil {
		return models.MeResponse{}, fmt.Errorf("load local session: %w", err)
	}

	a.adapter.SetSession(saved.Cookie)

	me, err := a.adapter.Me(ctx)
	if err != nil {
		mapped := mapAdapterError(err)
		if errors.Is(mapped, ErrUnauthenticated) {
			a.forget(ctx)
		}
		return models.MeResponse{}, mapped
	}

	return me, nil
}

func (a *clientAuthService) Login(ctx context.Context, email, password string) (models.MeResponse, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return models.MeResponse{}, ErrInvalidDataProvided
	}

	user, err := a.adapter.Login(ctx, email, password)
	if err != nil {
		return models.MeResponse{}, mapAdapterError(err)
	}

	session := models.LocalSession{Cookie: a.adapter.Session(), Email: user.Email, SavedAt: a.now()}
	if err = a.sessions.SaveSession(ctx, session); err != nil {
		a.logger.Err(err).Str("func", "clientAuthService.Login").Msg("session will not survive a restart")
	}

	me, err := a.adapter.Me(ctx)
	if err != nil {
		a.logger.Err(err).Str("func", "clientAuthService.Login").Msg("usage unavailable after login")
		return models.MeResponse{User: user, Usage: models.Usage{Limit: user.DailyLimit}}, nil
	}

	return me, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	if err := a.adapter.Logout(ctx); err != nil {
		a.logger.Err(err).Str("func", "clientAuthService.Logout").Msg("server logout failed")
	}

	if err := a.sessions.ClearSession(ctx); err != nil {
		return fmt.Errorf("clear local session: %w", err)
	}

	return nil
}

func (a *clientAuthService) forget(ctx context.Context) {
	a.adapter.SetSession("")
	if err := a.sessions.ClearSession(ctx); err != nil {
		a.logger.Err(err).Str("func", "clientAuthService.forget").Msg("error clearing local session")
	}
}

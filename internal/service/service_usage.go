// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-insight-keeper/internal/config"
	"github.com/MKhiriev/go-insight-keeper/internal/logger"
	"github.com/MKhiriev/go-insight-keeper/internal/store"
	"github.com/MKhiriev/go-insight-keeper/models"
)

// QuotaDateLayout formats the calendar day a usage record belongs to.
const QuotaDateLayout = "2006-01-02"

type usageService struct {
	usageRepository store.UsageRepository

	// location decides where "today" starts and ends.
	location *time.Location
	now      func() time.Time

	logger *logger.Logger
}

// NewUsageService returns a ledger whose days follow cfg.QuotaTimezone.
func NewUsageService(usageRepository store.UsageRepository, cfg config.App, logger *logger.Logger) (UsageService, error) {
	location, err := time.LoadLocation(cfg.QuotaTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid quota timezone %q: %w", cfg.QuotaTimezone, err)
	}

	return newUsageService(usageRepository, location, time.Now, logger), nil
}

func newUsageService(usageRepository store.UsageRepository, location *time.Location, now func() time.Time, logger *logger.Logger) *usageService {
	return &usageService{
		usageRepository: usageRepository,
		location:        location,
		now:             now,
		logger:          logger,
	}
}

func (s *usageService) today() string {
	return s.now().In(s.location).Format(QuotaDateLayout)
}

func (s *usageService) Check(ctx context.Context, user models.User) (models.Usage, error) {
	usage, err := s.Current(ctx, user)
	if err != nil {
		return models.Usage{}, err
	}

	if usage.Used >= usage.Limit {
		logger.FromContext(ctx).Info().
			Int64("user_id", user.UserID).
			Int("used", usage.Used).
			Int("limit", usage.Limit).
			Msg("daily quota exceeded")
		return usage, &QuotaExceededError{Usage: usage}
	}

	return usage, nil
}

func (s *usageService) Consume(ctx context.Context, user models.User) (models.Usage, error) {
	count, err := s.usageRepository.Increment(ctx, user.UserID, s.today())
	if err != nil {
		return models.Usage{}, fmt.Errorf("error consuming quota unit: %w", err)
	}

	return models.Usage{Used: count, Limit: user.DailyLimit}, nil
}

func (s *usageService) Current(ctx context.Context, user models.User) (models.Usage, error) {
	used, err := s.usageRepository.GetUsage(ctx, user.UserID, s.today())
	if err != nil {
		return models.Usage{}, fmt.Errorf("error reading quota usage: %w", err)
	}

	return models.Usage{Used: used, Limit: user.DailyLimit}, nil
}

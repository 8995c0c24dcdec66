package service

import (
	"fmt"

	"github.com/MKhiriev/go-insight-keeper/internal/config"
	"github.com/MKhiriev/go-insight-keeper/internal/logger"
	"github.com/MKhiriev/go-insight-keeper/internal/provider"
	"github.com/MKhiriev/go-insight-keeper/internal/store"
	"github.com/MKhiriev/go-insight-keeper/internal/validators"
)

type Services struct {
	AuthService         AuthService
	UsageService        UsageService
	ConversationService ConversationService
	AnalysisService     AnalysisService
	AppInfoService      AppInfoService
}

func NewServices(storages *store.Storages, analysisProvider provider.AnalysisProvider, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	validator := validators.NewAnalysisValidator()

	usageService, err := NewUsageService(storages.UsageRepository, cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating usage service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	conversationService := NewConversationService(storages.ConversationRepository, validator, logger)

	return &Services{
		AuthService:         NewAuthService(storages.UserRepository, cfg.App, logger),
		UsageService:        usageService,
		ConversationService: conversationService,
		AnalysisService:     NewAnalysisService(analysisProvider, usageService, conversationService, validator, logger),
		AppInfoService:      appInfoService,
	}, nil
}

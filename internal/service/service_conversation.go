package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-insight-keeper/internal/insight"
	"github.com/MKhiriev/go-insight-keeper/internal/logger"
	"github.com/MKhiriev/go-insight-keeper/internal/store"
	"github.com/MKhiriev/go-insight-keeper/internal/validators"
	"github.com/MKhiriev/go-insight-keeper/models"
)

type conversationService struct {
	conversationRepository store.ConversationRepository
	validator              validators.Validator

	logger *logger.Logger
}

func NewConversationService(conversationRepository store.ConversationRepository, validator validators.Validator, logger *logger.Logger) ConversationService {
	return &conversationService{
		conversationRepository: conversationRepository,
		validator:              validator,
		logger:                 logger,
	}
}

func (s *conversationService) Create(ctx context.Context, userID int64) (models.Conversation, error) {
	conversation, err := s.conversationRepository.Create(ctx, userID, models.DefaultConversationTitle)
	if err != nil {
		return models.Conversation{}, fmt.Errorf("error creating conversation: %w", err)
	}

	return conversation, nil
}

func (s *conversationService) Get(ctx context.Context, userID, conversationID int64) (models.Conversation, error) {
	conversation, err := s.conversationRepository.Get(ctx, userID, conversationID)
	if err != nil {
		return models.Conversation{}, fmt.Errorf("error getting conversation: %w", err)
	}

	return conversation, nil
}

// Update applies a partial patch. An empty or invalid patch is rejected with
// ErrInvalidDataProvided before the store is touched.
func (s *conversationService) Update(ctx context.Context, userID, conversationID int64, patch models.ConversationPatch) error {
	if err := s.validator.Validate(ctx, patch); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if patch.Blocks != nil {
		sorted := insight.Clone(*patch.Blocks)
		insight.SortByStrength(sorted)
		patch.Blocks = &sorted
	}

	if err := s.conversationRepository.Update(ctx, userID, conversationID, patch); err != nil {
		return fmt.Errorf("error updating conversation: %w", err)
	}

	return nil
}

func (s *conversationService) List(ctx context.Context, userID int64) ([]models.ConversationSummary, error) {
	conversations, err := s.conversationRepository.List(ctx, userID, models.ConversationListLimit)
	if err != nil {
		return nil, fmt.Errorf("error listing conversations: %w", err)
	}

	return conversations, nil
}

func (s *conversationService) SaveAnalysis(ctx context.Context, userID, conversationID int64, blocks []models.InsightBlock, meta models.MetaAnalysis) error {
	blocks = insight.Clone(blocks)
	patch := models.ConversationPatch{Blocks: &blocks, Meta: &meta}

	if err := s.conversationRepository.Update(ctx, userID, conversationID, patch); err != nil {
		return fmt.Errorf("error saving analysis: %w", err)
	}

	return nil
}

func (s *conversationService) NameFromFirstInsight(ctx context.Context, userID, conversationID int64, title string) (bool, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return false, nil
	}

	renamed, err := s.conversationRepository.SetTitleIfDefault(ctx, userID, conversationID, models.DefaultConversationTitle, title)
	if err != nil && !errors.Is(err, store.ErrConversationNotFound) {
		return false, fmt.Errorf("error naming conversation: %w", err)
	}

	return renamed, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-insight-keeper/internal/insight"
	"github.com/MKhiriev/go-insight-keeper/internal/logger"
	"github.com/MKhiriev/go-insight-keeper/internal/provider"
	"github.com/MKhiriev/go-insight-keeper/internal/validators"
	"github.com/MKhiriev/go-insight-keeper/models"
	"github.com/rs/zerolog"
)

// analysisService orchestrates one turn of the incremental protocol:
// quota check, provider call, validation, merge, quota increment and
// best-effort persistence.
type analysisService struct {
	provider      provider.AnalysisProvider
	usage         UsageService
	conversations ConversationService
	validator     validators.Validator

	logger *logger.Logger
}

func NewAnalysisService(
	analysisProvider provider.AnalysisProvider,
	usage UsageService,
	conversations ConversationService,
	validator validators.Validator,
	logger *logger.Logger,
) AnalysisService {
	return &analysisService{
		provider:      analysisProvider,
		usage:         usage,
		conversations: conversations,
		validator:     validator,
		logger:        logger,
	}
}

// Analyze runs one turn for user.
//
// The provider is never called for an empty segment or when the quota is
// used up. A unit is consumed only after the provider answered with a valid
// result, even when that result carries no operations. Persistence errors
// are logged and do not fail the turn.
func (s *analysisService) Analyze(ctx context.Context, user models.User, req models.AnalysisRequest) (models.AnalysisResponse, error) {
	log := logger.FromContext(ctx).With().Int64("user_id", user.UserID).Logger()

	req.NewTranscript = strings.TrimSpace(req.NewTranscript)
	if err := s.validator.Validate(ctx, req); err != nil {
		if errors.Is(err, validators.ErrEmptyTranscript) {
			return models.AnalysisResponse{}, ErrEmptyTranscript
		}
		return models.AnalysisResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	before, err := s.usage.Check(ctx, user)
	if err != nil {
		return models.AnalysisResponse{}, err
	}

	prompt, err := provider.BuildPrompt(req)
	if err != nil {
		return models.AnalysisResponse{}, fmt.Errorf("error building prompt: %w", err)
	}

	raw, err := s.provider.Analyze(ctx, prompt)
	if err != nil {
		log.Err(err).Str("provider", s.provider.Name()).Msg("analysis provider call failed")
		return models.AnalysisResponse{}, fmt.Errorf("analysis provider call failed: %w", err)
	}

	result, err := provider.ParseResult(raw)
	if err != nil {
		log.Err(err).Str("provider", s.provider.Name()).Int("raw_length", len(raw)).Msg("analysis provider answer rejected")
		return models.AnalysisResponse{}, err
	}

	merged := insight.Apply(req.ExistingBlocks, result.Operations)
	log.Debug().
		Int("added", merged.Added).
		Int("updated", merged.Updated).
		Int("removed", merged.Removed).
		Int("skipped", merged.Skipped).
		Msg("analysis turn merged")

	usage, err := s.usage.Consume(ctx, user)
	if err != nil {
		log.Err(err).Msg("failed to consume quota unit after a successful analysis")
		usage = models.Usage{Used: before.Used + 1, Limit: before.Limit}
	}

	if req.ConversationID != nil {
		s.persist(ctx, log, user.UserID, *req.ConversationID, merged, result.Meta)
	}

	return models.AnalysisResponse{
		Blocks: result.Operations,
		Meta:   result.Meta,
		Usage:  usage,
	}, nil
}

func (s *analysisService) persist(ctx context.Context, log zerolog.Logger, userID, conversationID int64, merged insight.ApplyResult, meta models.MetaAnalysis) {
	if err := s.conversations.SaveAnalysis(ctx, userID, conversationID, merged.Blocks, meta); err != nil {
		log.Warn().Err(err).Int64("conversation_id", conversationID).Msg("failed to persist analysis")
	}

	if merged.FirstTitle == "" {
		return
	}

	renamed, err := s.conversations.NameFromFirstInsight(ctx, userID, conversationID, merged.FirstTitle)
	if err != nil {
		log.Warn().Err(err).Int64("conversation_id", conversationID).Msg("failed to name conversation")
		return
	}
	if renamed {
		log.Debug().Int64("conversation_id", conversationID).Msg("conversation named after first insight")
	}
}

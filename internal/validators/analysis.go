// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-insight-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldOperations targets the operation list of an analysis result.
	FieldOperations = "blocks"
	// FieldMeta targets the meta-analysis of an analysis result.
	FieldMeta = "meta"

	FieldAction    = "action"
	FieldID        = "id"
	FieldType      = "type"
	FieldTitle     = "title"
	FieldSummary   = "summary"
	FieldStrength  = "strength"
	FieldSentiment = "sentiment"

	FieldSentimentOverall = "sentiment_overall"
	FieldEnergy           = "energy"
	FieldMetaSummary      = "meta_summary"
	FieldLanguagePatterns = "language_patterns"
	FieldActions          = "actions"

	FieldNewTranscript  = "new_transcript"
	FieldExistingBlocks = "existing_blocks"
	FieldConversationID = "conversation_id"

	FieldPatch = "patch"

	FieldEmail    = "email"
	FieldPassword = "password"
)

const (
	// MinLanguagePatterns, MaxLanguagePatterns and MaxActionItems bound the
	// meta-analysis lists.
	MinLanguagePatterns = 1
	MaxLanguagePatterns = 3
	MaxActionItems      = 5

	// MaxTranscriptLength caps a single analysis segment, in bytes.
	MaxTranscriptLength = 200_000
	// MaxExistingBlocks caps the collection a client may send as context.
	MaxExistingBlocks = 200
)

// AnalysisValidator validates analysis engine output and the requests that
// feed the analysis and conversation endpoints.
//
// Engine output is treated as untrusted: every operation is checked against
// the variant selected by its action before anything is merged.
type AnalysisValidator struct{}

// NewAnalysisValidator constructs an AnalysisValidator.
func NewAnalysisValidator() Validator {
	return &AnalysisValidator{}
}

func (v *AnalysisValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.AnalysisResult:
		return v.validateResult(ctx, value, fields...)
	case *models.AnalysisResult:
		return v.validateResult(ctx, *value, fields...)

	case models.BlockOperation:
		return v.validateOperation(value, fields...)
	case *models.BlockOperation:
		return v.validateOperation(*value, fields...)

	case models.MetaAnalysis:
		return v.validateMeta(value, fields...)
	case *models.MetaAnalysis:
		return v.validateMeta(*value, fields...)

	case models.AnalysisRequest:
		return v.validateAnalysisRequest(value, fields...)
	case *models.AnalysisRequest:
		return v.validateAnalysisRequest(*value, fields...)

	case models.ConversationPatch:
		return v.validatePatch(value, fields...)
	case *models.ConversationPatch:
		return v.validatePatch(*value, fields...)

	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AnalysisValidator) validateResult(_ context.Context, result models.AnalysisResult, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOperations, FieldMeta}
	}

	for _, f := range fields {
		switch f {
		case FieldOperations:
			if result.Operations == nil {
				return ErrNilOperations
			}
			for i, op := range result.Operations {
				if err := v.validateOperation(op); err != nil {
					return fmt.Errorf("validation error at block %d: %w", i, err)
				}
			}
		case FieldMeta:
			if err := v.validateMeta(result.Meta); err != nil {
				return fmt.Errorf("validation error in meta: %w", err)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateOperation checks one tagged-union entry. Without explicit fields
// the required set depends on the action.
func (v *AnalysisValidator) validateOperation(op models.BlockOperation, fields ...string) error {
	if len(fields) == 0 {
		switch op.Action {
		case models.ActionAdd:
			fields = []string{FieldID, FieldType, FieldTitle, FieldSummary, FieldStrength, FieldSentiment}
		case models.ActionUpdate:
			fields = []string{FieldID}
		case models.ActionRemove:
			return v.validateOperation(op, FieldID)
		default:
			return fmt.Errorf("%w: %q", ErrInvalidAction, op.Action)
		}
	}

	for _, f := range fields {
		switch f {
		case FieldAction:
			if op.Action != models.ActionAdd && op.Action != models.ActionUpdate && op.Action != models.ActionRemove {
				return fmt.Errorf("%w: %q", ErrInvalidAction, op.Action)
			}
		case FieldID:
			if strings.TrimSpace(op.ID) == "" {
				return ErrEmptyBlockID
			}
		case FieldType:
			if op.Type == nil || !op.Type.Valid() {
				return ErrInvalidBlockType
			}
		case FieldTitle:
			if op.Title == nil || strings.TrimSpace(*op.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldSummary:
			if op.Summary == nil || strings.TrimSpace(*op.Summary) == "" {
				return ErrEmptySummary
			}
		case FieldStrength:
			if op.Strength == nil || !validStrength(*op.Strength) {
				return ErrInvalidStrength
			}
		case FieldSentiment:
			if op.Sentiment != nil && !op.Sentiment.Valid() {
				return ErrInvalidSentiment
			}
		default:
			return ErrUnknownField
		}
	}

	// fields present on an update must be valid too
	if op.Action == models.ActionUpdate {
		return validatePresentFields(op)
	}

	return nil
}

func validatePresentFields(op models.BlockOperation) error {
	if op.Type != nil && !op.Type.Valid() {
		return ErrInvalidBlockType
	}
	if op.Title != nil && strings.TrimSpace(*op.Title) == "" {
		return ErrEmptyTitle
	}
	if op.Summary != nil && strings.TrimSpace(*op.Summary) == "" {
		return ErrEmptySummary
	}
	if op.Strength != nil && !validStrength(*op.Strength) {
		return ErrInvalidStrength
	}
	if op.Sentiment != nil && !op.Sentiment.Valid() {
		return ErrInvalidSentiment
	}

	return nil
}

func validStrength(s int) bool {
	return s >= models.MinStrength && s <= models.MaxStrength
}

func (v *AnalysisValidator) validateMeta(meta models.MetaAnalysis, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSentimentOverall, FieldEnergy, FieldMetaSummary, FieldLanguagePatterns, FieldActions}
	}

	for _, f := range fields {
		switch f {
		case FieldSentimentOverall:
			if !meta.SentimentOverall.Valid() {
				return ErrInvalidSentiment
			}
		case FieldEnergy:
			if !meta.Energy.Valid() {
				return ErrInvalidEnergy
			}
		case FieldMetaSummary:
			if strings.TrimSpace(meta.Summary) == "" {
				return ErrEmptyMetaSummary
			}
		case FieldLanguagePatterns:
			if n := len(meta.LanguagePatterns); n < MinLanguagePatterns || n > MaxLanguagePatterns {
				return fmt.Errorf("%w: got %d", ErrPatternCount, n)
			}
			for _, p := range meta.LanguagePatterns {
				if strings.TrimSpace(p.Label) == "" {
					return ErrEmptyLabel
				}
			}
		case FieldActions:
			if len(meta.Actions) > MaxActionItems {
				return fmt.Errorf("%w: %d actions", ErrTooManyItems, len(meta.Actions))
			}
			for _, a := range meta.Actions {
				if strings.TrimSpace(a.Text) == "" {
					return ErrEmptyActionText
				}
				if !a.Kind.Valid() {
					return ErrInvalidActionKind
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AnalysisValidator) validateAnalysisRequest(req models.AnalysisRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNewTranscript, FieldExistingBlocks, FieldConversationID}
	}

	for _, f := range fields {
		switch f {
		case FieldNewTranscript:
			if strings.TrimSpace(req.NewTranscript) == "" {
				return ErrEmptyTranscript
			}
			if len(req.NewTranscript) > MaxTranscriptLength {
				return ErrTranscriptTooLong
			}
		case FieldExistingBlocks:
			if len(req.ExistingBlocks) > MaxExistingBlocks {
				return ErrTooManyExistingBlocks
			}
			if err := validateBlocks(req.ExistingBlocks); err != nil {
				return err
			}
		case FieldConversationID:
			if req.ConversationID != nil && *req.ConversationID <= 0 {
				return ErrInvalidConversation
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateBlocks checks a client-held collection: unique non-empty ids.
func validateBlocks(blocks []models.InsightBlock) error {
	seen := make(map[string]struct{}, len(blocks))
	for _, b := range blocks {
		if strings.TrimSpace(b.ID) == "" {
			return ErrEmptyBlockID
		}
		if _, dup := seen[b.ID]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateBlockID, b.ID)
		}
		seen[b.ID] = struct{}{}
	}

	return nil
}

func (v *AnalysisValidator) validatePatch(patch models.ConversationPatch, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPatch}
	}

	for _, f := range fields {
		switch f {
		case FieldPatch:
			if patch.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
			if patch.Blocks != nil {
				if err := validateBlocks(*patch.Blocks); err != nil {
					return err
				}
			}
			if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
				return ErrEmptyTitle
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AnalysisValidator) validateCredentials(creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if strings.TrimSpace(creds.Email) == "" {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

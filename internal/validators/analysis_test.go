package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-insight-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func ptr[T any](v T) *T { return &v }

func validAdd() models.BlockOperation {
	return models.BlockOperation{
		Action:   models.ActionAdd,
		ID:       "p1",
		Type:     ptr(models.Pattern),
		Title:    ptr("Recurring deadline talk"),
		Summary:  ptr("The team keeps returning to the deadline."),
		Strength: ptr(2),
	}
}

func validMeta() models.MetaAnalysis {
	return models.MetaAnalysis{
		SentimentOverall: models.Neutral,
		Energy:           models.EnergyMedium,
		LanguagePatterns: []models.LanguagePattern{{Label: "hedging", Meaning: "uncertainty"}},
		Summary:          "Planning call about the release.",
		Actions:          []models.ActionItem{{Text: "Send the draft", Kind: models.KindAction}},
	}
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewAnalysisValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
	assert.NoError(t, v.Validate(ctx, validAdd()))
	op := validAdd()
	assert.NoError(t, v.Validate(ctx, &op))
	assert.NoError(t, v.Validate(ctx, validMeta()))
	assert.ErrorIs(t, v.Validate(ctx, validMeta(), "nope"), ErrUnknownField)
}

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

func TestValidate_Operation(t *testing.T) {
	v := NewAnalysisValidator()

	tests := []struct {
		name    string
		op      func() models.BlockOperation
		wantErr error
	}{
		{"valid add", validAdd, nil},
		{"add without title", func() models.BlockOperation { op := validAdd(); op.Title = nil; return op }, ErrEmptyTitle},
		{"add with blank summary", func() models.BlockOperation { op := validAdd(); op.Summary = ptr("  "); return op }, ErrEmptySummary},
		{"add with unknown type", func() models.BlockOperation {
			op := validAdd()
			op.Type = ptr(models.InsightType("patroon"))
			return op
		}, ErrInvalidBlockType},
		{"add strength zero", func() models.BlockOperation { op := validAdd(); op.Strength = ptr(0); return op }, ErrInvalidStrength},
		{"add strength six", func() models.BlockOperation { op := validAdd(); op.Strength = ptr(6); return op }, ErrInvalidStrength},
		{"add without strength", func() models.BlockOperation { op := validAdd(); op.Strength = nil; return op }, ErrInvalidStrength},
		{"add with bad sentiment", func() models.BlockOperation {
			op := validAdd()
			op.Sentiment = ptr(models.Sentiment("happy"))
			return op
		}, ErrInvalidSentiment},
		{"add without id", func() models.BlockOperation { op := validAdd(); op.ID = ""; return op }, ErrEmptyBlockID},
		{"update with id only", func() models.BlockOperation {
			return models.BlockOperation{Action: models.ActionUpdate, ID: "p1"}
		}, nil},
		{"update with strength", func() models.BlockOperation {
			return models.BlockOperation{Action: models.ActionUpdate, ID: "p1", Strength: ptr(4)}
		}, nil},
		{"update with invalid strength", func() models.BlockOperation {
			return models.BlockOperation{Action: models.ActionUpdate, ID: "p1", Strength: ptr(9)}
		}, ErrInvalidStrength},
		{"update with blank title", func() models.BlockOperation {
			return models.BlockOperation{Action: models.ActionUpdate, ID: "p1", Title: ptr("")}
		}, ErrEmptyTitle},
		{"update without id", func() models.BlockOperation {
			return models.BlockOperation{Action: models.ActionUpdate, Strength: ptr(3)}
		}, ErrEmptyBlockID},
		{"remove with id", func() models.BlockOperation {
			return models.BlockOperation{Action: models.ActionRemove, ID: "p1"}
		}, nil},
		{"remove ignores other fields", func() models.BlockOperation {
			return models.BlockOperation{Action: models.ActionRemove, ID: "p1", Strength: ptr(42)}
		}, nil},
		{"remove without id", func() models.BlockOperation {
			return models.BlockOperation{Action: models.ActionRemove}
		}, ErrEmptyBlockID},
		{"unknown action", func() models.BlockOperation {
			return models.BlockOperation{Action: "merge", ID: "p1"}
		}, ErrInvalidAction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.op())
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// Results and meta
// ---------------------------------------------------------------------------

func TestValidate_Result(t *testing.T) {
	v := NewAnalysisValidator()
	ctx := context.Background()

	t.Run("empty operation list is valid", func(t *testing.T) {
		err := v.Validate(ctx, models.AnalysisResult{Operations: []models.BlockOperation{}, Meta: validMeta()})
		assert.NoError(t, err)
	})

	t.Run("missing operation list", func(t *testing.T) {
		err := v.Validate(ctx, models.AnalysisResult{Meta: validMeta()})
		assert.ErrorIs(t, err, ErrNilOperations)
	})

	t.Run("bad operation reports its index", func(t *testing.T) {
		bad := validAdd()
		bad.Strength = ptr(7)
		err := v.Validate(ctx, &models.AnalysisResult{Operations: []models.BlockOperation{validAdd(), bad}, Meta: validMeta()})
		require.ErrorIs(t, err, ErrInvalidStrength)
		assert.Contains(t, err.Error(), "block 1")
	})

	t.Run("bad meta", func(t *testing.T) {
		meta := validMeta()
		meta.Energy = "hoog"
		err := v.Validate(ctx, models.AnalysisResult{Operations: []models.BlockOperation{}, Meta: meta})
		assert.ErrorIs(t, err, ErrInvalidEnergy)
	})
}

func TestValidate_Meta(t *testing.T) {
	v := NewAnalysisValidator()

	tests := []struct {
		name    string
		mutate  func(*models.MetaAnalysis)
		wantErr error
	}{
		{"valid", func(*models.MetaAnalysis) {}, nil},
		{"no language patterns", func(m *models.MetaAnalysis) { m.LanguagePatterns = nil }, ErrPatternCount},
		{"three language patterns", func(m *models.MetaAnalysis) {
			m.LanguagePatterns = []models.LanguagePattern{{Label: "a"}, {Label: "b"}, {Label: "c"}}
		}, nil},
		{"no actions", func(m *models.MetaAnalysis) { m.Actions = nil }, nil},
		{"unknown sentiment", func(m *models.MetaAnalysis) { m.SentimentOverall = "" }, ErrInvalidSentiment},
		{"unknown energy", func(m *models.MetaAnalysis) { m.Energy = "extreme" }, ErrInvalidEnergy},
		{"missing summary", func(m *models.MetaAnalysis) { m.Summary = " " }, ErrEmptyMetaSummary},
		{"too many patterns", func(m *models.MetaAnalysis) {
			m.LanguagePatterns = []models.LanguagePattern{{Label: "a"}, {Label: "b"}, {Label: "c"}, {Label: "d"}}
		}, ErrPatternCount},
		{"blank label", func(m *models.MetaAnalysis) {
			m.LanguagePatterns = []models.LanguagePattern{{Meaning: "x"}}
		}, ErrEmptyLabel},
		{"too many actions", func(m *models.MetaAnalysis) {
			m.Actions = make([]models.ActionItem, MaxActionItems+1)
		}, ErrTooManyItems},
		{"bad action kind", func(m *models.MetaAnalysis) {
			m.Actions = []models.ActionItem{{Text: "x", Kind: "actie"}}
		}, ErrInvalidActionKind},
		{"blank action text", func(m *models.MetaAnalysis) {
			m.Actions = []models.ActionItem{{Kind: models.KindDecision}}
		}, ErrEmptyActionText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := validMeta()
			tt.mutate(&meta)
			err := v.Validate(context.Background(), meta)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// Requests
// ---------------------------------------------------------------------------

func TestValidate_AnalysisRequest(t *testing.T) {
	v := NewAnalysisValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.AnalysisRequest{NewTranscript: "hello"}))
	assert.ErrorIs(t, v.Validate(ctx, models.AnalysisRequest{NewTranscript: " \n\t"}), ErrEmptyTranscript)
	assert.ErrorIs(t, v.Validate(ctx, models.AnalysisRequest{NewTranscript: strings.Repeat("a", MaxTranscriptLength+1)}), ErrTranscriptTooLong)
	assert.ErrorIs(t, v.Validate(ctx, &models.AnalysisRequest{NewTranscript: "x", ConversationID: ptr[int64](0)}), ErrInvalidConversation)
	assert.ErrorIs(t, v.Validate(ctx, models.AnalysisRequest{
		NewTranscript:  "x",
		ExistingBlocks: []models.InsightBlock{{ID: "a"}, {ID: "a"}},
	}), ErrDuplicateBlockID)

	// only the transcript is checked when scoped
	assert.NoError(t, v.Validate(ctx, models.AnalysisRequest{
		NewTranscript:  "x",
		ConversationID: ptr[int64](-1),
	}, FieldNewTranscript))
}

func TestValidate_Patch(t *testing.T) {
	v := NewAnalysisValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.ConversationPatch{}), ErrNoFieldsToUpdate)
	assert.NoError(t, v.Validate(ctx, models.ConversationPatch{Title: ptr("Retro")}))
	assert.ErrorIs(t, v.Validate(ctx, models.ConversationPatch{Title: ptr("")}), ErrEmptyTitle)
	assert.NoError(t, v.Validate(ctx, &models.ConversationPatch{Blocks: &[]models.InsightBlock{}}))
	assert.ErrorIs(t, v.Validate(ctx, models.ConversationPatch{
		Blocks: &[]models.InsightBlock{{ID: ""}},
	}), ErrEmptyBlockID)
}

func TestValidate_Credentials(t *testing.T) {
	v := NewAnalysisValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.Credentials{Email: "a@b.c", Password: "pw"}))
	assert.ErrorIs(t, v.Validate(ctx, models.Credentials{Password: "pw"}), ErrEmptyEmail)
	assert.ErrorIs(t, v.Validate(ctx, &models.Credentials{Email: "a@b.c"}), ErrEmptyPassword)
	assert.NoError(t, v.Validate(ctx, models.Credentials{Email: "a@b.c"}, FieldEmail))
}

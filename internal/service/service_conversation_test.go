package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-insight-keeper/internal/logger"
	"github.com/MKhiriev/go-insight-keeper/internal/mock"
	"github.com/MKhiriev/go-insight-keeper/internal/store"
	"github.com/MKhiriev/go-insight-keeper/internal/validators"
	"github.com/MKhiriev/go-insight-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ptr[T any](v T) *T { return &v }

func newTestConversationSvc(t *testing.T) (ConversationService, *mock.MockConversationRepository) {
	t.Helper()
	repo := mock.NewMockConversationRepository(gomock.NewController(t))
	return NewConversationService(repo, validators.NewAnalysisValidator(), logger.Nop()), repo
}

func TestConversationService_Create_UsesDefaultTitle(t *testing.T) {
	svc, repo := newTestConversationSvc(t)
	repo.EXPECT().Create(gomock.Any(), int64(1), models.DefaultConversationTitle).
		Return(models.Conversation{ID: 10, Title: models.DefaultConversationTitle, Blocks: []models.InsightBlock{}}, nil)

	conv, err := svc.Create(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(10), conv.ID)
}

func TestConversationService_Update_EmptyPatchNeverReachesStore(t *testing.T) {
	svc, repo := newTestConversationSvc(t)
	repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := svc.Update(context.Background(), 1, 10, models.ConversationPatch{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrNoFieldsToUpdate)
}

func TestConversationService_Update_SortsBlocks(t *testing.T) {
	svc, repo := newTestConversationSvc(t)
	blocks := []models.InsightBlock{{ID: "a", Strength: 1}, {ID: "b", Strength: 4}}

	repo.EXPECT().Update(gomock.Any(), int64(1), int64(10), gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ int64, patch models.ConversationPatch) error {
			require.NotNil(t, patch.Blocks)
			assert.Equal(t, "b", (*patch.Blocks)[0].ID)
			return nil
		})

	require.NoError(t, svc.Update(context.Background(), 1, 10, models.ConversationPatch{Blocks: &blocks}))
	assert.Equal(t, "a", blocks[0].ID, "caller's slice is untouched")
}

func TestConversationService_Get_NotFound(t *testing.T) {
	svc, repo := newTestConversationSvc(t)
	repo.EXPECT().Get(gomock.Any(), int64(2), int64(10)).Return(models.Conversation{}, store.ErrConversationNotFound)

	_, err := svc.Get(context.Background(), 2, 10)
	assert.ErrorIs(t, err, store.ErrConversationNotFound)
}

func TestConversationService_List_UsesLimit(t *testing.T) {
	svc, repo := newTestConversationSvc(t)
	repo.EXPECT().List(gomock.Any(), int64(1), models.ConversationListLimit).Return([]models.ConversationSummary{{ID: 1}}, nil)

	list, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestConversationService_SaveAnalysis(t *testing.T) {
	svc, repo := newTestConversationSvc(t)
	meta := models.MetaAnalysis{Summary: "s"}

	repo.EXPECT().Update(gomock.Any(), int64(1), int64(10), gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ int64, patch models.ConversationPatch) error {
			assert.Nil(t, patch.Title)
			assert.Nil(t, patch.Transcript)
			assert.Equal(t, "s", patch.Meta.Summary)
			assert.Len(t, *patch.Blocks, 1)
			return nil
		})

	require.NoError(t, svc.SaveAnalysis(context.Background(), 1, 10, []models.InsightBlock{{ID: "p1"}}, meta))
}

func TestConversationService_NameFromFirstInsight(t *testing.T) {
	ctx := context.Background()

	t.Run("blank title", func(t *testing.T) {
		svc, repo := newTestConversationSvc(t)
		repo.EXPECT().SetTitleIfDefault(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		renamed, err := svc.NameFromFirstInsight(ctx, 1, 10, "  ")
		require.NoError(t, err)
		assert.False(t, renamed)
	})

	t.Run("title names the conversation", func(t *testing.T) {
		svc, repo := newTestConversationSvc(t)
		repo.EXPECT().SetTitleIfDefault(gomock.Any(), int64(1), int64(10), models.DefaultConversationTitle, "Deadlines").Return(true, nil)

		renamed, err := svc.NameFromFirstInsight(ctx, 1, 10, " Deadlines ")
		require.NoError(t, err)
		assert.True(t, renamed)
	})

	t.Run("foreign conversation is ignored", func(t *testing.T) {
		svc, repo := newTestConversationSvc(t)
		repo.EXPECT().SetTitleIfDefault(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, store.ErrConversationNotFound)

		renamed, err := svc.NameFromFirstInsight(ctx, 1, 99, "T")
		require.NoError(t, err)
		assert.False(t, renamed)
	})
}

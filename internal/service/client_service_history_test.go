package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-insight-keeper/internal/adapter"
	"github.com/MKhiriev/go-insight-keeper/internal/mock"
	"github.com/MKhiriev/go-insight-keeper/internal/store"
	"github.com/MKhiriev/go-insight-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestClientHistoryService(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientHistoryService(mockAdapter)
	ctx := context.Background()

	mockAdapter.EXPECT().ListConversations(ctx).Return([]models.ConversationSummary{{ID: 2}, {ID: 1}}, nil)
	mockAdapter.EXPECT().GetConversation(ctx, int64(2)).Return(models.Conversation{ID: 2, Title: "Roadmap"}, nil)
	mockAdapter.EXPECT().GetConversation(ctx, int64(99)).
		Return(models.Conversation{}, fmt.Errorf("%w: conversation not found", adapter.ErrNotFound))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	conv, err := svc.Open(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Roadmap", conv.Title)

	_, err = svc.Open(ctx, 99)
	assert.ErrorIs(t, err, store.ErrConversationNotFound)
}

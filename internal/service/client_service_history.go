package service

import (
	"context"

	"github.com/MKhiriev/go-insight-keeper/internal/adapter"
	"github.com/MKhiriev/go-insight-keeper/models"
)

type clientHistoryService struct {
	adapter adapter.ServerAdapter
}

func NewClientHistoryService(serverAdapter adapter.ServerAdapter) ClientHistoryService {
	return &clientHistoryService{adapter: serverAdapter}
}

func (h *clientHistoryService) List(ctx context.Context) ([]models.ConversationSummary, error) {
	list, err := h.adapter.ListConversations(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return list, nil
}

func (h *clientHistoryService) Open(ctx context.Context, conversationID int64) (models.Conversation, error) {
	conversation, err := h.adapter.GetConversation(ctx, conversationID)
	if err != nil {
		return models.Conversation{}, mapAdapterError(err)
	}
	return conversation, nil
}

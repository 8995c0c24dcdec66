package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-insight-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createConversation(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	conversation, err := h.services.ConversationService.Create(r.Context(), user.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, models.ConversationResponse{Conversation: conversation}, http.StatusCreated)
}

func (h *Handler) listConversations(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	conversations, err := h.services.ConversationService.List(r.Context(), user.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if conversations == nil {
		conversations = []models.ConversationSummary{}
	}

	writeResponse(w, r, models.ConversationListResponse{Conversations: conversations}, http.StatusOK)
}

func (h *Handler) getConversation(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	conversationID, err := conversationIDFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	conversation, err := h.services.ConversationService.Get(r.Context(), user.UserID, conversationID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, models.ConversationResponse{Conversation: conversation}, http.StatusOK)
}

func (h *Handler) updateConversation(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	conversationID, err := conversationIDFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var patch models.ConversationPatch
	if err = decodeJSON(r, &patch); err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.ConversationService.Update(r.Context(), user.UserID, conversationID, patch); err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, models.OKResponse{OK: true}, http.StatusOK)
}

// conversationIDFromPath parses {id}. Anything but a positive integer is
// reported as not found, like a foreign conversation.
func conversationIDFromPath(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidConversationID
	}
	return id, nil
}

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-insight-keeper/internal/config"
	"github.com/MKhiriev/go-insight-keeper/internal/service"
	"github.com/MKhiriev/go-insight-keeper/internal/store"
	"github.com/MKhiriev/go-insight-keeper/internal/validators"
	"github.com/MKhiriev/go-insight-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateConversation(t *testing.T) {
	h, ts := newMockedHandler(t, config.Server{})
	ts.expectSession(testUser)

	started := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	ts.conversations.EXPECT().Create(gomock.Any(), testUser.UserID).Return(models.Conversation{
		ID:        11,
		UserID:    testUser.UserID,
		Title:     models.DefaultConversationTitle,
		Blocks:    []models.InsightBlock{},
		StartedAt: started,
	}, nil)

	rec := serve(h, withSessionCookie(newJSONRequest(t, http.MethodPost, "/api/conversations", nil)))

	require.Equal(t, http.StatusCreated, rec.Code)

	var body models.ConversationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(11), body.Conversation.ID)
	assert.Equal(t, models.DefaultConversationTitle, body.Conversation.Title)
	assert.True(t, started.Equal(body.Conversation.StartedAt))
}

func TestListConversations_EmptyIsArray(t *testing.T) {
	h, ts := newMockedHandler(t, config.Server{})
	ts.expectSession(testUser)
	ts.conversations.EXPECT().List(gomock.Any(), testUser.UserID).Return(nil, nil)

	rec := serve(h, withSessionCookie(newJSONRequest(t, http.MethodGet, "/api/conversations", nil)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"conversations":[]}`, rec.Body.String())
}

func TestListConversations(t *testing.T) {
	h, ts := newMockedHandler(t, config.Server{})
	ts.expectSession(testUser)
	ts.conversations.EXPECT().List(gomock.Any(), testUser.UserID).Return([]models.ConversationSummary{
		{ID: 2, Title: "Budget", BlockCount: 3},
		{ID: 1, Title: models.DefaultConversationTitle},
	}, nil)

	rec := serve(h, withSessionCookie(newJSONRequest(t, http.MethodGet, "/api/conversations", nil)))

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.ConversationListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Conversations, 2)
	assert.Equal(t, "Budget", body.Conversations[0].Title)
	assert.Equal(t, 3, body.Conversations[0].BlockCount)
}

func TestGetConversation(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		setup      func(ts *testServices)
		wantStatus int
		wantError  string
	}{
		{
			name: "own conversation",
			path: "/api/conversations/5",
			setup: func(ts *testServices) {
				ts.conversations.EXPECT().Get(gomock.Any(), testUser.UserID, int64(5)).
					Return(models.Conversation{ID: 5, Title: "Budget"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "absent or foreign conversation",
			path: "/api/conversations/6",
			setup: func(ts *testServices) {
				ts.conversations.EXPECT().Get(gomock.Any(), testUser.UserID, int64(6)).
					Return(models.Conversation{}, fmt.Errorf("error getting conversation: %w", store.ErrConversationNotFound))
			},
			wantStatus: http.StatusNotFound,
			wantError:  "conversation not found",
		},
		{
			name:       "non numeric id",
			path:       "/api/conversations/abc",
			wantStatus: http.StatusNotFound,
			wantError:  "conversation not found",
		},
		{
			name:       "zero id",
			path:       "/api/conversations/0",
			wantStatus: http.StatusNotFound,
			wantError:  "conversation not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ts := newMockedHandler(t, config.Server{})
			ts.expectSession(testUser)
			if tt.setup != nil {
				tt.setup(ts)
			}

			rec := serve(h, withSessionCookie(newJSONRequest(t, http.MethodGet, tt.path, nil)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, decodeError(t, rec).Error)
				return
			}

			var body models.ConversationResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "Budget", body.Conversation.Title)
		})
	}
}

func TestUpdateConversation_TitleRoundTrip(t *testing.T) {
	h, ts := newMockedHandler(t, config.Server{})

	var stored models.Conversation
	stored.ID = 5
	stored.Title = models.DefaultConversationTitle

	ts.auth.EXPECT().Authenticate(gomock.Any(), testToken).Return(testUser, nil).Times(2)
	ts.conversations.EXPECT().Update(gomock.Any(), testUser.UserID, int64(5), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, _ int64, patch models.ConversationPatch) error {
			if patch.Title != nil {
				stored.Title = *patch.Title
			}
			return nil
		})
	ts.conversations.EXPECT().Get(gomock.Any(), testUser.UserID, int64(5)).
		DoAndReturn(func(_ context.Context, _ int64, _ int64) (models.Conversation, error) {
			return stored, nil
		})

	rec := serve(h, withSessionCookie(newJSONRequest(t, http.MethodPatch, "/api/conversations/5",
		map[string]any{"title": "Quarterly budget"})))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())

	rec = serve(h, withSessionCookie(newJSONRequest(t, http.MethodGet, "/api/conversations/5", nil)))
	require.Equal(t, http.StatusOK, rec.Code)

	var body models.ConversationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Quarterly budget", body.Conversation.Title)
}

func TestUpdateConversation_PassesAllFields(t *testing.T) {
	h, ts := newMockedHandler(t, config.Server{})
	ts.expectSession(testUser)

	var got models.ConversationPatch
	ts.conversations.EXPECT().Update(gomock.Any(), testUser.UserID, int64(9), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, _ int64, patch models.ConversationPatch) error {
			got = patch
			return nil
		})

	rec := serve(h, withSessionCookie(newJSONRequest(t, http.MethodPatch, "/api/conversations/9", `{
		"transcript": "hello there",
		"blocks": [],
		"ended_at": "2026-03-01T11:00:00Z"
	}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got.Transcript)
	assert.Equal(t, "hello there", *got.Transcript)
	require.NotNil(t, got.Blocks)
	assert.Empty(t, *got.Blocks)
	require.NotNil(t, got.EndedAt)
	assert.Nil(t, got.Title)
	assert.Nil(t, got.Meta)
}

func TestUpdateConversation_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "empty patch",
			body:       `{}`,
			err:        fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrNoFieldsToUpdate),
			wantStatus: http.StatusBadRequest,
			wantError:  "no fields to update",
		},
		{
			name:       "invalid blocks",
			body:       `{"blocks":[{"id":""}]}`,
			err:        fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyBlockID),
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid data provided",
		},
		{
			name:       "foreign conversation",
			body:       `{"title":"x"}`,
			err:        fmt.Errorf("error updating conversation: %w", store.ErrConversationNotFound),
			wantStatus: http.StatusNotFound,
			wantError:  "conversation not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ts := newMockedHandler(t, config.Server{})
			ts.expectSession(testUser)
			ts.conversations.EXPECT().Update(gomock.Any(), testUser.UserID, int64(3), gomock.Any()).Return(tt.err)

			rec := serve(h, withSessionCookie(newJSONRequest(t, http.MethodPatch, "/api/conversations/3", tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantError, decodeError(t, rec).Error)
		})
	}
}

func TestUpdateConversation_MalformedBodySkipsService(t *testing.T) {
	h, ts := newMockedHandler(t, config.Server{})
	ts.expectSession(testUser)

	rec := serve(h, withSessionCookie(newJSONRequest(t, http.MethodPatch, "/api/conversations/3", `{"title":`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid data provided", decodeError(t, rec).Error)
}

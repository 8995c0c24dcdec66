package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-insight-keeper/internal/config"
	"github.com/MKhiriev/go-insight-keeper/internal/provider"
	"github.com/MKhiriev/go-insight-keeper/internal/service"
	"github.com/MKhiriev/go-insight-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAnalyze_Success(t *testing.T) {
	h, ts := newMockedHandler(t, config.Server{})
	ts.expectSession(testUser)

	conversationID := int64(4)
	want := models.AnalysisRequest{
		NewTranscript:   "we should cut the travel budget",
		PreviousSummary: "budget talk",
		ConversationID:  &conversationID,
	}

	ts.analysis.EXPECT().Analyze(gomock.Any(), testUser, want).Return(models.AnalysisResponse{
		Blocks: []models.BlockOperation{{Action: models.ActionAdd, ID: "p1"}},
		Meta:   models.MetaAnalysis{Summary: "cost cutting"},
		Usage:  models.Usage{Used: 1, Limit: 2},
	}, nil)

	rec := serve(h, withSessionCookie(newJSONRequest(t, http.MethodPost, "/api/analyze", want)))

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.AnalysisResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Blocks, 1)
	assert.Equal(t, "p1", body.Blocks[0].ID)
	assert.Equal(t, "cost cutting", body.Meta.Summary)
	assert.Equal(t, models.Usage{Used: 1, Limit: 2}, body.Usage)
}

func TestAnalyze_ZeroOperationsIsEmptyArray(t *testing.T) {
	h, ts := newMockedHandler(t, config.Server{})
	ts.expectSession(testUser)
	ts.analysis.EXPECT().Analyze(gomock.Any(), testUser, gomock.Any()).
		Return(models.AnalysisResponse{Usage: models.Usage{Used: 2, Limit: 2}}, nil)

	rec := serve(h, withSessionCookie(newJSONRequest(t, http.MethodPost, "/api/analyze",
		models.AnalysisRequest{NewTranscript: "uh huh"})))

	require.Equal(t, http.StatusOK, rec.Code)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.JSONEq(t, `[]`, string(raw["blocks"]))
}

func TestAnalyze_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
		wantUsage  *models.Usage
	}{
		{
			name:       "empty transcript",
			err:        service.ErrEmptyTranscript,
			wantStatus: http.StatusBadRequest,
			wantError:  "transcript is empty",
		},
		{
			name:       "invalid request",
			err:        fmt.Errorf("%w: too many blocks", service.ErrInvalidDataProvided),
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid data provided",
		},
		{
			name:       "quota exceeded",
			err:        &service.QuotaExceededError{Usage: models.Usage{Used: 2, Limit: 2}},
			wantStatus: http.StatusTooManyRequests,
			wantError:  "daily analysis limit reached",
			wantUsage:  &models.Usage{Used: 2, Limit: 2},
		},
		{
			name:       "provider unavailable",
			err:        fmt.Errorf("analyzing transcript: %w", provider.ErrProviderUnavailable),
			wantStatus: http.StatusBadGateway,
			wantError:  "analysis failed",
		},
		{
			name:       "malformed provider output",
			err:        fmt.Errorf("%w: no blocks", provider.ErrMalformedProviderResponse),
			wantStatus: http.StatusBadGateway,
			wantError:  "analysis failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ts := newMockedHandler(t, config.Server{})
			ts.expectSession(testUser)
			ts.analysis.EXPECT().Analyze(gomock.Any(), testUser, gomock.Any()).Return(models.AnalysisResponse{}, tt.err)

			rec := serve(h, withSessionCookie(newJSONRequest(t, http.MethodPost, "/api/analyze",
				models.AnalysisRequest{NewTranscript: "text"})))

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.wantError, body.Error)
			assert.Equal(t, tt.wantUsage, body.Usage)
		})
	}
}

func TestAnalyze_MalformedBodySkipsService(t *testing.T) {
	h, ts := newMockedHandler(t, config.Server{})
	ts.expectSession(testUser)
	ts.analysis.EXPECT().Analyze(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	rec := serve(h, withSessionCookie(newJSONRequest(t, http.MethodPost, "/api/analyze", `{"newTranscript": 5}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyze_OversizedBodyRejected(t *testing.T) {
	h, ts := newMockedHandler(t, config.Server{})
	ts.expectSession(testUser)
	ts.analysis.EXPECT().Analyze(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	huge := make([]byte, MaxBodyBytes+10)
	for i := range huge {
		huge[i] = 'a'
	}
	body := `{"newTranscript":"` + string(huge) + `"}`

	rec := serve(h, withSessionCookie(newJSONRequest(t, http.MethodPost, "/api/analyze", body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid data provided", decodeError(t, rec).Error)
}

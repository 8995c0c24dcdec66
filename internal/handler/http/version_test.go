package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-insight-keeper/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetServerVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{name: "semantic version", version: "1.2.3"},
		{name: "version with build metadata", version: "v2.0.0-rc.1+build.42"},
		{name: "empty version", version: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ts := newMockedHandler(t, config.Server{})
			ts.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(tt.version)

			rec := httptest.NewRecorder()
			h.getServerVersion(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.version, rec.Body.String())
			assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
		})
	}
}

func TestGetServerVersion_ViaRouterWithoutSession(t *testing.T) {
	h, ts := newMockedHandler(t, config.Server{})
	ts.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("0.9.0")

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0.9.0", rec.Body.String())
}

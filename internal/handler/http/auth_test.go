// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-insight-keeper/internal/config"
	"github.com/MKhiriev/go-insight-keeper/internal/service"
	"github.com/MKhiriev/go-insight-keeper/internal/store"
	"github.com/MKhiriev/go-insight-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLogin_Success(t *testing.T) {
	h, ts := newMockedHandler(t, config.Server{})
	ts.auth.EXPECT().Login(gomock.Any(), "ann@example.com", "secret").Return(testUser, nil)
	ts.auth.EXPECT().CreateToken(gomock.Any(), testUser).Return(models.Token{SignedString: testToken}, nil)

	rec := serve(h, newJSONRequest(t, http.MethodPost, "/api/auth/login",
		models.Credentials{Email: "ann@example.com", Password: "secret"}))

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, testUser.UserID, body.User.UserID)
	assert.Equal(t, testUser.Email, body.User.Email)
	assert.NotContains(t, rec.Body.String(), "password")

	cookie := findCookie(rec, SessionCookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, testToken, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, 604800, cookie.MaxAge)
}

func TestLogin_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		setup      func(ts *testServices)
		wantStatus int
		wantError  string
	}{
		{
			name:       "malformed json",
			body:       "{not json",
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid data provided",
		},
		{
			name:       "empty body",
			body:       "",
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid data provided",
		},
		{
			name:       "missing password",
			body:       models.Credentials{Email: "ann@example.com"},
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid data provided",
		},
		{
			name: "wrong credentials",
			body: models.Credentials{Email: "ann@example.com", Password: "nope"},
			setup: func(ts *testServices) {
				ts.auth.EXPECT().Login(gomock.Any(), "ann@example.com", "nope").Return(models.User{}, service.ErrInvalidCredentials)
			},
			wantStatus: http.StatusUnauthorized,
			wantError:  "invalid email or password",
		},
		{
			name: "inactive account",
			body: models.Credentials{Email: "ann@example.com", Password: "secret"},
			setup: func(ts *testServices) {
				ts.auth.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrAccountInactive)
			},
			wantStatus: http.StatusUnauthorized,
			wantError:  "invalid email or password",
		},
		{
			name: "store failure",
			body: models.Credentials{Email: "ann@example.com", Password: "secret"},
			setup: func(ts *testServices) {
				ts.auth.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(models.User{}, fmt.Errorf("finding user: %w", store.ErrExecutingQuery))
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  "internal server error",
		},
		{
			name: "token creation fails",
			body: models.Credentials{Email: "ann@example.com", Password: "secret"},
			setup: func(ts *testServices) {
				ts.auth.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(testUser, nil)
				ts.auth.EXPECT().CreateToken(gomock.Any(), testUser).Return(models.Token{}, service.ErrTokenCreationFailed)
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ts := newMockedHandler(t, config.Server{})
			if tt.setup != nil {
				tt.setup(ts)
			}

			rec := serve(h, newJSONRequest(t, http.MethodPost, "/api/auth/login", tt.body))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantError, decodeError(t, rec).Error)
			assert.Nil(t, findCookie(rec, SessionCookieName))
		})
	}
}

func TestLogin_Throttled(t *testing.T) {
	h, ts := newMockedHandler(t, config.Server{LoginRatePerMinute: 2})
	ts.auth.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.User{}, service.ErrInvalidCredentials).Times(2)

	creds := models.Credentials{Email: "ann@example.com", Password: "nope"}
	router := h.Init()

	codes := make([]int, 0, 3)
	for range 3 {
		req := newJSONRequest(t, http.MethodPost, "/api/auth/login", creds)
		req.RemoteAddr = "203.0.113.9:5555"
		rec := httptestRecorder(router, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusUnauthorized, http.StatusUnauthorized, http.StatusTooManyRequests}, codes)
}

func TestLogout_ClearsCookieWithoutSession(t *testing.T) {
	h, _ := newMockedHandler(t, config.Server{})

	rec := serve(h, newJSONRequest(t, http.MethodPost, "/api/auth/logout", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())

	cookie := findCookie(rec, SessionCookieName)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
}

func TestMe_ReturnsUserAndUsage(t *testing.T) {
	h, ts := newMockedHandler(t, config.Server{})
	ts.expectSession(testUser)
	ts.usage.EXPECT().Current(gomock.Any(), testUser).Return(models.Usage{Used: 1, Limit: 2}, nil)

	rec := serve(h, withSessionCookie(newJSONRequest(t, http.MethodGet, "/api/auth/me", nil)))

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.MeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, testUser.Email, body.User.Email)
	assert.Equal(t, models.Usage{Used: 1, Limit: 2}, body.Usage)
}

func TestMe_UsageFailure(t *testing.T) {
	h, ts := newMockedHandler(t, config.Server{})
	ts.expectSession(testUser)
	ts.usage.EXPECT().Current(gomock.Any(), testUser).Return(models.Usage{}, errors.New("redis down"))

	rec := serve(h, withSessionCookie(newJSONRequest(t, http.MethodGet, "/api/auth/me", nil)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal server error", decodeError(t, rec).Error)
}

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-insight-keeper/internal/config"
	"github.com/MKhiriev/go-insight-keeper/internal/logger"
	"github.com/MKhiriev/go-insight-keeper/internal/utils"
	"github.com/MKhiriev/go-insight-keeper/models"
	"github.com/go-resty/resty/v2"
)

// SessionCookieName must match the cookie the server sets on login.
const SessionCookieName = "insight_session"

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu      sync.RWMutex
	session string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises the base URL from adapterCfg.HTTPAddress and
// configures the request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetSession(session string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.session = strings.TrimSpace(session)
}

func (h *httpServerAdapter) Session() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.session
}

// Login posts the credentials to POST /api/auth/login and captures the
// session cookie from the response.
func (h *httpServerAdapter) Login(ctx context.Context, email, password string) (models.User, error) {
	var body models.UserResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.Credentials{Email: email, Password: password}).
		SetResult(&body).
		Post("/api/auth/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	session := sessionFromResponse(resp)
	if session == "" {
		return models.User{}, ErrNoSessionCookie
	}

	h.SetSession(session)
	return body.User, nil
}

func (h *httpServerAdapter) Logout(ctx context.Context) error {
	defer h.SetSession("")

	resp, err := h.authedRequest(ctx).Post("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Me(ctx context.Context) (models.MeResponse, error) {
	var body models.MeResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&body).
		Get("/api/auth/me")
	if err != nil {
		return models.MeResponse{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MeResponse{}, err
	}

	return body, nil
}

func (h *httpServerAdapter) CreateConversation(ctx context.Context) (models.Conversation, error) {
	var body models.ConversationResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&body).
		Post("/api/conversations")
	if err != nil {
		return models.Conversation{}, fmt.Errorf("create conversation request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Conversation{}, err
	}

	return body.Conversation, nil
}

func (h *httpServerAdapter) ListConversations(ctx context.Context) ([]models.ConversationSummary, error) {
	var body models.ConversationListResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&body).
		Get("/api/conversations")
	if err != nil {
		return nil, fmt.Errorf("list conversations request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return body.Conversations, nil
}

func (h *httpServerAdapter) GetConversation(ctx context.Context, conversationID int64) (models.Conversation, error) {
	var body models.ConversationResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&body).
		SetPathParam("id", strconv.FormatInt(conversationID, 10)).
		Get("/api/conversations/{id}")
	if err != nil {
		return models.Conversation{}, fmt.Errorf("get conversation request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Conversation{}, err
	}

	return body.Conversation, nil
}

func (h *httpServerAdapter) UpdateConversation(ctx context.Context, conversationID int64, patch models.ConversationPatch) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(patch).
		SetPathParam("id", strconv.FormatInt(conversationID, 10)).
		Patch("/api/conversations/{id}")
	if err != nil {
		return fmt.Errorf("update conversation request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Analyze(ctx context.Context, req models.AnalysisRequest) (models.AnalysisResponse, error) {
	var body models.AnalysisResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&body).
		Post("/api/analyze")
	if err != nil {
		return models.AnalysisResponse{}, fmt.Errorf("analyze request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AnalysisResponse{}, err
	}

	return body, nil
}

func (h *httpServerAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if session := h.Session(); session != "" {
		req.SetCookie(&http.Cookie{Name: SessionCookieName, Value: session})
	}
	return req
}

func sessionFromResponse(resp *resty.Response) string {
	for _, cookie := range resp.Cookies() {
		if cookie.Name == SessionCookieName && cookie.MaxAge >= 0 {
			return cookie.Value
		}
	}
	return ""
}

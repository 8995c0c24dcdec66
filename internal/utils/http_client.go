package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// UserAgent is sent by every outbound client of the application.
const UserAgent = "go-insight-keeper"

// HTTPClient embeds *resty.Client so callers keep the full resty API.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent JSON client rooted at baseURL. A
// trailing slash on baseURL is dropped; timeout <= 0 means no timeout.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("User-Agent", UserAgent).
		SetHeader("Content-Type", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}

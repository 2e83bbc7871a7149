package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://127.0.0.1:5001/api/v0", time.Minute)
//	resp, err := client.R().Post("/files/stat")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance bound to
// baseURL. A positive timeout bounds every request; zero leaves requests
// limited only by their context.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().SetBaseURL(baseURL)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}

// NewStreamingHTTPClient returns a client for long-running transfers.
// It shares baseURL semantics with NewHTTPClient but never sets a client-wide
// timeout, so uploads and downloads are bounded only by their context.
func NewStreamingHTTPClient(baseURL string) *HTTPClient {
	return NewHTTPClient(baseURL, 0)
}

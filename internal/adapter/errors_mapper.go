package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapTransportError converts a failed request (no response) into a sentinel.
func mapTransportError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w: %w", op, ErrTimeout, err)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrExternalService, err)
}

// storeError is the error body of the content store RPC API.
type storeError struct {
	Message string `json:"Message"`
	Code    int    `json:"Code"`
	Type    string `json:"Type"`
}

// mapStoreError maps a non-2xx content store answer. The RPC API reports
// missing paths as HTTP 500 with a message, so the message is inspected.
func mapStoreError(op string, status int, body []byte) error {
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	message := strings.TrimSpace(string(body))
	var parsed storeError
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Message != "" {
		message = parsed.Message
	}

	lower := strings.ToLower(message)
	switch {
	case status == http.StatusNotFound,
		strings.Contains(lower, "does not exist"),
		strings.Contains(lower, "not found"),
		strings.Contains(lower, "no link named"):
		return fmt.Errorf("%s: %w: %s", op, ErrNotFound, message)
	case strings.Contains(lower, "context deadline exceeded"),
		strings.Contains(lower, "timeout"):
		return fmt.Errorf("%s: %w: %s", op, ErrTimeout, message)
	default:
		return fmt.Errorf("%s: %w: http %d: %s", op, ErrExternalService, status, message)
	}
}

// mapPinningError maps a non-2xx pinning service answer.
func mapPinningError(op string, resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%s: %w: %w: %s", op, ErrExternalService, ErrUnauthorized, body)
	case http.StatusNotFound:
		return fmt.Errorf("%s: %w: %w: %s", op, ErrExternalService, ErrNotFound, body)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%s: %w: %w: %s", op, ErrExternalService, ErrTooManyRequests, body)
	default:
		return fmt.Errorf("%s: %w: http %d: %s", op, ErrExternalService, resp.StatusCode(), body)
	}
}

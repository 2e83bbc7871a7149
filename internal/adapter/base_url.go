package adapter

import (
	"fmt"
	"net/url"
	"strings"
)

// normalizeBaseURL accepts "host:port" or a full URL and returns a URL with a
// scheme and without a trailing slash.
func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty address", ErrInvalidAddress)
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: address must include host and scheme", ErrInvalidAddress)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

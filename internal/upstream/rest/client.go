// Package rest implements the generic JSON invoker used by every resource
// client: one blocking HTTP call in, either the raw 2xx body or a single
// *domain.APIError out. No retries, no redirects.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/wplex/atlas-admin/internal/api/metrics"
	"github.com/wplex/atlas-admin/internal/core/domain"
)

// DefaultTimeout bounds a single upstream call when no timeout is configured.
const DefaultTimeout = 120 * time.Second

type Client struct {
	http *http.Client
	log  zerolog.Logger
}

// New builds a Client with the given request timeout. Redirects are never
// followed: a 3xx response surfaces to the caller as an HTTP-status failure.
func New(timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		http: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		log: log,
	}
}

// Do performs one call and returns the response body on 2xx. Any failure
// (timeout, refused connection, non-2xx status, or other transport error)
// comes back as a *domain.APIError: parsed from the response body when the
// backend sent its structured payload, synthesized otherwise.
func (c *Client) Do(ctx context.Context, method, url string, cred domain.Credential, body []byte) ([]byte, error) {
	c.log.Debug().Str("method", method).Str("url", url).Msg("upstream request")

	var reader io.Reader
	if len(body) > 0 {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		c.fail(method, url, "transport", err)
		return nil, domain.ServiceUnavailable(url)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xf-provider-signature", cred.Provider)
	req.Header.Set("Authorization", "Bearer "+cred.Authorization)

	started := time.Now()
	res, err := c.http.Do(req)
	metrics.UpstreamRequestDuration.WithLabelValues(method).Observe(time.Since(started).Seconds())
	if err != nil {
		c.fail(method, url, categorize(err), err)
		return nil, domain.ServiceUnavailable(url)
	}
	defer res.Body.Close()

	payload, err := io.ReadAll(res.Body)
	if err != nil {
		c.fail(method, url, "transport", err)
		return nil, domain.ServiceUnavailable(url)
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		c.fail(method, url, "http_status", nil)
		c.log.Error().Str("url", url).Int("status", res.StatusCode).Msg("upstream returned error status")
		return nil, parseError(payload, res.StatusCode, url)
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(method, "success").Inc()
	return payload, nil
}

func (c *Client) fail(method, url, category string, err error) {
	metrics.UpstreamRequestsTotal.WithLabelValues(method, category).Inc()
	if err != nil {
		c.log.Error().Err(err).Str("url", url).Str("category", category).Msg("upstream request failed")
	}
}

// categorize maps a transport error onto the failure taxonomy used in logs
// and metrics.
func categorize(err error) string {
	var ne net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
		return "timeout"
	}
	var oe *net.OpError
	if errors.As(err, &oe) {
		return "connection"
	}
	return "transport"
}

// parseError builds the canonical APIError for a non-2xx response. A body is
// trusted to be the backend's structured payload; an empty or foreign body
// falls back to a synthesized error carrying the HTTP status.
func parseError(body []byte, status int, url string) *domain.APIError {
	if len(bytes.TrimSpace(body)) == 0 {
		return domain.ServiceUnavailable(url)
	}
	var ae domain.APIError
	if err := json.Unmarshal(body, &ae); err != nil || ae.Name == "" {
		return &domain.APIError{
			Name:       "HttpStatusError",
			Message:    http.StatusText(status),
			StatusCode: status,
			Timestamp:  time.Now().Unix(),
		}
	}
	if ae.StatusCode == 0 {
		ae.StatusCode = status
	}
	return &ae
}

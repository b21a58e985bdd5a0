package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/mm6683/Bpost-Tracker/internal/core/logger"
	"github.com/mm6683/Bpost-Tracker/internal/features/proxy/domain"
)

var (
	// ErrInvalidURL means the requested target is not an absolute URL.
	ErrInvalidURL = errors.New("invalid url supplied")
	// ErrOriginNotAllowed means the target origin is not the configured upstream.
	ErrOriginNotAllowed = errors.New("origin not allowed")
	// ErrMethodNotAllowed means the inbound request used a method other than GET.
	ErrMethodNotAllowed = errors.New("method not allowed")
)

// UpstreamError reports a transport failure on the outbound request. It
// keeps the cause so the handler can echo it to the caller.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream request failed: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// skipHeaders are upstream headers never relayed to the caller: hop-by-hop
// headers plus length bookkeeping the server recomputes itself.
var skipHeaders = map[string]struct{}{
	"Connection":        {},
	"Keep-Alive":        {},
	"Transfer-Encoding": {},
	"Content-Length":    {},
}

// ProxyService relays GET requests to the configured upstream origin and
// nothing else. It exists because browsers cannot call the tracking API
// directly; the service fetches server-side and hands the answer back under
// a permissive CORS policy.
type ProxyService struct {
	allowedOrigin string
	client        *http.Client
	logger        *zap.Logger
}

// NewProxyService creates a relay restricted to allowedOrigin,
// e.g. "https://track.bpost.cloud".
func NewProxyService(allowedOrigin string, client *http.Client) *ProxyService {
	return &ProxyService{
		allowedOrigin: allowedOrigin,
		client:        client,
		logger:        logger.Get(),
	}
}

// AllowedOrigin returns the only origin this service will relay to.
func (s *ProxyService) AllowedOrigin() string {
	return s.allowedOrigin
}

// Relay validates the target and method, performs the upstream GET, and
// returns the sanitized response. Validation is ordered: URL shape first,
// then origin, then method, so a bad URL is never leaked into an origin
// comparison and a disallowed origin is rejected regardless of method.
func (s *ProxyService) Relay(ctx context.Context, method, rawURL string) (*domain.RelayedResponse, error) {
	target, err := url.Parse(rawURL)
	if err != nil || target.Scheme == "" || target.Host == "" {
		return nil, ErrInvalidURL
	}

	origin := target.Scheme + "://" + strings.ToLower(target.Host)
	if !strings.HasPrefix(origin, s.allowedOrigin) {
		s.logger.Warn("Rejected proxy request for foreign origin",
			zap.String("origin", origin),
		)
		return nil, ErrOriginNotAllowed
	}

	if method != http.MethodGet {
		return nil, ErrMethodNotAllowed
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}

	header := make(http.Header, len(resp.Header))
	for key, values := range resp.Header {
		if _, skip := skipHeaders[http.CanonicalHeaderKey(key)]; skip {
			continue
		}
		for _, value := range values {
			header.Add(key, value)
		}
	}

	s.logger.Debug("Relayed upstream response",
		zap.String("url", rawURL),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)),
	)

	return &domain.RelayedResponse{
		Status: resp.StatusCode,
		Header: header,
		Body:   body,
	}, nil
}

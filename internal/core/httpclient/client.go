package httpclient

import (
	"net/http"
	"time"

	"github.com/mm6683/Bpost-Tracker/internal/core/logger"

	"go.uber.org/zap"
)

// UserAgent identifies this service on every outbound request that does not
// set its own User-Agent. The tracking upstream sees it on proxy relays and
// summary lookups alike.
const UserAgent = "bpost-tracker/1.0 (+https://github.com/mm6683/Bpost-Tracker)"

// LoggingRoundTripper captures request details for debugging.
type LoggingRoundTripper struct {
	// Proxied is the underlying RoundTripper to execute the request.
	Proxied http.RoundTripper
}

// RoundTrip executes the request and logs details.
func (lrt *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	logger.Get().Debug("HTTP Request Started",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
	)

	resp, err := lrt.Proxied.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		logger.Get().Error("HTTP Request Failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Get().Debug("HTTP Request Completed",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", duration),
	)

	return resp, nil
}

// identityRoundTripper stamps the service User-Agent on requests that carry
// none. The request is cloned first; RoundTrippers must not mutate their input.
type identityRoundTripper struct {
	next http.RoundTripper
}

// RoundTrip applies the default User-Agent and delegates.
func (irt *identityRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", UserAgent)
	}
	return irt.next.RoundTrip(req)
}

// NewClient returns an http.Client with the identifying User-Agent and
// logging middleware. The timeout is the only request-lifetime bound this
// service applies to outbound calls; nothing retries.
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: &LoggingRoundTripper{
			Proxied: &identityRoundTripper{next: http.DefaultTransport},
		},
		Timeout: timeout,
	}
}

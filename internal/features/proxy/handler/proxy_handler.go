package handler

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/mm6683/Bpost-Tracker/internal/core/metrics"
	"github.com/mm6683/Bpost-Tracker/internal/features/proxy/service"
)

// fixedHeaders are set by the handler itself on every relayed
// response. Upstream values for them are discarded rather than
// copied, so the response never carries duplicates.
var fixedHeaders = map[string]struct{}{
	"Access-Control-Allow-Origin":  {},
	"Access-Control-Allow-Methods": {},
	"Cache-Control":                {},
}

// ProxyHandler exposes the relay over HTTP.
type ProxyHandler struct {
	service *service.ProxyService
}

// NewProxyHandler creates a proxy handler backed by the given service.
func NewProxyHandler(service *service.ProxyService) *ProxyHandler {
	return &ProxyHandler{service: service}
}

// Relay godoc
// @Summary Relay a GET request to the tracking API
// @Description Fetches the given URL server-side and returns the upstream answer with permissive CORS headers. Only URLs on the configured tracking origin are relayed.
// @Tags proxy
// @Produce json
// @Param url query string true "Absolute URL on the allowed origin"
// @Success 200 {string} string "Upstream response body"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 405 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /proxy [get]
func (h *ProxyHandler) Relay(c *fiber.Ctx) error {
	rawURL := c.Query("url")
	if rawURL == "" {
		metrics.ProxyRequestsTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
		return proxyError(c, fiber.StatusBadRequest, "Missing required url parameter")
	}

	relayed, err := h.service.Relay(c.UserContext(), c.Method(), rawURL)
	if err != nil {
		var upstream *service.UpstreamError
		switch {
		case errors.Is(err, service.ErrInvalidURL):
			metrics.ProxyRequestsTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
			return proxyError(c, fiber.StatusBadRequest, "Invalid URL supplied")
		case errors.Is(err, service.ErrOriginNotAllowed):
			metrics.ProxyRequestsTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
			return proxyError(c, fiber.StatusForbidden, "Proxy only allowed for "+h.service.AllowedOrigin())
		case errors.Is(err, service.ErrMethodNotAllowed):
			metrics.ProxyRequestsTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
			return proxyError(c, fiber.StatusMethodNotAllowed, "Only GET requests are supported")
		case errors.As(err, &upstream):
			metrics.ProxyRequestsTotal.WithLabelValues(metrics.OutcomeUpstreamError).Inc()
			return proxyError(c, fiber.StatusBadGateway, fmt.Sprintf("Upstream request failed: %v", upstream.Err))
		default:
			metrics.ProxyRequestsTotal.WithLabelValues(metrics.OutcomeUpstreamError).Inc()
			return proxyError(c, fiber.StatusInternalServerError, "Unexpected proxy failure")
		}
	}

	for key, values := range relayed.Header {
		if _, overwritten := fixedHeaders[key]; overwritten {
			continue
		}
		for _, value := range values {
			c.Response().Header.Add(key, value)
		}
	}
	c.Set("Access-Control-Allow-Origin", "*")
	c.Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	c.Set("Cache-Control", "no-store")

	metrics.ProxyRequestsTotal.WithLabelValues(metrics.OutcomeRelayed).Inc()
	return c.Status(relayed.Status).Send(relayed.Body)
}

// proxyError writes the uniform JSON error shape. Errors carry the
// permissive CORS header too, so browser callers can read them.
func proxyError(c *fiber.Ctx, status int, message string) error {
	c.Set("Access-Control-Allow-Origin", "*")
	return c.Status(status).JSON(fiber.Map{"error": message})
}

package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/mm6683/Bpost-Tracker/internal/core/logger"
	"github.com/mm6683/Bpost-Tracker/internal/core/metrics"
	"github.com/mm6683/Bpost-Tracker/internal/features/preview/domain"
	previewsvc "github.com/mm6683/Bpost-Tracker/internal/features/preview/service"
	trackingdomain "github.com/mm6683/Bpost-Tracker/internal/features/tracking/domain"
	trackingsvc "github.com/mm6683/Bpost-Tracker/internal/features/tracking/service"
)

// PreviewHandler serves the HTML entry points with social metadata injected.
type PreviewHandler struct {
	preview  *previewsvc.PreviewService
	tracking *trackingsvc.TrackingService
	logger   *zap.Logger
}

// NewPreviewHandler creates a handler over the preview and tracking services.
func NewPreviewHandler(preview *previewsvc.PreviewService, tracking *trackingsvc.TrackingService) *PreviewHandler {
	return &PreviewHandler{
		preview:  preview,
		tracking: tracking,
		logger:   logger.Get(),
	}
}

// Render godoc
// @Summary Serve the homepage with social preview metadata
// @Description Returns the homepage document with Open Graph and Twitter tags injected into the head. When itemIdentifier and postalCode are both supplied, the tags describe that parcel's live status.
// @Tags preview
// @Produce html
// @Param itemIdentifier query string false "Tracking item identifier"
// @Param postalCode query string false "Postal code the parcel is addressed to"
// @Success 200 {string} string "HTML document"
// @Failure 500 {object} map[string]string
// @Router / [get]
func (h *PreviewHandler) Render(c *fiber.Ctx) error {
	query := trackingdomain.TrackingQuery{
		ItemIdentifier: c.Query("itemIdentifier"),
		PostalCode:     c.Query("postalCode"),
	}

	baseURL := c.BaseURL()
	pageURL := baseURL + c.OriginalURL()

	var ctx domain.PreviewContext
	variant := metrics.VariantHomepage
	cacheControl := "public, max-age=3600"

	if query.Present() {
		summary := h.tracking.Summary(c.UserContext(), query)
		ctx = previewsvc.TrackingContext(baseURL, pageURL, query, summary)
		variant = metrics.VariantTracking
		cacheControl = "no-store"
	} else {
		ctx = previewsvc.HomepageContext(baseURL, pageURL)
	}

	page, err := h.preview.Page(ctx)
	if err != nil {
		h.logger.Error("Failed to assemble preview page", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Homepage document unavailable",
		})
	}

	metrics.PagesRenderedTotal.WithLabelValues(variant).Inc()
	c.Set("Content-Type", "text/html; charset=utf-8")
	c.Set("Cache-Control", cacheControl)
	return c.SendString(page)
}

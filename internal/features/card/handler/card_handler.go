package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mm6683/Bpost-Tracker/internal/core/metrics"
	cardsvc "github.com/mm6683/Bpost-Tracker/internal/features/card/service"
	trackingdomain "github.com/mm6683/Bpost-Tracker/internal/features/tracking/domain"
	trackingsvc "github.com/mm6683/Bpost-Tracker/internal/features/tracking/service"
)

// CardHandler serves the social preview image.
type CardHandler struct {
	tracking *trackingsvc.TrackingService
}

// NewCardHandler creates a handler over the tracking service.
func NewCardHandler(tracking *trackingsvc.TrackingService) *CardHandler {
	return &CardHandler{tracking: tracking}
}

// Render godoc
// @Summary Render the social preview card
// @Description Returns the 1200x630 SVG preview card. When itemIdentifier and postalCode are both supplied, the card shows that parcel's live status; otherwise the static homepage card is served.
// @Tags preview
// @Param itemIdentifier query string false "Tracking item identifier"
// @Param postalCode query string false "Postal code the parcel is addressed to"
// @Success 200 {string} string "SVG document"
// @Router /og.svg [get]
func (h *CardHandler) Render(c *fiber.Ctx) error {
	query := trackingdomain.TrackingQuery{
		ItemIdentifier: c.Query("itemIdentifier"),
		PostalCode:     c.Query("postalCode"),
	}

	var doc string
	variant := metrics.VariantHomepage
	cacheControl := "public, max-age=86400"

	if query.Present() {
		summary := h.tracking.Summary(c.UserContext(), query)
		doc = cardsvc.Tracking(query.ItemIdentifier, summary)
		variant = metrics.VariantTracking
		cacheControl = "public, max-age=60"
	} else {
		doc = cardsvc.Homepage()
	}

	metrics.CardsRenderedTotal.WithLabelValues(variant).Inc()
	c.Set("Content-Type", "image/svg+xml")
	c.Set("Cache-Control", cacheControl)
	return c.SendString(doc)
}

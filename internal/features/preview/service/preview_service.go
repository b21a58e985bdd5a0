package service

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/mm6683/Bpost-Tracker/internal/core/markup"
	"github.com/mm6683/Bpost-Tracker/internal/features/preview/domain"
	"github.com/mm6683/Bpost-Tracker/internal/features/preview/ports"
	trackingdomain "github.com/mm6683/Bpost-Tracker/internal/features/tracking/domain"
)

// SiteName is the product name used as page title and og:site_name.
const SiteName = "bpost tracker"

const (
	homepageDescription  = "Track your bpost parcels live. No account, no app, just your item number and postal code."
	descriptionSeparator = " · "
	headClose            = "</head>"
)

// HomepageContext builds the preview context for the plain homepage.
func HomepageContext(baseURL, pageURL string) domain.PreviewContext {
	return domain.PreviewContext{
		Title:       SiteName,
		Description: homepageDescription,
		PageURL:     pageURL,
		ImageURL:    baseURL + "/og.svg",
	}
}

// TrackingContext builds the preview context for a shared tracking link.
// The title stays the raw identifier; escaping happens once, at emission.
func TrackingContext(baseURL, pageURL string, query trackingdomain.TrackingQuery, summary *trackingdomain.TrackingSummary) domain.PreviewContext {
	params := url.Values{}
	params.Set("itemIdentifier", query.ItemIdentifier)
	params.Set("postalCode", query.PostalCode)

	parts := make([]string, 0, 2)
	if summary.Stage != "" {
		parts = append(parts, summary.Stage)
	}
	if summary.LatestEvent != "" {
		parts = append(parts, summary.LatestEvent)
	}

	return domain.PreviewContext{
		Title:       query.ItemIdentifier,
		Description: strings.Join(parts, descriptionSeparator),
		PageURL:     pageURL,
		ImageURL:    baseURL + "/og.svg?" + params.Encode(),
	}
}

// MetaTags renders the Open Graph and Twitter tag block for the context.
// Every dynamic value passes through markup.Escape exactly once.
func MetaTags(ctx domain.PreviewContext) string {
	title := markup.Escape(ctx.Title)
	description := markup.Escape(ctx.Description)
	pageURL := markup.Escape(ctx.PageURL)
	imageURL := markup.Escape(ctx.ImageURL)

	var b strings.Builder
	tag := func(attr, key, value string) {
		b.WriteString(`<meta ` + attr + `="` + key + `" content="` + value + `">`)
		b.WriteByte('\n')
	}

	tag("property", "og:type", "website")
	tag("property", "og:site_name", SiteName)
	tag("property", "og:url", pageURL)
	tag("property", "og:title", title)
	tag("property", "og:description", description)
	tag("property", "og:image", imageURL)
	tag("property", "og:image:width", "1200")
	tag("property", "og:image:height", "630")
	tag("name", "twitter:card", "summary_large_image")
	tag("name", "twitter:title", title)
	tag("name", "twitter:description", description)
	tag("name", "twitter:image", imageURL)

	return b.String()
}

// Inject splices block immediately before the first closing head tag. Plain
// textual substitution, no HTML parser; a document without the marker passes
// through unchanged.
func Inject(doc, block string) string {
	return strings.Replace(doc, headClose, block+headClose, 1)
}

// PreviewService assembles full HTML pages from the base document and a
// preview context.
type PreviewService struct {
	source ports.DocumentSource
}

// NewPreviewService creates a service backed by the given document source.
func NewPreviewService(source ports.DocumentSource) *PreviewService {
	return &PreviewService{source: source}
}

// Page loads the base document and returns it with the context's meta tags
// injected into the head.
func (s *PreviewService) Page(ctx domain.PreviewContext) (string, error) {
	doc, err := s.source.BaseDocument()
	if err != nil {
		return "", fmt.Errorf("failed to load base document: %w", err)
	}
	return Inject(string(doc), MetaTags(ctx)), nil
}

package service

import (
	"fmt"
	"strings"

	"github.com/mm6683/Bpost-Tracker/internal/core/markup"
	"github.com/mm6683/Bpost-Tracker/internal/features/tracking/domain"
)

// Display budgets per card line. Longer values are truncated with an
// ellipsis so they stay inside the fixed canvas.
const (
	maxIdentifierRunes = 36
	maxStageRunes      = 40
	maxEventRunes      = 55
)

const emptyEventPlaceholder = "—"

const (
	brandRed   = "#e4002b"
	canvasFill = "#10141a"
	textBright = "#f5f7fa"
	textMuted  = "#9aa4b2"

	sansFont = "Arial, Helvetica, sans-serif"
	monoFont = "'Courier New', Courier, monospace"
)

const tagline = "Follow your parcel every step of the way"

var callouts = [3]string{
	"Live status updates",
	"No account needed",
	"Share a link with anyone",
}

// frame wraps content in the fixed 1200x630 canvas every card shares: dark
// background plus the brand bar along the top edge.
func frame(content string) string {
	var b strings.Builder
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" width="1200" height="630" viewBox="0 0 1200 630" role="img">`)
	b.WriteString(`<rect width="1200" height="630" fill="` + canvasFill + `"/>`)
	b.WriteString(`<rect width="1200" height="10" fill="` + brandRed + `"/>`)
	b.WriteString(content)
	b.WriteString(`</svg>`)
	return b.String()
}

// Homepage returns the static marketing card: product name, tagline, and the
// three feature call-outs. It takes no inputs and always renders the same
// document.
func Homepage() string {
	var b strings.Builder
	b.WriteString(`<text x="80" y="190" font-family="` + sansFont + `" font-size="96" font-weight="bold" fill="` + textBright + `">bpost tracker</text>`)
	b.WriteString(`<text x="80" y="268" font-family="` + sansFont + `" font-size="44" fill="` + textMuted + `">` + tagline + `</text>`)
	for i, callout := range callouts {
		y := 400 + i*70
		b.WriteString(fmt.Sprintf(`<circle cx="92" cy="%d" r="9" fill="%s"/>`, y-11, brandRed))
		b.WriteString(fmt.Sprintf(`<text x="120" y="%d" font-family="%s" font-size="34" fill="%s">%s</text>`, y, sansFont, textBright, callout))
	}
	return frame(b.String())
}

// Tracking returns the card for one parcel: the identifier in monospace, the
// delivery stage as the headline, and the latest event below it. Values are
// truncated to their display budgets first and escaped second, so the
// ellipsis counts against the budget and entities never get cut in half.
func Tracking(itemID string, summary *domain.TrackingSummary) string {
	id := markup.Escape(markup.Truncate(itemID, maxIdentifierRunes))
	stage := markup.Escape(markup.Truncate(summary.Stage, maxStageRunes))
	event := markup.Escape(markup.Truncate(summary.LatestEvent, maxEventRunes))
	if event == "" {
		event = emptyEventPlaceholder
	}

	var b strings.Builder
	b.WriteString(`<text x="80" y="96" font-family="` + sansFont + `" font-size="36" font-weight="bold" fill="` + brandRed + `">bpost tracker</text>`)
	b.WriteString(`<text x="80" y="212" font-family="` + sansFont + `" font-size="28" letter-spacing="4" fill="` + textMuted + `">TRACKING</text>`)
	b.WriteString(`<text x="80" y="282" font-family="` + monoFont + `" font-size="44" fill="` + textBright + `">` + id + `</text>`)
	b.WriteString(`<text x="80" y="430" font-family="` + sansFont + `" font-size="54" font-weight="bold" fill="` + textBright + `">` + stage + `</text>`)
	b.WriteString(`<text x="80" y="508" font-family="` + sansFont + `" font-size="34" fill="` + textMuted + `">` + event + `</text>`)
	return frame(b.String())
}

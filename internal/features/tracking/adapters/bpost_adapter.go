package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/mm6683/Bpost-Tracker/internal/core/logger"
	"github.com/mm6683/Bpost-Tracker/internal/features/tracking/domain"
)

const languageEnglish = "en"

// BpostAdapter resolves tracking queries against the bpost tracking API.
// It implements ports.SummaryProvider.
type BpostAdapter struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewBpostAdapter creates an adapter that queries the tracking API rooted at
// baseURL, e.g. "https://track.bpost.cloud".
func NewBpostAdapter(baseURL string, client *http.Client) *BpostAdapter {
	return &BpostAdapter{
		baseURL: baseURL,
		client:  client,
		logger:  logger.Get(),
	}
}

// trackResponse mirrors the fragment of the bpost payload we consume. The
// real response carries far more detail; everything beyond the active step
// and the event list is ignored.
type trackResponse struct {
	Items []trackItem `json:"items"`
}

type trackItem struct {
	ActiveStep activeStep   `json:"activeStep"`
	Events     []trackEvent `json:"events"`
}

type activeStep struct {
	Label stepLabel `json:"label"`
}

type stepLabel struct {
	Main localizedText `json:"main"`
}

type trackEvent struct {
	Type        string        `json:"type"`
	Description localizedText `json:"description"`
	Label       localizedText `json:"label"`
}

// FetchSummary queries the upstream for the item and distills the first
// entry of the response into a summary.
func (a *BpostAdapter) FetchSummary(ctx context.Context, query domain.TrackingQuery) (*domain.TrackingSummary, error) {
	params := url.Values{}
	params.Set("itemIdentifier", query.ItemIdentifier)
	params.Set("postalCode", query.PostalCode)
	endpoint := fmt.Sprintf("%s/track/items?%s", a.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tracking API returned status %d", resp.StatusCode)
	}

	var tr trackResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return nil, fmt.Errorf("failed to decode tracking response: %w", err)
	}

	if len(tr.Items) == 0 {
		return nil, fmt.Errorf("tracking response contains no items")
	}

	a.logger.Debug("Fetched tracking summary",
		zap.String("item_identifier", query.ItemIdentifier),
		zap.Int("items", len(tr.Items)),
	)

	return summarize(tr.Items[0]), nil
}

// summarize maps one upstream item onto the domain summary. Missing pieces
// fall back to the defaults rather than failing: a response that parsed is
// always good enough to render.
func summarize(item trackItem) *domain.TrackingSummary {
	summary := domain.DefaultSummary()

	if text, ok := item.ActiveStep.Label.Main.Get(languageEnglish); ok {
		summary.Stage = text
	} else if text, ok := item.ActiveStep.Label.Main.First(); ok {
		summary.Stage = text
	}

	if len(item.Events) > 0 {
		summary.LatestEvent = eventText(item.Events[0])
	}

	return summary
}

// eventText picks the display string for an event: the English description,
// else the English label, else the raw event type code.
func eventText(ev trackEvent) string {
	if text, ok := ev.Description.Get(languageEnglish); ok {
		return text
	}
	if text, ok := ev.Label.Get(languageEnglish); ok {
		return text
	}
	return ev.Type
}

// localizedText holds a language-keyed object while preserving the key order
// of the document it was decoded from. A plain map would randomize which
// language "first available" resolves to, so the entries are kept as a slice.
type localizedText struct {
	entries []localizedEntry
}

type localizedEntry struct {
	lang string
	text string
}

// UnmarshalJSON walks the object token by token so that entry order survives
// decoding. Null is accepted as an empty value; entries whose value is not a
// string are skipped.
func (lt *localizedText) UnmarshalJSON(data []byte) error {
	lt.entries = nil

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("localized text must be an object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("unexpected key token %v", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			continue
		}
		lt.entries = append(lt.entries, localizedEntry{lang: key, text: text})
	}

	_, err = dec.Token()
	return err
}

// Get returns the non-empty text for the exact language code.
func (lt localizedText) Get(lang string) (string, bool) {
	for _, e := range lt.entries {
		if e.lang == lang && e.text != "" {
			return e.text, true
		}
	}
	return "", false
}

// First returns the first non-empty text in document order.
func (lt localizedText) First() (string, bool) {
	for _, e := range lt.entries {
		if e.text != "" {
			return e.text, true
		}
	}
	return "", false
}

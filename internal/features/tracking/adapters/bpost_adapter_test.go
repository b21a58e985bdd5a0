package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mm6683/Bpost-Tracker/internal/features/tracking/domain"
)

// TestBpostAdapter_FetchSummary_EnglishPreferred verifies that English labels
// win even when another language comes first in the payload.
func TestBpostAdapter_FetchSummary_EnglishPreferred(t *testing.T) {
	payload := `{
		"items": [{
			"activeStep": {"label": {"main": {"fr": "En transit", "en": "On the way"}}},
			"events": [
				{"type": "SORTED", "description": {"fr": "Trié au centre", "en": "Sorted at hub"}},
				{"type": "RECEIVED", "description": {"en": "Received"}}
			]
		}]
	}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	}))
	defer server.Close()

	adapter := NewBpostAdapter(server.URL, server.Client())
	summary, err := adapter.FetchSummary(context.Background(), domain.TrackingQuery{
		ItemIdentifier: "323212345659900123456030",
		PostalCode:     "1000",
	})

	require.NoError(t, err)
	assert.Equal(t, "On the way", summary.Stage)
	assert.Equal(t, "Sorted at hub", summary.LatestEvent)
}

// TestBpostAdapter_FetchSummary_DocumentOrderFallback verifies that without
// an English entry the first language in the document wins, not a random one.
func TestBpostAdapter_FetchSummary_DocumentOrderFallback(t *testing.T) {
	payload := `{
		"items": [{
			"activeStep": {"label": {"main": {"fr": "En transit", "de": "Unterwegs", "nl": "Onderweg"}}},
			"events": []
		}]
	}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(payload))
	}))
	defer server.Close()

	adapter := NewBpostAdapter(server.URL, server.Client())

	// Decode repeatedly; a map-based fallback would flip between languages.
	for i := 0; i < 5; i++ {
		summary, err := adapter.FetchSummary(context.Background(), domain.TrackingQuery{
			ItemIdentifier: "ID", PostalCode: "1000",
		})

		require.NoError(t, err)
		assert.Equal(t, "En transit", summary.Stage)
	}
}

// TestBpostAdapter_FetchSummary_EventFallbackChain verifies the event text
// chain: description, then label, then the raw type code.
func TestBpostAdapter_FetchSummary_EventFallbackChain(t *testing.T) {
	tests := []struct {
		name  string
		event string
		want  string
	}{
		{
			name:  "description preferred",
			event: `{"type": "T", "description": {"en": "Out for delivery"}, "label": {"en": "Label"}}`,
			want:  "Out for delivery",
		},
		{
			name:  "label when description missing",
			event: `{"type": "T", "label": {"en": "Delivered to neighbour"}}`,
			want:  "Delivered to neighbour",
		},
		{
			name:  "type code when no text at all",
			event: `{"type": "PARCEL_RECEIVED"}`,
			want:  "PARCEL_RECEIVED",
		},
		{
			name:  "empty strings treated as missing",
			event: `{"type": "T2", "description": {"en": ""}, "label": {"en": ""}}`,
			want:  "T2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := `{"items": [{"activeStep": {"label": {"main": {"en": "Stage"}}}, "events": [` + tt.event + `]}]}`
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(payload))
			}))
			defer server.Close()

			adapter := NewBpostAdapter(server.URL, server.Client())
			summary, err := adapter.FetchSummary(context.Background(), domain.TrackingQuery{
				ItemIdentifier: "ID", PostalCode: "1000",
			})

			require.NoError(t, err)
			assert.Equal(t, tt.want, summary.LatestEvent)
		})
	}
}

// TestBpostAdapter_FetchSummary_NoEvents verifies that an item without events
// yields an empty latest event rather than an error.
func TestBpostAdapter_FetchSummary_NoEvents(t *testing.T) {
	payload := `{"items": [{"activeStep": {"label": {"main": {"en": "Delivered"}}}, "events": []}]}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(payload))
	}))
	defer server.Close()

	adapter := NewBpostAdapter(server.URL, server.Client())
	summary, err := adapter.FetchSummary(context.Background(), domain.TrackingQuery{
		ItemIdentifier: "ID", PostalCode: "1000",
	})

	require.NoError(t, err)
	assert.Equal(t, "Delivered", summary.Stage)
	assert.Empty(t, summary.LatestEvent)
}

// TestBpostAdapter_FetchSummary_MissingStep verifies that an item without a
// usable active step keeps the default stage.
func TestBpostAdapter_FetchSummary_MissingStep(t *testing.T) {
	payload := `{"items": [{"events": [{"type": "X", "description": {"en": "Scanned"}}]}]}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(payload))
	}))
	defer server.Close()

	adapter := NewBpostAdapter(server.URL, server.Client())
	summary, err := adapter.FetchSummary(context.Background(), domain.TrackingQuery{
		ItemIdentifier: "ID", PostalCode: "1000",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StageInProgress, summary.Stage)
	assert.Equal(t, "Scanned", summary.LatestEvent)
}

// TestBpostAdapter_FetchSummary_NoItems verifies that an empty item list is
// reported as an error so the caller can degrade.
func TestBpostAdapter_FetchSummary_NoItems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items": []}`))
	}))
	defer server.Close()

	adapter := NewBpostAdapter(server.URL, server.Client())
	summary, err := adapter.FetchSummary(context.Background(), domain.TrackingQuery{
		ItemIdentifier: "ID", PostalCode: "1000",
	})

	require.Error(t, err)
	assert.Nil(t, summary)
	assert.Contains(t, err.Error(), "no items")
}

// TestBpostAdapter_FetchSummary_UpstreamStatus verifies that non-200 answers
// are surfaced as errors.
func TestBpostAdapter_FetchSummary_UpstreamStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	adapter := NewBpostAdapter(server.URL, server.Client())
	summary, err := adapter.FetchSummary(context.Background(), domain.TrackingQuery{
		ItemIdentifier: "ID", PostalCode: "1000",
	})

	require.Error(t, err)
	assert.Nil(t, summary)
	assert.Contains(t, err.Error(), "404")
}

// TestBpostAdapter_FetchSummary_InvalidJSON verifies that a malformed payload
// is surfaced as an error.
func TestBpostAdapter_FetchSummary_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items": [`))
	}))
	defer server.Close()

	adapter := NewBpostAdapter(server.URL, server.Client())
	_, err := adapter.FetchSummary(context.Background(), domain.TrackingQuery{
		ItemIdentifier: "ID", PostalCode: "1000",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

// TestBpostAdapter_FetchSummary_RequestShape verifies the path, the encoded
// query parameters and the Accept header sent upstream.
func TestBpostAdapter_FetchSummary_RequestShape(t *testing.T) {
	var captured *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Clone(r.Context())
		_, _ = w.Write([]byte(`{"items": [{"activeStep": {"label": {"main": {"en": "S"}}}, "events": []}]}`))
	}))
	defer server.Close()

	adapter := NewBpostAdapter(server.URL, server.Client())
	_, err := adapter.FetchSummary(context.Background(), domain.TrackingQuery{
		ItemIdentifier: "3232 1234/5659",
		PostalCode:     "1000 BE",
	})

	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, "/track/items", captured.URL.Path)
	assert.Equal(t, "3232 1234/5659", captured.URL.Query().Get("itemIdentifier"))
	assert.Equal(t, "1000 BE", captured.URL.Query().Get("postalCode"))
	assert.Equal(t, "application/json", captured.Header.Get("Accept"))
}

// TestLocalizedText_NonStringValues verifies that nested or numeric values
// inside a label object are skipped instead of breaking the decode.
func TestLocalizedText_NonStringValues(t *testing.T) {
	var lt localizedText
	err := lt.UnmarshalJSON([]byte(`{"meta": {"x": 1}, "count": 2, "fr": "Texte", "en": "Text"}`))

	require.NoError(t, err)

	text, ok := lt.Get("en")
	require.True(t, ok)
	assert.Equal(t, "Text", text)

	first, ok := lt.First()
	require.True(t, ok)
	assert.Equal(t, "Texte", first)
}

// TestLocalizedText_Null verifies that a JSON null decodes to an empty value.
func TestLocalizedText_Null(t *testing.T) {
	var lt localizedText
	require.NoError(t, lt.UnmarshalJSON([]byte(`null`)))

	_, ok := lt.First()
	assert.False(t, ok)
}

package domain

// StageInProgress is the neutral stage shown when the upstream cannot tell
// us anything more specific about a parcel.
const StageInProgress = "In progress"

// TrackingQuery carries the pair of identifiers the bpost API needs to
// locate a parcel. Both are taken verbatim from the caller; no format
// validation is applied because the upstream is the authority on what a
// valid identifier looks like.
type TrackingQuery struct {
	ItemIdentifier string
	PostalCode     string
}

// Present reports whether both identifiers were supplied. Callers use it to
// decide between the homepage and the tracking variant of a page or card.
func (q TrackingQuery) Present() bool {
	return q.ItemIdentifier != "" && q.PostalCode != ""
}

// TrackingSummary is the distilled state of a parcel: the coarse delivery
// stage and the human-readable text of the most recent event. It is derived
// per request and never persisted.
type TrackingSummary struct {
	Stage       string
	LatestEvent string
}

// DefaultSummary returns the summary used when no live data is available.
func DefaultSummary() *TrackingSummary {
	return &TrackingSummary{
		Stage:       StageInProgress,
		LatestEvent: "",
	}
}

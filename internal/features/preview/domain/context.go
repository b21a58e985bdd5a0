package domain

// PreviewContext carries the per-page values emitted into the social meta
// tags. Fixed tags (site name, card type, image dimensions) are not part of
// the context; they never vary between pages.
type PreviewContext struct {
	Title       string
	Description string
	PageURL     string
	ImageURL    string
}

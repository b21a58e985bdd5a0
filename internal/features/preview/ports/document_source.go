package ports

// DocumentSource defines the interface for loading the base HTML document
// that preview metadata is spliced into.
type DocumentSource interface {
	// BaseDocument returns the raw homepage document. Implementations read
	// it fresh on every call; the asset store stays the single source of
	// truth and a redeployed document is picked up without a restart.
	BaseDocument() ([]byte, error)
}

package adapter

import (
	"fmt"
	"os"
	"path/filepath"
)

// FSSource loads the base document from the static asset directory. It
// implements ports.DocumentSource.
type FSSource struct {
	path string
}

// NewFSSource creates a source that reads index.html from dir.
func NewFSSource(dir string) *FSSource {
	return &FSSource{path: filepath.Join(dir, "index.html")}
}

// BaseDocument reads the document from disk on every call.
func (s *FSSource) BaseDocument() ([]byte, error) {
	doc, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read base document: %w", err)
	}
	return doc, nil
}

package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFSSource_BaseDocument verifies that the document is read from the
// configured directory.
func TestFSSource_BaseDocument(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html><head></head></html>"), 0o644))

	source := NewFSSource(dir)
	doc, err := source.BaseDocument()

	require.NoError(t, err)
	assert.Equal(t, "<html><head></head></html>", string(doc))
}

// TestFSSource_Missing verifies the error when the document does not exist.
func TestFSSource_Missing(t *testing.T) {
	source := NewFSSource(t.TempDir())

	doc, err := source.BaseDocument()

	require.Error(t, err)
	assert.Nil(t, doc)
}

// TestFSSource_ReadsPerCall verifies that every call sees the file as it is
// now, so a redeployed asset needs no restart.
func TestFSSource_ReadsPerCall(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "index.html")
	require.NoError(t, os.WriteFile(path, []byte("first"), 0o644))

	source := NewFSSource(dir)

	doc, err := source.BaseDocument()
	require.NoError(t, err)
	assert.Equal(t, "first", string(doc))

	require.NoError(t, os.WriteFile(path, []byte("second"), 0o644))

	doc, err = source.BaseDocument()
	require.NoError(t, err)
	assert.Equal(t, "second", string(doc))
}

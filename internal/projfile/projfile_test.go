package projfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadStripsBOM(t *testing.T) {
	// given
	path := filepath.Join(t.TempDir(), "a.vcxproj")
	require.Nil(t, os.WriteFile(path, []byte("\xEF\xBB\xBF<a/>"), 0o644))

	// when
	data, bom, err := Read(path)

	// then
	assert.Nil(t, err)
	assert.True(t, bom)
	assert.Equal(t, "<a/>", string(data))
}

func TestReadWithoutBOM(t *testing.T) {
	// given
	path := filepath.Join(t.TempDir(), "a.vcxproj")
	require.Nil(t, os.WriteFile(path, []byte("<a/>"), 0o644))

	// when
	data, bom, err := Read(path)

	// then
	assert.Nil(t, err)
	assert.False(t, bom)
	assert.Equal(t, "<a/>", string(data))
}

func TestWriteRestoresBOM(t *testing.T) {
	// given
	path := filepath.Join(t.TempDir(), "a.vcxproj")

	// when
	err := Write(path, []byte("<a/>"), true)

	// then
	assert.Nil(t, err)
	raw, err := os.ReadFile(path)
	require.Nil(t, err)
	assert.Equal(t, "\xEF\xBB\xBF<a/>", string(raw))
}

func TestRoundTripPreservesBOMState(t *testing.T) {
	// given
	dir := t.TempDir()
	for name, content := range map[string][]byte{
		"with.vcxproj":    []byte("\xEF\xBB\xBF<a/>"),
		"without.vcxproj": []byte("<a/>"),
	} {
		path := filepath.Join(dir, name)
		require.Nil(t, os.WriteFile(path, content, 0o644))

		// when
		data, bom, err := Read(path)
		require.Nil(t, err)
		require.Nil(t, Write(path, data, bom))

		// then
		raw, err := os.ReadFile(path)
		require.Nil(t, err)
		assert.Equal(t, content, raw)
	}
}

func TestWriteReplacesExistingFile(t *testing.T) {
	// given
	path := filepath.Join(t.TempDir(), "a.vcxproj")
	require.Nil(t, os.WriteFile(path, []byte("old"), 0o644))

	// when
	err := Write(path, []byte("new"), false)

	// then
	assert.Nil(t, err)
	raw, err := os.ReadFile(path)
	require.Nil(t, err)
	assert.Equal(t, "new", string(raw))
}

func TestWriteLeavesNoTempFiles(t *testing.T) {
	// given
	dir := t.TempDir()
	path := filepath.Join(dir, "a.vcxproj")

	// when
	require.Nil(t, Write(path, []byte("<a/>"), false))

	// then
	entries, err := os.ReadDir(dir)
	require.Nil(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "a.vcxproj", entries[0].Name())
}

func TestReadMissingFile(t *testing.T) {
	// when
	_, _, err := Read(filepath.Join(t.TempDir(), "missing.vcxproj"))

	// then
	assert.NotNil(t, err)
}

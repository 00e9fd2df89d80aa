package ingest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/refgauge/refgauge/internal/ingest"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	return path
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "main.py", []byte("x = 1\n"))

	loader := ingest.NewLoader(1024, nil)

	file, err := loader.LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, path, file.Path)
	assert.Equal(t, "python", file.Language)
	assert.Equal(t, "utf-8", file.Encoding)
	assert.Equal(t, "x = 1\n", file.Content)
	assert.NoError(t, file.Err)
}

func TestLoadFileRejectsBinary(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "blob.py", []byte{0x00, 0x01, 0x02})

	loader := ingest.NewLoader(1024, nil)

	_, err := loader.LoadFile(path)
	assert.ErrorIs(t, err, ingest.ErrBinaryFile)
}

func TestLoadFileRejectsOversized(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "big.py", []byte("x = 1\nx = 2\nx = 3\n"))

	loader := ingest.NewLoader(4, nil)

	_, err := loader.LoadFile(path)
	assert.ErrorIs(t, err, ingest.ErrFileTooLarge)
}

func TestLoadFileLatin1Fallback(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	// 0xE9 is é in Latin-1 and invalid as standalone UTF-8.
	path := writeFile(t, dir, "legacy.py", []byte{'#', ' ', 0xE9, '\n', 'x', '=', '1', '\n'})

	loader := ingest.NewLoader(1024, nil)

	file, err := loader.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "latin-1", file.Encoding)
	assert.Contains(t, file.Content, "é")
}

func TestLoadCapturesPerFileErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := writeFile(t, dir, "ok.go", []byte("package main\n"))
	missing := filepath.Join(dir, "missing.go")

	loader := ingest.NewLoader(1024, nil)

	files := loader.Load([]string{good, missing})
	require.Len(t, files, 2)

	assert.NoError(t, files[0].Err)
	assert.Equal(t, "go", files[0].Language)

	assert.Error(t, files[1].Err)
	assert.Equal(t, ingest.LanguageUnknown, files[1].Language)
	assert.Empty(t, files[1].Content)
}

func TestDetectLanguageByExtension(t *testing.T) {
	t.Parallel()

	cases := []struct {
		path string
		want string
	}{
		{"a.py", "python"},
		{"a.js", "javascript"},
		{"a.tsx", "javascript"},
		{"a.java", "java"},
		{"a.cc", "cpp"},
		{"a.h", "c"},
		{"a.go", "go"},
		{"a.rb", "ruby"},
		{"a.rs", "rust"},
		{"a.bin", "unknown"},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, ingest.DetectLanguage(tc.path, nil))
		})
	}
}

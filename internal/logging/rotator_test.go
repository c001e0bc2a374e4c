package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// steppingClock returns a time one second later on every call.
func steppingClock() func() time.Time {
	t := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func listBackups(t *testing.T, dir, name string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var out []string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), name+".") {
			out = append(out, e.Name())
		}
	}
	return out
}

func TestNewRotator_RequiresPath(t *testing.T) {
	_, err := NewRotator(RotatorConfig{})
	assert.Error(t, err)
}

func TestRotator_CreatesDirectoryAndAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "dockarea.log")

	r, err := NewRotator(RotatorConfig{Path: path, MaxSizeMB: 1})
	require.NoError(t, err)
	_, err = r.Write([]byte("one\n"))
	require.NoError(t, err)
	require.NoError(t, r.Close())

	r, err = NewRotator(RotatorConfig{Path: path, MaxSizeMB: 1})
	require.NoError(t, err)
	_, err = r.Write([]byte("two\n"))
	require.NoError(t, err)
	require.NoError(t, r.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", string(data))
	assert.Equal(t, path, r.Path())
}

func TestRotator_RotatesWhenFull(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dockarea.log")

	r, err := NewRotator(RotatorConfig{Path: path, MaxSizeMB: 1})
	require.NoError(t, err)
	r.now = steppingClock()
	defer r.Close()

	big := bytes.Repeat([]byte("x"), bytesPerMB-10)
	_, err = r.Write(big)
	require.NoError(t, err)
	_, err = r.Write([]byte("overflow line\n"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "overflow line\n", string(data))
	assert.Len(t, listBackups(t, dir, "dockarea.log"), 1)
}

func TestRotator_KeepsMaxBackups(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dockarea.log")

	r, err := NewRotator(RotatorConfig{Path: path, MaxSizeMB: 1, MaxBackups: 2})
	require.NoError(t, err)
	r.now = steppingClock()
	defer r.Close()

	chunk := bytes.Repeat([]byte("y"), bytesPerMB)
	for range 5 {
		_, err := r.Write(chunk)
		require.NoError(t, err)
	}

	assert.Len(t, listBackups(t, dir, "dockarea.log"), 2)
}

func TestRotator_CompressesBackups(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dockarea.log")

	r, err := NewRotator(RotatorConfig{Path: path, MaxSizeMB: 1, Compress: true})
	require.NoError(t, err)
	r.now = steppingClock()
	defer r.Close()

	_, err = r.Write(bytes.Repeat([]byte("z"), bytesPerMB))
	require.NoError(t, err)
	_, err = r.Write([]byte("next\n"))
	require.NoError(t, err)

	backups := listBackups(t, dir, "dockarea.log")
	require.Len(t, backups, 1)
	assert.True(t, strings.HasSuffix(backups[0], ".gz"))
}

func TestNew_FileReceivesJSON(t *testing.T) {
	var console, file bytes.Buffer
	log := New(Config{Level: zerolog.InfoLevel, Format: "console", Output: &console, File: &file})

	log.Info().Str("area", "main").Msg("drop")

	assert.Contains(t, console.String(), "drop")
	assert.Contains(t, file.String(), `"area":"main"`)
	assert.Contains(t, file.String(), `"message":"drop"`)
}

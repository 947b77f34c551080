package storage

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocalStorage(t *testing.T) {
	tests := []struct {
		name      string
		baseDir   string
		wantError bool
	}{
		{
			name:    "existing directory",
			baseDir: t.TempDir(),
		},
		{
			name:    "creates missing directory",
			baseDir: filepath.Join(t.TempDir(), "artifacts", "run-1"),
		},
		{
			name:      "empty base directory",
			baseDir:   "",
			wantError: true,
		},
		{
			name:      "dot as base directory",
			baseDir:   ".",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := NewLocalStorage(tt.baseDir)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, store)
		})
	}
}

func TestLocalStorage_UploadDownload(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	// Upload creates missing parents.
	err = store.Upload(ctx, "generated/homepage_checks.cy.js", strings.NewReader("describe(...)"))
	require.NoError(t, err)

	rc, err := store.Download(ctx, "generated/homepage_checks.cy.js")
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "describe(...)", string(data))
}

func TestLocalStorage_UploadOverwrites(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Upload(ctx, "report.json", bytes.NewReader([]byte("first"))))
	require.NoError(t, store.Upload(ctx, "report.json", bytes.NewReader([]byte("second"))))

	rc, err := store.Download(ctx, "report.json")
	require.NoError(t, err)
	defer rc.Close()

	data, _ := io.ReadAll(rc)
	assert.Equal(t, "second", string(data))
}

func TestLocalStorage_DownloadMissing(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = store.Download(context.Background(), "missing.png")
	assert.ErrorIs(t, err, ErrArtifactNotFound)
}

func TestLocalStorage_Exists(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	exists, err := store.Exists(ctx, "screenshots/home-desktop-a.png")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, store.Upload(ctx, "screenshots/home-desktop-a.png", bytes.NewReader([]byte{1})))

	exists, err = store.Exists(ctx, "screenshots/home-desktop-a.png")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestLocalStorage_List(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{
		"screenshots/home-desktop-a.png",
		"screenshots/home-mobile-b.png",
		"videos/run.mp4",
	} {
		require.NoError(t, store.Upload(ctx, key, bytes.NewReader([]byte{1})))
	}

	keys, err := store.List(ctx, "screenshots")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"screenshots/home-desktop-a.png",
		"screenshots/home-mobile-b.png",
	}, keys)

	// No prefix lists everything.
	keys, err = store.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, keys, 3)

	// Missing prefix is an empty list, not an error.
	keys, err = store.List(ctx, "nothing-here")
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestLocalStorage_Delete(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Upload(ctx, "report.html", bytes.NewReader([]byte("<html>"))))
	require.NoError(t, store.Delete(ctx, "report.html"))
	assert.ErrorIs(t, store.Delete(ctx, "report.html"), ErrArtifactNotFound)
}

func TestLocalStorage_PathTraversal(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	err = store.Upload(ctx, "../outside.txt", bytes.NewReader([]byte{1}))
	assert.ErrorIs(t, err, ErrInvalidKey)

	_, err = store.Download(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestLocalStorage_GetURL(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := NewLocalStorage(dir)
	require.NoError(t, err)

	_, err = store.GetURL(ctx, "missing.png")
	assert.ErrorIs(t, err, ErrArtifactNotFound)

	require.NoError(t, store.Upload(ctx, "shot.png", bytes.NewReader([]byte{1})))
	url, err := store.GetURL(ctx, "shot.png")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "shot.png"), url)
}

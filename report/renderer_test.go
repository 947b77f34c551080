package report

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hairizuan-noorazman/e2egen/logger"
	"github.com/hairizuan-noorazman/e2egen/runner"
	"github.com/hairizuan-noorazman/e2egen/storage"
)

func assetReader() io.Reader {
	return bytes.NewReader([]byte{0x89, 0x50, 0x4e, 0x47})
}

func TestRenderer_Render(t *testing.T) {
	ctx := context.Background()
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	rep := FromRunStats("nightly", []runner.RunStats{
		{SpecFile: "generated/homepage_checks.cy.js", Tests: 1, Passes: 1, DurationMs: 1200},
	})

	r := NewRenderer(store, logger.NewTestLogger())
	require.NoError(t, r.Render(ctx, rep))

	// report.json round-trips to the same aggregates used for the HTML.
	loaded, err := Load(ctx, store, JSONFileName)
	require.NoError(t, err)
	assert.Equal(t, rep.Summary, loaded.Summary)
	assert.Equal(t, rep.SpecRuns, loaded.SpecRuns)

	rc, err := store.Download(ctx, HTMLFileName)
	require.NoError(t, err)
	defer rc.Close()
	html, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Pass rate: 100%")
}

func TestRenderer_RenderOverwrites(t *testing.T) {
	ctx := context.Background()
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	r := NewRenderer(store, logger.NewTestLogger())

	first := FromResults("first", []TestResult{
		{Selector: "h1", Assertion: "exists", Passed: true},
	})
	require.NoError(t, r.Render(ctx, first))

	second := FromResults("second", nil)
	require.NoError(t, r.Render(ctx, second))

	loaded, err := Load(ctx, store, JSONFileName)
	require.NoError(t, err)
	assert.Equal(t, "second", loaded.Title)
	assert.Equal(t, 0, loaded.Summary.Total)
}

package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/hairizuan-noorazman/e2egen/logger"
	"github.com/hairizuan-noorazman/e2egen/storage"
)

const (
	// JSONFileName is the key the raw result dump is written under.
	JSONFileName = "report.json"

	// HTMLFileName is the key the rendered summary is written under.
	HTMLFileName = "report.html"

	// RouteViewportFileName is the key of the screenshot-grouping report.
	RouteViewportFileName = "ui-test-report.html"
)

// Renderer persists report artifacts through an ArtifactStore. Each render
// overwrites the previous run's files.
type Renderer struct {
	store  storage.ArtifactStore
	logger logger.Logger
}

// NewRenderer creates a renderer writing through the given store.
func NewRenderer(store storage.ArtifactStore, log logger.Logger) *Renderer {
	return &Renderer{store: store, logger: log}
}

// Render writes report.json and report.html for the given report.
func (r *Renderer) Render(ctx context.Context, rep Report) error {
	raw, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := r.store.Upload(ctx, JSONFileName, bytes.NewReader(raw)); err != nil {
		return fmt.Errorf("failed to write %s: %w", JSONFileName, err)
	}

	html, err := RenderHTML(rep)
	if err != nil {
		return err
	}
	if err := r.store.Upload(ctx, HTMLFileName, bytes.NewReader(html)); err != nil {
		return fmt.Errorf("failed to write %s: %w", HTMLFileName, err)
	}

	r.logger.Info(ctx, "report rendered", logger.Fields{
		"total":     rep.Summary.Total,
		"passed":    rep.Summary.Passed,
		"failed":    rep.Summary.Failed,
		"pass_rate": rep.Summary.PassRate,
	})
	return nil
}

// RenderRouteViewport lists the screenshots stored under the given prefix,
// groups them by route and viewport, and writes ui-test-report.html.
func (r *Renderer) RenderRouteViewport(ctx context.Context, screenshotPrefix string) error {
	paths, err := r.store.List(ctx, screenshotPrefix)
	if err != nil {
		return fmt.Errorf("failed to list screenshots: %w", err)
	}

	html, err := RenderRouteViewport(paths)
	if err != nil {
		return err
	}
	if err := r.store.Upload(ctx, RouteViewportFileName, bytes.NewReader(html)); err != nil {
		return fmt.Errorf("failed to write %s: %w", RouteViewportFileName, err)
	}

	r.logger.Info(ctx, "route/viewport report rendered", logger.Fields{
		"screenshots": len(paths),
	})
	return nil
}

// Load reads a previously written report.json back into a Report. The parsed
// aggregates are identical to the ones used to render the HTML summary.
func Load(ctx context.Context, store storage.ArtifactStore, key string) (Report, error) {
	rc, err := store.Download(ctx, key)
	if err != nil {
		return Report{}, fmt.Errorf("failed to read %s: %w", key, err)
	}
	defer rc.Close()

	var rep Report
	if err := json.NewDecoder(rc).Decode(&rep); err != nil {
		return Report{}, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return rep, nil
}

package main

import (
	"fmt"

	"github.com/hairizuan-noorazman/e2egen/storage"
	"github.com/hairizuan-noorazman/e2egen/target"
	"github.com/hairizuan-noorazman/e2egen/target/cypress"
	"github.com/hairizuan-noorazman/e2egen/target/playwright"
)

// newArtifactStore builds the configured artifact store.
func newArtifactStore(cfg *Config) (storage.ArtifactStore, error) {
	switch cfg.Output.StorageType {
	case "s3":
		return storage.NewArtifactStore("s3", map[string]interface{}{
			"bucket": cfg.Output.S3Bucket,
			"region": cfg.Output.S3Region,
		})
	default:
		return storage.NewArtifactStore("local", map[string]interface{}{
			"base_dir": cfg.Output.BaseDir,
		})
	}
}

// scriptTargetFor resolves a script-generating target by name.
func scriptTargetFor(name string) (target.ScriptTarget, error) {
	switch name {
	case "cypress":
		return cypress.New(), nil
	case "playwright":
		return playwright.New(), nil
	default:
		return nil, fmt.Errorf("unknown script target %q (expected cypress or playwright)", name)
	}
}

package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// ArtifactStore stores and retrieves run artifacts: generated spec files,
// screenshots, videos and rendered reports. Keys are relative, forward-slash
// separated paths; implementations create missing parents on upload and
// silently overwrite existing keys.
type ArtifactStore interface {
	// Upload stores data from the reader at the given key.
	Upload(ctx context.Context, key string, reader io.Reader) error

	// Download retrieves the data stored at the given key.
	Download(ctx context.Context, key string) (io.ReadCloser, error)

	// Exists checks if data exists at the given key.
	Exists(ctx context.Context, key string) (bool, error)

	// List returns all keys under the given prefix, sorted lexically.
	List(ctx context.Context, prefix string) ([]string, error)

	// Delete removes the data at the given key.
	Delete(ctx context.Context, key string) error

	// GetURL returns a URL or path for accessing the data at the given key.
	GetURL(ctx context.Context, key string) (string, error)
}

// NewArtifactStore creates an ArtifactStore from configuration.
func NewArtifactStore(storageType string, config map[string]interface{}) (ArtifactStore, error) {
	switch strings.ToLower(storageType) {
	case "local":
		baseDir, ok := config["base_dir"].(string)
		if !ok || baseDir == "" {
			return nil, fmt.Errorf("base_dir is required for local storage")
		}
		return NewLocalStorage(baseDir)

	case "s3":
		bucket, ok := config["bucket"].(string)
		if !ok || bucket == "" {
			return nil, fmt.Errorf("bucket is required for S3 storage")
		}
		region, ok := config["region"].(string)
		if !ok || region == "" {
			return nil, fmt.Errorf("region is required for S3 storage")
		}
		return NewS3Storage(bucket, region)

	default:
		return nil, fmt.Errorf("unsupported storage type: %s", storageType)
	}
}

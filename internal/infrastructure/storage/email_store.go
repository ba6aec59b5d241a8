// Package storage retains raw uploaded emails on local disk.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/eromsubebe/poc-auto-quote-response/internal/usecase/interfaces"
)

const defaultEmailDir = "data/emails"

// LocalEmailStore writes uploads under a data directory. The directory is
// created on first save, not at construction, so a read-only deployment
// that never ingests stays clean.
type LocalEmailStore struct {
	dir string
}

var _ interfaces.IEmailStore = (*LocalEmailStore)(nil)

// NewLocalEmailStore reads EMAIL_STORAGE_DIR, defaulting to data/emails.
func NewLocalEmailStore() *LocalEmailStore {
	dir := os.Getenv("EMAIL_STORAGE_DIR")
	if dir == "" {
		dir = defaultEmailDir
	}
	return &LocalEmailStore{dir: dir}
}

// Save writes the bytes under the configured directory and returns the
// stored path. The name is flattened to its base so a crafted filename
// cannot escape the directory.
func (s *LocalEmailStore) Save(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create email storage dir: %w", err)
	}

	path := filepath.Join(s.dir, filepath.Base(name))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("persist email upload: %w", err)
	}
	return path, nil
}

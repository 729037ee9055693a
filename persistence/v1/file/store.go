// Package file persists note content blobs under a single root directory.
// The directory is handed to the store at construction time; nothing in
// here reads process-wide configuration.
package file

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
)

// urlPrefix is the fixed prefix of every public note URL. The string after
// it is the object key inside the root directory.
const urlPrefix = "static/"

// Store wraps a fileblob bucket rooted at the static file directory.
type Store struct {
	bucket *blob.Bucket
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create static file directory %s: %w", dir, err)
	}
	// no sidecar metadata files, the directory holds exactly the note blobs
	bucket, err := fileblob.OpenBucket(dir, &fileblob.Options{
		Metadata: fileblob.MetadataDontWrite,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open static file directory %s: %w", dir, err)
	}
	return &Store{bucket: bucket}, nil
}

func (s *Store) Close() error {
	return s.bucket.Close()
}

// NewName mints a fresh 128-bit identifier rendered as 32 lowercase hex
// characters. Collisions within a store are statistically impossible.
func NewName() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}

// Write drains content into the object at key, creating or replacing it.
func (s *Store) Write(ctx context.Context, key string, content io.Reader) error {
	w, err := s.bucket.NewWriter(ctx, key, nil)
	if err != nil {
		return fmt.Errorf("failed to open writer for %s: %w", key, err)
	}
	if _, err := io.Copy(w, content); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to write content for %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to flush content for %s: %w", key, err)
	}
	return nil
}

// Read returns the full content of the object at key.
func (s *Store) Read(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, nil
}

// Delete removes the object at key. A missing object is an error, not a
// no-op: every live note record points at a blob that exists, so an absent
// blob here means the record and the directory already disagree.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// PublicURL maps an identifier to the URL stored on the note record and
// advertised to clients.
func PublicURL(name string) string {
	return urlPrefix + name + ".md"
}

// Key maps a stored URL back to the object key inside the root directory.
// This is the only place URL-to-path resolution happens.
func Key(url string) string {
	return strings.TrimPrefix(url, urlPrefix)
}

// internal/app/system/filestore/filestore.go

// Package filestore stores resource attachments on local disk.
//
// The resources feature needs put, open (for download streaming), delete,
// and public-URL generation over one root directory. Paths are always
// slash-separated relative keys; the store refuses anything that escapes
// its root.
package filestore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Store is the attachment storage interface used by the resources feature.
type Store interface {
	// Put writes the reader's content under the given key.
	Put(ctx context.Context, key string, r io.Reader) error
	// Open returns a reader for the stored content. The caller closes it.
	Open(key string) (io.ReadCloser, error)
	// Delete removes the stored content. Deleting a missing key is not an error.
	Delete(key string) error
	// URL returns the public URL path for a key.
	URL(key string) string
}

// Local is a Store rooted at a directory on local disk.
type Local struct {
	root      string
	urlPrefix string
}

// NewLocal creates a Local store rooted at dir, serving files under urlPrefix
// (e.g. "/files/resources"). The directory is created if missing.
func NewLocal(dir, urlPrefix string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &Local{root: dir, urlPrefix: strings.TrimSuffix(urlPrefix, "/")}, nil
}

// Root returns the storage root directory (used to mount a file server).
func (l *Local) Root() string { return l.root }

func (l *Local) resolve(key string) (string, error) {
	clean := path.Clean("/" + key)
	if clean == "/" {
		return "", fmt.Errorf("empty storage key")
	}
	// clean is absolute and cannot contain ".." after Clean; join under root.
	return filepath.Join(l.root, filepath.FromSlash(clean)), nil
}

func (l *Local) Put(ctx context.Context, key string, r io.Reader) error {
	p, err := l.resolve(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("create dir for %q: %w", key, err)
	}
	f, err := os.Create(p)
	if err != nil {
		return fmt.Errorf("create file %q: %w", key, err)
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return fmt.Errorf("write file %q: %w", key, err)
	}
	return nil
}

func (l *Local) Open(key string) (io.ReadCloser, error) {
	p, err := l.resolve(key)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if err != nil {
		return nil, fmt.Errorf("open file %q: %w", key, err)
	}
	return f, nil
}

func (l *Local) Delete(key string) error {
	p, err := l.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete file %q: %w", key, err)
	}
	return nil
}

func (l *Local) URL(key string) string {
	return l.urlPrefix + "/" + strings.TrimPrefix(key, "/")
}

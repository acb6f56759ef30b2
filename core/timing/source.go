package timing

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/minio/minio-go/v7"

	"ddrconf/core/storage"
)

// Source resolves a named dump document to its contents.
type Source interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// FileSource reads dump files from the local filesystem. An empty Dir
// resolves names as given, absolute or relative to the working
// directory.
type FileSource struct {
	Dir string
}

func (s FileSource) Open(_ context.Context, name string) (io.ReadCloser, error) {
	path := name
	if s.Dir != "" {
		path = filepath.Join(s.Dir, name)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dump %s: %w", path, err)
	}
	return f, nil
}

// ObjectSource reads dump files from a storage bucket. The server mode
// uses it so compared configurations never have to live on the host.
type ObjectSource struct {
	Client storage.Client
	Bucket string
}

func (s ObjectSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	obj, err := s.Client.GetObject(ctx, s.Bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("fetch dump %s from bucket %s: %w", name, s.Bucket, err)
	}
	return obj, nil
}

// Load opens a named dump through the source and parses it.
func Load(ctx context.Context, src Source, name string) (*Timing, []string, error) {
	rc, err := src.Open(ctx, name)
	if err != nil {
		return nil, nil, err
	}
	defer rc.Close()

	t, warnings, err := Parse(rc)
	if err != nil {
		return nil, warnings, fmt.Errorf("parse dump %s: %w", name, err)
	}
	return t, warnings, nil
}

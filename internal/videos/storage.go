package videos

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// PublicPrefix is the URL prefix under which disk-stored videos are served.
const PublicPrefix = "/uploads/videos"

// BlobStorage stores uploaded video bytes under a name and returns the
// public reference recorded on the lesson.
type BlobStorage interface {
	Save(ctx context.Context, name string, r io.Reader) (string, error)
	Remove(ctx context.Context, name string) error
}

// DiskStorage keeps videos in a local directory served statically.
type DiskStorage struct {
	Dir string
}

func (s DiskStorage) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", err
	}

	f, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return PublicPrefix + "/" + name, nil
}

func (s DiskStorage) Remove(ctx context.Context, name string) error {
	err := os.Remove(filepath.Join(s.Dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

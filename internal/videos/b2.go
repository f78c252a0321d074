package videos

import (
	"context"
	"fmt"
	"io"

	"github.com/kurin/blazer/b2"
)

// B2Storage keeps videos in a Backblaze B2 bucket. Alternate deployment
// topology behind the same BlobStorage contract as DiskStorage.
type B2Storage struct {
	client *b2.Client
	bucket *b2.Bucket
}

func NewB2Storage(ctx context.Context, accountID, appKey, bucketName string) (*B2Storage, error) {
	client, err := b2.NewClient(ctx, accountID, appKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create b2 client: %w", err)
	}

	bucket, err := client.Bucket(ctx, bucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to get bucket: %w", err)
	}

	return &B2Storage{client: client, bucket: bucket}, nil
}

func (s *B2Storage) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	obj := s.bucket.Object(name)
	w := obj.NewWriter(ctx)

	if _, err := io.Copy(w, r); err != nil {
		return "", fmt.Errorf("failed to write object: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %w", err)
	}

	return fmt.Sprintf("%s/file/%s/%s", s.bucket.BaseURL(), s.bucket.Name(), name), nil
}

func (s *B2Storage) Remove(ctx context.Context, name string) error {
	return s.bucket.Object(name).Delete(ctx)
}

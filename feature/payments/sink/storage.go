package sink

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"member-reconcile/core/reconcile"
	"member-reconcile/core/storage"

	"github.com/minio/minio-go/v7"
)

// CleanedObjectName is the object name of the uploaded dataset.
const CleanedObjectName = "cleaned_member_payments.csv"

// Storage uploads the cleaned dataset to object storage.
type Storage struct {
	client storage.Client
	bucket string
	prefix string
	region string
}

// NewStorage creates a storage sink.
func NewStorage(client storage.Client, cfg storage.Config) *Storage {
	return &Storage{
		client: client,
		bucket: cfg.Bucket,
		prefix: cfg.Prefix,
		region: cfg.Region,
	}
}

// ObjectName returns the key for a run's upload.
func (s *Storage) ObjectName(runID string) string {
	return path.Join(s.prefix, runID, CleanedObjectName)
}

// Upload writes the cleaned CSV under the run's key and returns that key.
func (s *Storage) Upload(ctx context.Context, runID string, cleaned []reconcile.CleanedRecord) (string, error) {
	if err := storage.EnsureBucket(ctx, s.client, s.bucket, s.region); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, cleaned); err != nil {
		return "", fmt.Errorf("failed to encode cleaned records: %w", err)
	}

	name := s.ObjectName(runID)
	_, err := s.client.PutObject(ctx, s.bucket, name, bytes.NewReader(buf.Bytes()), int64(buf.Len()), minio.PutObjectOptions{
		ContentType: "text/csv",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", name, err)
	}
	return name, nil
}

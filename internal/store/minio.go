package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/tanyasbaking/bakery-assistant/backend/internal/models"
)

// SnapshotKey is the object key for the ingested corpus snapshot.
const SnapshotKey = "ingested_docs.json"

// SnapshotStore keeps the corpus snapshot in MinIO. The server falls
// back to it when Mongo has no corpus.
type SnapshotStore struct {
	client *minio.Client
	bucket string
}

func NewSnapshotStore(ctx context.Context, endpoint, accessKey, secretKey, bucket string, useSSL bool) (*SnapshotStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	// Ensure bucket exists
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("minio bucket check: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("minio make bucket: %w", err)
		}
	}

	return &SnapshotStore{client: client, bucket: bucket}, nil
}

// Upload stores a new corpus snapshot.
func (s *SnapshotStore) Upload(ctx context.Context, data []byte) error {
	reader := bytes.NewReader(data)
	_, err := s.client.PutObject(ctx, s.bucket, SnapshotKey, reader, int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	return err
}

// LoadDocuments downloads and parses the snapshot, implementing the
// corpus provider interface.
func (s *SnapshotStore) LoadDocuments(ctx context.Context) ([]models.Document, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, SnapshotKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("minio get snapshot: %w", err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("minio read snapshot: %w", err)
	}

	var docs []models.Document
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	for i := range docs {
		docs[i].Seq = i
	}
	return docs, nil
}

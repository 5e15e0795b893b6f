package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tanyasbaking/bakery-assistant/backend/internal/models"
)

// CorpusStore holds the ingested corpus documents in MongoDB. It is the
// corpus of record: the ingest CLI writes it, the server reads it.
type CorpusStore struct {
	col *mongo.Collection
}

func NewCorpusStore(db *mongo.Database) *CorpusStore {
	return &CorpusStore{col: db.Collection("documents")}
}

// LoadDocuments returns the full corpus in ingestion order.
func (s *CorpusStore) LoadDocuments(ctx context.Context) ([]models.Document, error) {
	opts := options.Find().SetSort(bson.D{{Key: "seq", Value: 1}})
	cur, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo load corpus: %w", err)
	}
	defer cur.Close(ctx)

	var docs []models.Document
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongo load corpus: %w", err)
	}
	return docs, nil
}

// Replace swaps the stored corpus for a new document sequence.
func (s *CorpusStore) Replace(ctx context.Context, docs []models.Document) error {
	if _, err := s.col.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("mongo clear corpus: %w", err)
	}
	if len(docs) == 0 {
		return nil
	}
	items := make([]interface{}, 0, len(docs))
	for i, d := range docs {
		d.Seq = i
		items = append(items, d)
	}
	if _, err := s.col.InsertMany(ctx, items); err != nil {
		return fmt.Errorf("mongo insert corpus: %w", err)
	}
	return nil
}

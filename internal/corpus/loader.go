package corpus

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/tanyasbaking/bakery-assistant/backend/internal/models"
)

// FileProvider loads the corpus from an ingested_docs.json snapshot on
// disk. Used by the interactive entry point and as a last-resort source.
type FileProvider struct {
	Path string
}

func (p FileProvider) LoadDocuments(_ context.Context) ([]models.Document, error) {
	data, err := os.ReadFile(p.Path)
	if err != nil {
		return nil, fmt.Errorf("read corpus file: %w", err)
	}
	var docs []models.Document
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("parse corpus file: %w", err)
	}
	for i := range docs {
		docs[i].Seq = i
	}
	return docs, nil
}

// Chain tries each provider in order and returns the first non-empty
// document set. An error is returned only when every provider fails.
type Chain []Provider

func (c Chain) LoadDocuments(ctx context.Context) ([]models.Document, error) {
	var lastErr error
	for _, p := range c {
		docs, err := p.LoadDocuments(ctx)
		if err != nil {
			lastErr = err
			continue
		}
		if len(docs) > 0 {
			return docs, nil
		}
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, nil
}

package corpus

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/tanyasbaking/bakery-assistant/backend/internal/models"
)

// DefaultLimit is how many documents a search returns unless told otherwise.
const DefaultLimit = 3

// businessBoost must exceed any plausible token-overlap score so that
// business-info documents always outrank incidental matches on
// location-style questions.
const businessBoost = 5

var wordRe = regexp.MustCompile(`\w+`)

// locationWords mark a "locate the business" question.
var locationWords = map[string]bool{
	"address":  true,
	"location": true,
	"where":    true,
	"reach":    true,
	"map":      true,
}

// Provider supplies the full document sequence on (re)load.
type Provider interface {
	LoadDocuments(ctx context.Context) ([]models.Document, error)
}

type snapshot struct {
	docs []models.Document
}

// Index is the in-memory corpus index. The document snapshot is swapped
// atomically on reload, so readers always see a complete corpus.
type Index struct {
	provider Provider
	log      *zap.Logger
	snap     atomic.Pointer[snapshot]
}

func NewIndex(provider Provider, log *zap.Logger) *Index {
	idx := &Index{provider: provider, log: log}
	idx.snap.Store(&snapshot{})
	return idx
}

// Reload re-reads the corpus from the provider and swaps it in. In-flight
// searches keep the snapshot they started with.
func (i *Index) Reload(ctx context.Context) error {
	docs, err := i.provider.LoadDocuments(ctx)
	if err != nil {
		return fmt.Errorf("corpus reload: %w", err)
	}
	i.snap.Store(&snapshot{docs: docs})
	i.log.Info("corpus reloaded", zap.Int("documents", len(docs)))
	return nil
}

// Size reports how many documents the current snapshot holds.
func (i *Index) Size() int {
	return len(i.snap.Load().docs)
}

// Search scores every document by keyword overlap with the question and
// returns the top limit matches. Scoring: one point per question token
// appearing as a substring of the document text, plus a fixed boost for
// business-info documents when the question contains location vocabulary.
// Zero-score documents are excluded. Ties keep ingestion order.
func (i *Index) Search(question string, limit int) []models.Document {
	if limit <= 0 {
		limit = DefaultLimit
	}
	docs := i.snap.Load().docs
	tokens := wordRe.FindAllString(strings.ToLower(question), -1)

	locationQuery := false
	for _, t := range tokens {
		if locationWords[t] {
			locationQuery = true
			break
		}
	}

	type scored struct {
		score int
		doc   models.Document
	}
	var matches []scored
	for _, doc := range docs {
		text := strings.ToLower(doc.Text)
		score := 0
		for _, t := range tokens {
			if strings.Contains(text, t) {
				score++
			}
		}
		if locationQuery && doc.Type == models.DocTypeBusiness {
			score += businessBoost
		}
		if score > 0 {
			matches = append(matches, scored{score: score, doc: doc})
		}
	}

	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].score > matches[b].score
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]models.Document, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.doc)
	}
	return out
}

// Package websearch queries an external search provider and marks each
// result as trustworthy or not according to the requested scope.
package websearch

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/tanyasbaking/bakery-assistant/backend/internal/models"
)

// Scope selects the trust policy applied to search results.
type Scope string

const (
	// ScopeBaking is the open scope: generic domain results are safe
	// to cite and are accepted as-is.
	ScopeBaking Scope = "baking"
	// ScopeTanya is the restricted scope: results must be whitelisted
	// and pass a content check before they count as verified.
	ScopeTanya Scope = "tanya"
)

// DefaultLimit is how many results a search returns.
const DefaultLimit = 3

// searcher abstracts the raw provider call for tests.
type searcher interface {
	search(ctx context.Context, query string, num int) ([]organicResult, error)
}

// Gateway performs a web search and applies the scope's trust policy.
type Gateway struct {
	client   searcher
	verifier *Verifier
	limit    int
	log      *zap.Logger
}

func NewGateway(serperURL, apiKey string, log *zap.Logger) *Gateway {
	return &Gateway{
		client:   newSerperClient(serperURL, apiKey),
		verifier: NewVerifier(),
		limit:    DefaultLimit,
		log:      log,
	}
}

// Search returns up to the gateway's limit of scored results. Provider
// failure degrades to an empty list; it is logged, never returned. A few
// extra candidates are requested to absorb filtering loss.
func (g *Gateway) Search(ctx context.Context, question string, scope Scope) []models.WebResult {
	raw, err := g.client.search(ctx, question, g.limit+2)
	if err != nil {
		g.log.Warn("web search failed", zap.Error(err), zap.String("scope", string(scope)))
		return nil
	}

	results := make([]models.WebResult, 0, len(raw))
	for _, item := range raw {
		if len(results) >= g.limit {
			break
		}
		r := models.WebResult{Title: item.Title, Snippet: item.Snippet, Link: item.Link}

		if scope != ScopeTanya {
			r.Verified = true
			results = append(results, r)
			continue
		}

		if !g.verifier.Whitelisted(item.Link) {
			// Kept for transparency, excluded from trusted use downstream.
			r.Verified = false
			r.Reason = models.ReasonNotWhitelisted
			results = append(results, r)
			continue
		}

		verifyCtx, cancel := context.WithTimeout(ctx, 6*time.Second)
		r.Verified = g.verifier.VerifyPage(verifyCtx, item.Link)
		cancel()
		if !r.Verified {
			r.Reason = models.ReasonFailedVerification
		}
		results = append(results, r)
	}
	return results
}

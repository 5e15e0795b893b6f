// Package assistant is the question-answering pipeline: intent
// classification, source retrieval, trust filtering, prompt assembly
// and generation.
package assistant

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/tanyasbaking/bakery-assistant/backend/internal/intent"
	"github.com/tanyasbaking/bakery-assistant/backend/internal/llm"
	"github.com/tanyasbaking/bakery-assistant/backend/internal/models"
	"github.com/tanyasbaking/bakery-assistant/backend/internal/websearch"
)

// LocalIndex searches the local corpus.
type LocalIndex interface {
	Search(question string, limit int) []models.Document
}

// WebSearcher performs a scoped web search.
type WebSearcher interface {
	Search(ctx context.Context, question string, scope websearch.Scope) []models.WebResult
}

// ReviewFetcher pulls pre-verified reviews for the business.
type ReviewFetcher interface {
	Fetch(ctx context.Context) []models.WebResult
}

// Pipeline runs one question through the full answering sequence. It is
// stateless between calls and safe for concurrent use.
type Pipeline struct {
	index   LocalIndex
	web     WebSearcher
	reviews ReviewFetcher
	gen     llm.Generator
	log     *zap.Logger
}

func NewPipeline(index LocalIndex, web WebSearcher, reviews ReviewFetcher, gen llm.Generator, log *zap.Logger) *Pipeline {
	return &Pipeline{index: index, web: web, reviews: reviews, gen: gen, log: log}
}

func scopeFor(in models.Intent) websearch.Scope {
	// Business and hybrid questions both start from the restricted
	// scope; only purely generic questions search the open web.
	if in == models.IntentBaking {
		return websearch.ScopeBaking
	}
	return websearch.ScopeTanya
}

// Answer classifies the question, gathers and filters sources, and asks
// the generation capability for an answer. The only terminal failure is
// both models failing; every degraded source collapses to empty.
func (p *Pipeline) Answer(ctx context.Context, question string) (*models.Answer, error) {
	in := intent.Classify(question)
	log := p.log.With(zap.String("intent", string(in)))

	localDocs := p.index.Search(question, 0)

	scope := scopeFor(in)
	webResults := p.web.Search(ctx, question, scope)

	if in == models.IntentTanya {
		webResults = append(webResults, p.reviews.Fetch(ctx)...)
		// Verified-only or nothing: never cite an unverified claim
		// about the business itself.
		if hasVerified(webResults) {
			webResults = verifiedOnly(webResults)
		} else {
			log.Info("no verified business results, answering from local data only")
			webResults = nil
		}
	}

	if in == models.IntentHybrid && !hasVerified(webResults) {
		// Open-scope results are always verified, so this fallback
		// yields usable web context whenever the provider works.
		webResults = p.web.Search(ctx, question, websearch.ScopeBaking)
	}

	log.Debug("sources gathered",
		zap.Int("local_docs", len(localDocs)),
		zap.Int("web_results", len(webResults)))

	prompt := buildPrompt(localDocs, webResults, question)
	answer, err := p.gen.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return &models.Answer{
		Text:    strings.TrimSpace(answer),
		Intent:  in,
		Sources: buildBundle(localDocs, webResults),
	}, nil
}

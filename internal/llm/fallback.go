package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// ErrAllModelsFailed is the terminal generation error: both the primary
// and the fallback model failed for the same prompt.
var ErrAllModelsFailed = fmt.Errorf("all language models failed")

// FallbackGenerator tries the primary generator and falls back exactly
// once. The terminal error carries the fallback's detail.
type FallbackGenerator struct {
	primary  Generator
	fallback Generator
	log      *zap.Logger
}

func NewFallbackGenerator(primary, fallback Generator, log *zap.Logger) *FallbackGenerator {
	return &FallbackGenerator{primary: primary, fallback: fallback, log: log}
}

func (f *FallbackGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	answer, err := f.primary.Generate(ctx, prompt)
	if err == nil && answer != "" {
		return answer, nil
	}
	f.log.Warn("primary model failed, trying fallback", zap.Error(err))

	answer, err = f.fallback.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAllModelsFailed, err)
	}
	if answer == "" {
		return "", fmt.Errorf("%w: fallback returned empty answer", ErrAllModelsFailed)
	}
	return answer, nil
}

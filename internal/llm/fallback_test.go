package llm

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubGenerator struct {
	answer string
	err    error
	calls  int
}

func (s *stubGenerator) Generate(_ context.Context, _ string) (string, error) {
	s.calls++
	return s.answer, s.err
}

func TestFallbackGenerator_PrimarySucceeds(t *testing.T) {
	primary := &stubGenerator{answer: "from primary"}
	fallback := &stubGenerator{answer: "from fallback"}
	g := NewFallbackGenerator(primary, fallback, zap.NewNop())

	answer, err := g.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "from primary", answer)
	assert.Zero(t, fallback.calls)
}

func TestFallbackGenerator_FallsBackOnError(t *testing.T) {
	primary := &stubGenerator{err: errors.New("rate limited")}
	fallback := &stubGenerator{answer: "from fallback"}
	g := NewFallbackGenerator(primary, fallback, zap.NewNop())

	answer, err := g.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "from fallback", answer)
}

func TestFallbackGenerator_FallsBackOnEmptyAnswer(t *testing.T) {
	primary := &stubGenerator{answer: ""}
	fallback := &stubGenerator{answer: "from fallback"}
	g := NewFallbackGenerator(primary, fallback, zap.NewNop())

	answer, err := g.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "from fallback", answer)
}

func TestFallbackGenerator_BothFailIsTerminal(t *testing.T) {
	primary := &stubGenerator{err: errors.New("primary down")}
	fallback := &stubGenerator{err: errors.New("fallback down")}
	g := NewFallbackGenerator(primary, fallback, zap.NewNop())

	_, err := g.Generate(context.Background(), "prompt")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAllModelsFailed)
	assert.Contains(t, err.Error(), "fallback down")
}

func TestFallbackGenerator_SingleHopOnly(t *testing.T) {
	primary := &stubGenerator{err: errors.New("down")}
	fallback := &stubGenerator{err: errors.New("also down")}
	g := NewFallbackGenerator(primary, fallback, zap.NewNop())

	g.Generate(context.Background(), "prompt")
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, fallback.calls)
}

func TestClient_Generate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Write([]byte(`{"choices":[{"message":{"content":"Here is your answer."}}]}`))
	}))
	defer srv.Close()

	c := NewClient("openai", srv.URL, "test-key", "gpt-4o-mini", 0.2)
	answer, err := c.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "Here is your answer.", answer)
}

func TestClient_Generate_MissingKey(t *testing.T) {
	c := NewClient("openai", "http://unused", "", "gpt-4o-mini", 0.2)
	_, err := c.Generate(context.Background(), "prompt")
	assert.Error(t, err)
}

func TestClient_Generate_NonOKIncludesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":"quota exceeded"}`))
	}))
	defer srv.Close()

	c := NewClient("openai", srv.URL, "test-key", "gpt-4o-mini", 0.2)
	_, err := c.Generate(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestClient_Generate_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := NewClient("openai", srv.URL, "test-key", "gpt-4o-mini", 0.2)
	_, err := c.Generate(context.Background(), "prompt")
	assert.Error(t, err)
}

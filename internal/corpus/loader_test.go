package corpus

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanyasbaking/bakery-assistant/backend/internal/models"
)

type errProvider struct{ err error }

func (p errProvider) LoadDocuments(_ context.Context) ([]models.Document, error) {
	return nil, p.err
}

func TestFileProvider_LoadsSnapshotAndAssignsSeq(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ingested_docs.json")
	content := `[
		{"type":"business","id":"business_info","text":"Tanya's Baking","source":"file:///info.json"},
		{"type":"faq","id":"faq_0","text":"Do you deliver? Yes.","source":"file:///faq.json"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	docs, err := FileProvider{Path: path}.LoadDocuments(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, 0, docs[0].Seq)
	assert.Equal(t, 1, docs[1].Seq)
	assert.Equal(t, models.DocTypeBusiness, docs[0].Type)
}

func TestFileProvider_MissingFile(t *testing.T) {
	_, err := FileProvider{Path: "/nonexistent/corpus.json"}.LoadDocuments(context.Background())
	assert.Error(t, err)
}

func TestChain_FirstNonEmptyWins(t *testing.T) {
	first := staticProvider(nil)
	second := staticProvider([]models.Document{{ID: "from_second"}})
	third := staticProvider([]models.Document{{ID: "from_third"}})

	docs, err := Chain{first, second, third}.LoadDocuments(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "from_second", docs[0].ID)
}

func TestChain_SkipsFailingProvider(t *testing.T) {
	failing := errProvider{err: errors.New("mongo down")}
	backup := staticProvider([]models.Document{{ID: "from_backup"}})

	docs, err := Chain{failing, backup}.LoadDocuments(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "from_backup", docs[0].ID)
}

func TestChain_AllFail(t *testing.T) {
	_, err := Chain{
		errProvider{err: errors.New("mongo down")},
		errProvider{err: errors.New("minio down")},
	}.LoadDocuments(context.Background())
	assert.Error(t, err)
}

func TestChain_AllEmptyIsNotAnError(t *testing.T) {
	docs, err := Chain{staticProvider(nil), staticProvider(nil)}.LoadDocuments(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, docs)
}

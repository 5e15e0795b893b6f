package corpus

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tanyasbaking/bakery-assistant/backend/internal/models"
)

type staticProvider []models.Document

func (p staticProvider) LoadDocuments(_ context.Context) ([]models.Document, error) {
	return p, nil
}

func testDocs() []models.Document {
	return []models.Document{
		{Seq: 0, Type: models.DocTypeBusiness, ID: "business_info", Source: "file:///data/business/info.json",
			Text: `{"name": "Tanya's Baking", "address": "Madambakkam, Chennai", "phone": "9677276248"}`},
		{Seq: 1, Type: models.DocTypeFAQ, ID: "faq_0", Source: "file:///data/faq/faq.json",
			Text: "Do you take custom cake orders? Yes, we take orders two days in advance."},
		{Seq: 2, Type: models.DocTypeProduct, ID: "pound_cake", Source: "file:///data/products/products.json",
			Text: "Pound Cake Classic buttery pound cake baked fresh every morning."},
		{Seq: 3, Type: models.DocTypeInstagram, ID: "post_1", Source: "file:///data/instagram/posts.json",
			Text: "Fresh chocolate ganache cake out of the oven today!"},
	}
}

func newTestIndex(t *testing.T, docs []models.Document) *Index {
	idx := NewIndex(staticProvider(docs), zap.NewNop())
	require.NoError(t, idx.Reload(context.Background()))
	return idx
}

func TestSearch_LocationQueryBoostsBusinessDoc(t *testing.T) {
	idx := newTestIndex(t, testDocs())

	results := idx.Search("What is Tanya's Baking address in Madambakkam?", 3)
	require.NotEmpty(t, results)
	assert.Equal(t, models.DocTypeBusiness, results[0].Type)
	assert.Equal(t, "business_info", results[0].ID)
}

func TestSearch_ZeroScoreDocsExcluded(t *testing.T) {
	idx := newTestIndex(t, testDocs())

	results := idx.Search("ganache", 3)
	require.Len(t, results, 1)
	assert.Equal(t, "post_1", results[0].ID)
}

func TestSearch_NoMatchesReturnsEmpty(t *testing.T) {
	idx := newTestIndex(t, testDocs())

	assert.Empty(t, idx.Search("quantum entanglement", 3))
}

func TestSearch_LimitApplied(t *testing.T) {
	idx := newTestIndex(t, testDocs())

	results := idx.Search("cake", 2)
	assert.Len(t, results, 2)
}

func TestSearch_EqualScoresKeepIngestionOrder(t *testing.T) {
	docs := []models.Document{
		{Seq: 0, Type: models.DocTypeProduct, ID: "first", Text: "vanilla sponge cake"},
		{Seq: 1, Type: models.DocTypeProduct, ID: "second", Text: "lemon sponge cake"},
		{Seq: 2, Type: models.DocTypeProduct, ID: "third", Text: "ginger sponge cake"},
	}
	idx := newTestIndex(t, docs)

	results := idx.Search("sponge cake", 3)
	require.Len(t, results, 3)
	assert.Equal(t, "first", results[0].ID)
	assert.Equal(t, "second", results[1].ID)
	assert.Equal(t, "third", results[2].ID)
}

func TestSearch_Idempotent(t *testing.T) {
	idx := newTestIndex(t, testDocs())

	first := idx.Search("cake orders", 3)
	second := idx.Search("cake orders", 3)
	assert.Equal(t, first, second)
}

func TestReload_SwapsSnapshot(t *testing.T) {
	idx := newTestIndex(t, testDocs())
	require.Equal(t, 4, idx.Size())

	idx.provider = staticProvider([]models.Document{
		{Seq: 0, Type: models.DocTypeFAQ, ID: "faq_new", Text: "new faq"},
	})
	require.NoError(t, idx.Reload(context.Background()))
	assert.Equal(t, 1, idx.Size())
}

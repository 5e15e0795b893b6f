package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanyasbaking/bakery-assistant/backend/internal/models"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func setupDataDir(t *testing.T) string {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "business", "info.json"),
		`{"name":"Tanya's Baking","address":"Madambakkam, Chennai"}`)
	writeFile(t, filepath.Join(dir, "faq", "faq.json"),
		`{"faqs":[{"question":"Do you deliver?","answer":"Yes, within Chennai."},
		          {"question":"Eggless options?","answer":"Most cakes have eggless variants."}]}`)
	writeFile(t, filepath.Join(dir, "products", "products.json"),
		`{"products":[{"product_id":"pound_cake","name":"Pound Cake","description":"Classic buttery pound cake"}]}`)
	writeFile(t, filepath.Join(dir, "instagram", "posts.json"),
		`{"instagram_posts":[{"post_id":"post_1","caption":"Fresh ganache cake today!"}]}`)
	return dir
}

func TestRun_BuildsCorpusInIngestionOrder(t *testing.T) {
	docs, err := Run(setupDataDir(t))
	require.NoError(t, err)
	require.Len(t, docs, 5)

	assert.Equal(t, models.DocTypeBusiness, docs[0].Type)
	assert.Equal(t, "business_info", docs[0].ID)
	assert.Contains(t, docs[0].Text, "Madambakkam")

	assert.Equal(t, models.DocTypeFAQ, docs[1].Type)
	assert.Equal(t, "faq_0", docs[1].ID)
	assert.Equal(t, "Do you deliver? Yes, within Chennai.", docs[1].Text)
	assert.Equal(t, "faq_1", docs[2].ID)

	assert.Equal(t, models.DocTypeProduct, docs[3].Type)
	assert.Equal(t, "pound_cake", docs[3].ID)
	assert.Equal(t, "Pound Cake Classic buttery pound cake", docs[3].Text)

	assert.Equal(t, models.DocTypeInstagram, docs[4].Type)
	assert.Equal(t, "post_1", docs[4].ID)

	for i, d := range docs {
		assert.Equal(t, i, d.Seq)
		assert.Contains(t, d.Source, "file://")
	}
}

func TestRun_MissingFileFails(t *testing.T) {
	dir := t.TempDir()
	_, err := Run(dir)
	assert.Error(t, err)
}

func TestRun_InvalidBusinessJSONFails(t *testing.T) {
	dir := setupDataDir(t)
	writeFile(t, filepath.Join(dir, "business", "info.json"), `{not json`)

	_, err := Run(dir)
	assert.Error(t, err)
}

// Package ingest turns the curated data files into the corpus document
// sequence.
package ingest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tanyasbaking/bakery-assistant/backend/internal/models"
)

type faqFile struct {
	FAQs []struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
	} `json:"faqs"`
}

type productsFile struct {
	Products []struct {
		ProductID   string `json:"product_id"`
		Name        string `json:"name"`
		Description string `json:"description"`
	} `json:"products"`
}

type instagramFile struct {
	InstagramPosts []struct {
		PostID  string `json:"post_id"`
		Caption string `json:"caption"`
	} `json:"instagram_posts"`
}

// Run reads the four data files under dataDir and builds the corpus in
// a fixed order: business info, FAQs, products, Instagram posts. That
// order is what the search tie-break preserves.
func Run(dataDir string) ([]models.Document, error) {
	var docs []models.Document

	businessPath := filepath.Join(dataDir, "business", "info.json")
	bizRaw, err := os.ReadFile(businessPath)
	if err != nil {
		return nil, fmt.Errorf("read business info: %w", err)
	}
	if !json.Valid(bizRaw) {
		return nil, fmt.Errorf("business info is not valid JSON: %s", businessPath)
	}
	docs = append(docs, models.Document{
		Type:   models.DocTypeBusiness,
		ID:     "business_info",
		Text:   string(bizRaw),
		Source: fileURI(businessPath),
	})

	faqPath := filepath.Join(dataDir, "faq", "faq.json")
	var faqs faqFile
	if err := readJSON(faqPath, &faqs); err != nil {
		return nil, err
	}
	for i, f := range faqs.FAQs {
		docs = append(docs, models.Document{
			Type:   models.DocTypeFAQ,
			ID:     fmt.Sprintf("faq_%d", i),
			Text:   f.Question + " " + f.Answer,
			Source: fileURI(faqPath),
		})
	}

	productsPath := filepath.Join(dataDir, "products", "products.json")
	var products productsFile
	if err := readJSON(productsPath, &products); err != nil {
		return nil, err
	}
	for _, p := range products.Products {
		docs = append(docs, models.Document{
			Type:   models.DocTypeProduct,
			ID:     p.ProductID,
			Text:   p.Name + " " + p.Description,
			Source: fileURI(productsPath),
		})
	}

	instagramPath := filepath.Join(dataDir, "instagram", "posts.json")
	var posts instagramFile
	if err := readJSON(instagramPath, &posts); err != nil {
		return nil, err
	}
	for _, p := range posts.InstagramPosts {
		docs = append(docs, models.Document{
			Type:   models.DocTypeInstagram,
			ID:     p.PostID,
			Text:   p.Caption,
			Source: fileURI(instagramPath),
		})
	}

	for i := range docs {
		docs[i].Seq = i
	}
	return docs, nil
}

func readJSON(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func fileURI(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return "file://" + filepath.ToSlash(abs)
}

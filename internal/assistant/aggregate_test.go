package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tanyasbaking/bakery-assistant/backend/internal/models"
)

func TestBuildBundle_PartitionsByVerification(t *testing.T) {
	local := []models.Document{
		{Type: models.DocTypeBusiness, ID: "business_info", Source: "file:///data/business/info.json"},
		{Type: models.DocTypeFAQ, ID: "faq_0", Source: "file:///data/faq/faq.json"},
	}
	web := []models.WebResult{
		{Link: "https://tanyasbaking.com", Verified: true},
		{Link: "https://impostor.example.com", Verified: false, Reason: models.ReasonNotWhitelisted},
		{Link: "https://stale.example.com", Verified: false, Reason: models.ReasonFailedVerification},
	}

	bundle := buildBundle(local, web)

	assert.Equal(t, []string{"file:///data/business/info.json", "file:///data/faq/faq.json"}, bundle.Local)
	assert.Equal(t, []string{"https://tanyasbaking.com"}, bundle.WebVerified)
	assert.Equal(t, []string{
		"https://impostor.example.com (not_whitelisted)",
		"https://stale.example.com (failed_verification)",
	}, bundle.WebUnverified)
}

func TestBuildBundle_LocalSourcesSortedAndDistinct(t *testing.T) {
	local := []models.Document{
		{ID: "b", Source: "file:///b.json"},
		{ID: "a", Source: "file:///a.json"},
		{ID: "b2", Source: "file:///b.json"},
	}

	bundle := buildBundle(local, nil)
	assert.Equal(t, []string{"file:///a.json", "file:///b.json"}, bundle.Local)
}

func TestVerifiedOnly_NeverPromotesUnverified(t *testing.T) {
	web := []models.WebResult{
		{Link: "https://a", Verified: false, Reason: models.ReasonNotWhitelisted},
		{Link: "https://b", Verified: true},
		{Link: "https://c", Verified: false, Reason: models.ReasonFailedVerification},
	}

	kept := verifiedOnly(web)
	assert.Len(t, kept, 1)
	assert.Equal(t, "https://b", kept[0].Link)
}

func TestHasVerified(t *testing.T) {
	assert.False(t, hasVerified(nil))
	assert.False(t, hasVerified([]models.WebResult{{Verified: false}}))
	assert.True(t, hasVerified([]models.WebResult{{Verified: false}, {Verified: true}}))
}

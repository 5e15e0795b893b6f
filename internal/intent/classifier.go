// Package intent maps a raw question to the category that governs
// which sources the pipeline trusts.
package intent

import (
	"regexp"
	"strings"

	"github.com/tanyasbaking/bakery-assistant/backend/internal/models"
)

// tanyaKeywords are business-identity terms: brand name variants,
// signature products and the neighborhood.
var tanyaKeywords = []string{
	"tanya", "tanyas", "tanya's", "tanyas baking", "tanyas_baking",
	"our cakes", "pound cake", "sickle cake", "madambakkam", "padmavathy",
}

// brandPhrases contain the word "baking", which must not count as a
// generic term when it only appears inside the brand name.
var brandPhrases = []string{"tanya's baking", "tanyas baking", "tanyas_baking"}

// bakingKeywords are generic domain-activity terms.
var bakingKeywords = []string{
	"recipe", "how to", "bake", "baking", "ingredients", "oven", "ganache",
	"buttercream", "eggless", "temperature", "preheat", "whisk", "fold",
}

// storeRe matches operational questions that are almost certainly about
// the shop even without naming it.
var storeRe = regexp.MustCompile(`\b(address|where|open|hours|timings|price|order|menu|class|classes|delivery)\b`)

// Classify is a pure function of the lower-cased question text. The four
// rules are ordered; the first match wins.
func Classify(question string) models.Intent {
	q := strings.ToLower(question)

	if containsAny(q, tanyaKeywords) {
		stripped := q
		for _, brand := range brandPhrases {
			stripped = strings.ReplaceAll(stripped, brand, " ")
		}
		if containsAny(stripped, bakingKeywords) {
			return models.IntentHybrid
		}
		return models.IntentTanya
	}

	if containsAny(q, bakingKeywords) {
		return models.IntentBaking
	}

	// Vague operational questions are assumed to be about the shop,
	// not the craft.
	if storeRe.MatchString(q) {
		return models.IntentTanya
	}

	return models.IntentHybrid
}

func containsAny(q string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(q, k) {
			return true
		}
	}
	return false
}

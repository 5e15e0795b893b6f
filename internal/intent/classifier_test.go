package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tanyasbaking/bakery-assistant/backend/internal/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     models.Intent
	}{
		{
			name:     "brand name only",
			question: "Is Tanya's Baking open on Sundays?",
			want:     models.IntentTanya,
		},
		{
			name:     "brand name plus baking term is hybrid",
			question: "Tanya's pound cake recipe",
			want:     models.IntentHybrid,
		},
		{
			name:     "signature product counts as business identity",
			question: "How much does the sickle cake cost",
			want:     models.IntentTanya,
		},
		{
			name:     "neighborhood token counts as business identity",
			question: "cake shop in madambakkam",
			want:     models.IntentTanya,
		},
		{
			name:     "generic baking question",
			question: "How do I make chocolate ganache?",
			want:     models.IntentBaking,
		},
		{
			name:     "generic technique vocabulary",
			question: "what temperature should I preheat for cookies",
			want:     models.IntentBaking,
		},
		{
			name:     "operational vocabulary without brand name",
			question: "what are the delivery charges",
			want:     models.IntentTanya,
		},
		{
			name:     "address question without brand name",
			question: "where is the shop",
			want:     models.IntentTanya,
		},
		{
			name:     "operational word must match whole word",
			question: "borderline sweetness is fine",
			want:     models.IntentHybrid,
		},
		{
			name:     "nothing matches falls back to hybrid",
			question: "do you have anything new",
			want:     models.IntentHybrid,
		},
		{
			name:     "case insensitive",
			question: "TANYA'S BAKING",
			want:     models.IntentTanya,
		},
		{
			name:     "location plus address prefers rule one",
			question: "What is Tanya's Baking address in Madambakkam?",
			want:     models.IntentTanya,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.question))
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	q := "eggless buttercream for tanya's class"
	first := Classify(q)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify(q))
	}
}

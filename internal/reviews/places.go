// Package reviews fetches the business's Google Maps rating and top
// reviews. Results are inherently trusted: they are scoped to one
// pre-known listing, never a search over the open web.
package reviews

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/tanyasbaking/bakery-assistant/backend/internal/models"
)

const (
	defaultFindURL    = "https://maps.googleapis.com/maps/api/place/findplacefromtext/json"
	defaultDetailsURL = "https://maps.googleapis.com/maps/api/place/details/json"

	// placeQuery resolves the canonical listing; the business identity
	// is fixed, not parameterized per call.
	placeQuery = "Tanya's Baking Madambakkam Chennai"

	maxReviews = 3
)

type placeCandidate struct {
	PlaceID string `json:"place_id"`
}

type placeReview struct {
	AuthorName string  `json:"author_name"`
	Rating     float64 `json:"rating"`
	Text       string  `json:"text"`
}

type placeDetails struct {
	Rating           float64       `json:"rating"`
	UserRatingsTotal int           `json:"user_ratings_total"`
	Reviews          []placeReview `json:"reviews"`
}

// Gateway resolves the business listing and pulls its rating and top
// reviews. Optional enrichment: every failure path returns an empty
// list, logged, never an error.
type Gateway struct {
	apiKey     string
	findURL    string
	detailsURL string
	httpClient *http.Client
	log        *zap.Logger
}

func NewGateway(apiKey string, log *zap.Logger) *Gateway {
	return &Gateway{
		apiKey:     apiKey,
		findURL:    defaultFindURL,
		detailsURL: defaultDetailsURL,
		httpClient: &http.Client{Timeout: 8 * time.Second},
		log:        log,
	}
}

// Fetch returns a rating summary plus up to three reviews, all marked
// verified.
func (g *Gateway) Fetch(ctx context.Context) []models.WebResult {
	if g.apiKey == "" {
		g.log.Warn("google api key missing, skipping reviews")
		return nil
	}

	placeID, err := g.findPlace(ctx)
	if err != nil {
		g.log.Warn("place lookup failed", zap.Error(err))
		return nil
	}

	details, err := g.placeDetails(ctx, placeID)
	if err != nil {
		g.log.Warn("place details failed", zap.Error(err))
		return nil
	}

	link := fmt.Sprintf("https://www.google.com/maps/search/?api=1&query=place_id:%s", placeID)

	results := make([]models.WebResult, 0, maxReviews+1)
	if details.Rating > 0 {
		results = append(results, models.WebResult{
			Title:    fmt.Sprintf("Google Rating: %.1f★ (%d reviews)", details.Rating, details.UserRatingsTotal),
			Snippet:  fmt.Sprintf("Rating %.1f from %d reviews", details.Rating, details.UserRatingsTotal),
			Link:     link,
			Verified: true,
			Reason:   "Google Maps place details",
			Rating:   details.Rating,
		})
	}

	reviews := details.Reviews
	if len(reviews) > maxReviews {
		reviews = reviews[:maxReviews]
	}
	for _, rv := range reviews {
		author := rv.AuthorName
		if author == "" {
			author = "User"
		}
		results = append(results, models.WebResult{
			Title:    fmt.Sprintf("Google Review by %s", author),
			Snippet:  rv.Text,
			Link:     link,
			Verified: true,
			Reason:   "Google Maps verified review",
			Rating:   rv.Rating,
			Author:   author,
		})
	}
	return results
}

func (g *Gateway) findPlace(ctx context.Context) (string, error) {
	params := url.Values{}
	params.Set("input", placeQuery)
	params.Set("inputtype", "textquery")
	params.Set("fields", "place_id,formatted_address,name")
	params.Set("key", g.apiKey)

	var result struct {
		Status     string           `json:"status"`
		Candidates []placeCandidate `json:"candidates"`
	}
	if err := g.getJSON(ctx, g.findURL, params, &result); err != nil {
		return "", err
	}
	if result.Status != "OK" || len(result.Candidates) == 0 {
		return "", fmt.Errorf("find place returned status %q", result.Status)
	}
	return result.Candidates[0].PlaceID, nil
}

func (g *Gateway) placeDetails(ctx context.Context, placeID string) (*placeDetails, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", "rating,user_ratings_total,reviews")
	params.Set("key", g.apiKey)

	var result struct {
		Status string       `json:"status"`
		Result placeDetails `json:"result"`
	}
	if err := g.getJSON(ctx, g.detailsURL, params, &result); err != nil {
		return nil, err
	}
	if result.Status != "OK" {
		return nil, fmt.Errorf("place details returned status %q", result.Status)
	}
	return &result.Result, nil
}

func (g *Gateway) getJSON(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("places request: %w", err)
	}
	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("places call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("places call returned %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("places call: decode: %w", err)
	}
	return nil
}

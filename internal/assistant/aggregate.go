package assistant

import (
	"fmt"
	"sort"

	"github.com/tanyasbaking/bakery-assistant/backend/internal/models"
)

// verifiedOnly keeps results that passed trust checks. Unverified items
// are never promoted, whatever their relevance.
func verifiedOnly(results []models.WebResult) []models.WebResult {
	var out []models.WebResult
	for _, r := range results {
		if r.Verified {
			out = append(out, r)
		}
	}
	return out
}

func hasVerified(results []models.WebResult) bool {
	for _, r := range results {
		if r.Verified {
			return true
		}
	}
	return false
}

// buildBundle partitions the sources behind an answer for citation
// display: sorted distinct local document sources, verified web links,
// and unverified links annotated with their reason.
func buildBundle(local []models.Document, web []models.WebResult) models.SourceBundle {
	seen := make(map[string]bool)
	localSources := make([]string, 0, len(local))
	for _, d := range local {
		if d.Source != "" && !seen[d.Source] {
			seen[d.Source] = true
			localSources = append(localSources, d.Source)
		}
	}
	sort.Strings(localSources)

	verified := make([]string, 0, len(web))
	unverified := make([]string, 0)
	for _, w := range web {
		if w.Verified {
			verified = append(verified, w.Link)
		} else {
			unverified = append(unverified, fmt.Sprintf("%s (%s)", w.Link, w.Reason))
		}
	}

	return models.SourceBundle{
		Local:         localSources,
		WebVerified:   verified,
		WebUnverified: unverified,
	}
}

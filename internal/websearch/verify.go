package websearch

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// defaultWhitelist lists the domains and paths considered authoritative
// for the business: its own site, the verified Instagram handle, its
// maps listing and the local directory entry.
var defaultWhitelist = []string{
	"tanyasbaking.com",
	"www.tanyasbaking.com",
	"instagram.com/tanyas_baking",
	"www.instagram.com/tanyas_baking",
	"justdial.com",
	"google.com/maps",
	"maps.google.com",
	"google.com/maps/place/Tanya's+Baking+(Homemade+Cakes+and+Class)",
	"www.google.com/maps/place/Tanya's+Baking+(Homemade+Cakes+and+Class)",
}

// defaultIdentityKeywords are the terms a whitelisted page must mention
// at least one of to pass content verification.
var defaultIdentityKeywords = []string{
	"tanya", "tanya's baking", "tanyas baking", "madambakkam", "padmavathy", "9677276248",
}

const verifyUserAgent = "tanyas-bot/1.0"

// maxVerifyBody caps how much of a page the verifier reads.
const maxVerifyBody = 1 << 20

// Verifier decides whether a link may be cited as authoritative for the
// business: a domain-membership test followed by a lightweight content
// check on the page itself.
type Verifier struct {
	whitelist  []string
	keywords   []string
	httpClient *http.Client
}

func NewVerifier() *Verifier {
	return &Verifier{
		whitelist:  defaultWhitelist,
		keywords:   defaultIdentityKeywords,
		httpClient: &http.Client{Timeout: 6 * time.Second},
	}
}

// Whitelisted reports whether the link's domain (or the full URL)
// contains one of the trusted fragments.
func (v *Verifier) Whitelisted(link string) bool {
	dom := domainOf(link)
	for _, allowed := range v.whitelist {
		if strings.Contains(dom, allowed) || strings.Contains(link, allowed) {
			return true
		}
	}
	return false
}

// VerifyPage fetches the page and checks for at least one identity
// keyword. Any fetch failure counts as a verification failure, not an
// error: a page we cannot read is a page we cannot trust.
func (v *Verifier) VerifyPage(ctx context.Context, link string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", verifyUserAgent)

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxVerifyBody))
	if err != nil {
		return false
	}
	text := strings.ToLower(string(body))
	for _, k := range v.keywords {
		if strings.Contains(text, strings.ToLower(k)) {
			return true
		}
	}
	return false
}

func domainOf(link string) string {
	u, err := url.Parse(link)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Host)
}

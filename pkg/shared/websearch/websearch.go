// Package websearch is the DuckDuckGo provider adapter. It performs exactly
// one HTML-endpoint request per search and returns the ordered raw hits;
// retries, pagination, and result caching are out of scope.
package websearch

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/beeper/websearch-mcp/pkg/shared/httputil"
)

// RawHit is a single untouched search hit as returned by the provider.
type RawHit struct {
	Title       string
	URL         string
	Description string
}

// Options are the provider-facing search parameters. MaxResults is an
// advisory bound applied while collecting hits from the provider page.
type Options struct {
	Region     string
	SafeSearch string
	MaxResults int
}

const defaultEndpoint = "https://html.duckduckgo.com/html/"

// The HTML endpoint serves a bot-check page to clients without a browser
// user agent.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

// Client performs searches against the DuckDuckGo HTML endpoint.
type Client struct {
	Endpoint    string
	TimeoutSecs int
}

// NewClient returns a Client with the production endpoint and timeout.
func NewClient() *Client {
	return &Client{Endpoint: defaultEndpoint, TimeoutSecs: 10}
}

// safeSearchParam maps the safe search level to DuckDuckGo's kp parameter.
func safeSearchParam(level string) string {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "STRICT":
		return "1"
	case "OFF":
		return "-2"
	default:
		return "-1"
	}
}

// Search performs a single search request and parses the results page.
func (c *Client) Search(ctx context.Context, query string, opts Options) ([]RawHit, error) {
	form := url.Values{}
	form.Set("q", query)
	if opts.Region != "" {
		form.Set("kl", opts.Region)
	}
	form.Set("kp", safeSearchParam(opts.SafeSearch))

	endpoint := c.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	headers := map[string]string{"User-Agent": userAgent}
	body, _, err := httputil.PostForm(ctx, endpoint, headers, form, c.TimeoutSecs)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return parseResults(body, opts.MaxResults)
}

// parseResults extracts raw hits from the HTML results page in page order.
func parseResults(page []byte, maxResults int) ([]RawHit, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("failed to parse results: %w", err)
	}
	if doc.Find(".anomaly-modal__title").Length() > 0 {
		return nil, fmt.Errorf("failed to parse results: provider served a bot-check page")
	}

	var hits []RawHit
	doc.Find("div.result").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if maxResults > 0 && len(hits) >= maxResults {
			return false
		}
		link := sel.Find("a.result__a").First()
		href, ok := link.Attr("href")
		if !ok {
			return true
		}
		hits = append(hits, RawHit{
			Title:       strings.TrimSpace(link.Text()),
			URL:         resolveRedirect(href),
			Description: sel.Find(".result__snippet").First().Text(),
		})
		return true
	})
	return hits, nil
}

// resolveRedirect unwraps DuckDuckGo's /l/?uddg=<target> redirect links,
// returning href untouched when it is not a redirect.
func resolveRedirect(href string) string {
	parsed, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := parsed.Query().Get("uddg"); target != "" {
		return target
	}
	return href
}

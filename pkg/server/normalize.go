package server

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/beeper/websearch-mcp/pkg/shared/classify"
	"github.com/beeper/websearch-mcp/pkg/shared/stringutil"
	"github.com/beeper/websearch-mcp/pkg/shared/websearch"
)

// normalizeHits maps raw provider hits to result items, preserving provider
// order. A malformed result URL fails the whole request instead of skipping
// the item, so responses stay deterministic.
func normalizeHits(hits []websearch.RawHit) ([]SearchResultItem, *Error) {
	items := make([]SearchResultItem, 0, len(hits))
	for _, hit := range hits {
		source, err := hostnameOf(hit.URL)
		if err != nil {
			return nil, searchFailed(err)
		}
		items = append(items, SearchResultItem{
			Title:       stringutil.DecodeEntities(hit.Title),
			URL:         hit.URL,
			Description: strings.TrimSpace(hit.Description),
			Metadata: ResultMetadata{
				Type:   classify.ContentTypeOf(hit.URL),
				Source: source,
			},
		})
	}
	return items, nil
}

func hostnameOf(rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("malformed result URL %q: %v", rawURL, err)
	}
	host := parsed.Hostname()
	if host == "" {
		return "", fmt.Errorf("malformed result URL %q: no hostname", rawURL)
	}
	return host, nil
}

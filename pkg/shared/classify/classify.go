// Package classify contains the pure classification rules applied to search
// results: content-type inference from URL patterns, query language
// detection, and topic extraction from result titles.
package classify

import (
	"slices"
	"strings"
)

// ContentType labels a search result by the kind of page its URL points at.
type ContentType string

const (
	TypeArticle       ContentType = "article"
	TypeDocumentation ContentType = "documentation"
	TypeSocial        ContentType = "social"
	// TypeOther is declared so consumers can match on all four variants.
	// No current rule produces it.
	TypeOther ContentType = "other"
)

// Rule tables, checked in order. First match wins.
var (
	docMarkers  = []string{"docs.", "/docs/", "/documentation/"}
	docHosts    = []string{"github.com", "stackoverflow.com"}
	socialHosts = []string{"twitter.com", "facebook.com", "linkedin.com"}
)

// ContentTypeOf infers the content type from URL substrings: documentation
// markers first, then documentation hosts, then social hosts, then article.
func ContentTypeOf(rawURL string) ContentType {
	for _, marker := range docMarkers {
		if strings.Contains(rawURL, marker) {
			return TypeDocumentation
		}
	}
	for _, host := range docHosts {
		if strings.Contains(rawURL, host) {
			return TypeDocumentation
		}
	}
	for _, host := range socialHosts {
		if strings.Contains(rawURL, host) {
			return TypeSocial
		}
	}
	return TypeArticle
}

// Language returns "zh-cn" if the query contains any CJK unified ideograph
// (U+4E00..U+9FA5), otherwise "en". A coarse script check, not real
// language detection.
func Language(query string) string {
	for _, r := range query {
		if r >= 0x4E00 && r <= 0x9FA5 {
			return "zh-cn"
		}
	}
	return "en"
}

// Topics scans result titles case-insensitively for known keywords and
// returns the matched topics. Set semantics: duplicates collapse, and the
// result is sorted so serialized output is stable.
func Topics(titles []string) []string {
	seen := make(map[string]struct{})
	for _, title := range titles {
		lower := strings.ToLower(title)
		if strings.Contains(lower, "github") {
			seen["technology"] = struct{}{}
		}
		if strings.Contains(lower, "docs") {
			seen["documentation"] = struct{}{}
		}
	}
	topics := make([]string, 0, len(seen))
	for topic := range seen {
		topics = append(topics, topic)
	}
	slices.Sort(topics)
	return topics
}

package stringutil

import "strings"

// Provider titles only ever carry these two entities; this is deliberately
// not general HTML unescaping.
var titleEntityReplacer = strings.NewReplacer(
	"&#x27;", "'",
	"&quot;", `"`,
)

// DecodeEntities decodes the HTML character entities that appear in provider
// result titles. Inputs without entities pass through unchanged.
func DecodeEntities(text string) string {
	return titleEntityReplacer.Replace(text)
}

package admin

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policyOnce   sync.Once
	strictPolicy *bluemonday.Policy
	ugcPolicy    *bluemonday.Policy
)

func policies() (*bluemonday.Policy, *bluemonday.Policy) {
	policyOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
		ugcPolicy = bluemonday.UGCPolicy()
	})
	return strictPolicy, ugcPolicy
}

// StripTags removes all markup from a submitted single-line value and returns
// plain text. Entities the policy introduces are decoded; output escaping is
// left to the renderer.
func StripTags(value string) string {
	strict, _ := policies()
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(value)))
}

// SanitizeHTML keeps the markup allowed in user generated content. Field
// descriptions and textarea values go through it.
func SanitizeHTML(value string) string {
	_, ugc := policies()
	return strings.TrimSpace(ugc.Sanitize(value))
}

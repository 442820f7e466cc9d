package model

import (
	"regexp"
	"strings"
	"sync"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/unicode/norm"
)

// Sanitizer turns a human label into a safe identifier.
type Sanitizer interface {
	SanitizeTitle(title string) string
}

// SanitizerFunc adapts a function to Sanitizer.
type SanitizerFunc func(string) string

// SanitizeTitle implements Sanitizer.
func (f SanitizerFunc) SanitizeTitle(title string) string {
	if f == nil {
		return ""
	}
	return f(title)
}

var (
	stripPolicyOnce sync.Once
	stripPolicy     *bluemonday.Policy

	entityPattern    = regexp.MustCompile(`&[^;\s]+;`)
	slugUnsafe       = regexp.MustCompile(`[^a-z0-9_\-\s]+`)
	slugSeparators   = regexp.MustCompile(`[\s\-]+`)
	slugEdgeDashesRe = regexp.MustCompile(`^-+|-+$`)
)

// DefaultSanitizer lowercases, strips markup and accents, and joins words
// with dashes: "Général <b>Options</b>" becomes "general-options".
func DefaultSanitizer() Sanitizer {
	return SanitizerFunc(SanitizeTitle)
}

// SanitizeTitle is the function behind DefaultSanitizer.
func SanitizeTitle(title string) string {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return ""
	}
	plain := strictPolicy().Sanitize(trimmed)
	plain = entityPattern.ReplaceAllString(plain, "")
	plain = strings.ToLower(removeAccents(plain))
	plain = slugUnsafe.ReplaceAllString(plain, "")
	plain = slugSeparators.ReplaceAllString(plain, "-")
	return slugEdgeDashesRe.ReplaceAllString(plain, "")
}

func strictPolicy() *bluemonday.Policy {
	stripPolicyOnce.Do(func() {
		stripPolicy = bluemonday.StrictPolicy()
	})
	return stripPolicy
}

func removeAccents(s string) string {
	decomposed := norm.NFD.String(s)
	var out strings.Builder
	out.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		out.WriteRune(r)
	}
	return out.String()
}

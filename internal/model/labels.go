package model

import (
	"regexp"
	"strings"
	"unicode"
)

// Labeler derives a field title from its id when the descriptor has none.
type Labeler func(id string) string

// IDLabeler uses the id itself as the title, which is what the host shows for
// untitled fields.
func IDLabeler(id string) string {
	return id
}

var labelSeparators = regexp.MustCompile(`[_\-\s]+`)

// HumanizeLabel turns "shipping_zone-id" into "Shipping Zone Id".
func HumanizeLabel(id string) string {
	words := labelSeparators.Split(strings.TrimSpace(id), -1)
	segments := make([]string, 0, len(words))
	for _, word := range words {
		if word == "" {
			continue
		}
		runes := []rune(strings.ToLower(word))
		runes[0] = unicode.ToUpper(runes[0])
		segments = append(segments, string(runes))
	}
	return strings.Join(segments, " ")
}

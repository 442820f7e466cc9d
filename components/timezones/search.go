package timezones

import (
	"sort"
	"strings"

	"github.com/goliatone/go-settingstab/pkg/model"
)

// Search returns zones containing query, case-insensitively, prefix matches
// first. An empty query matches nothing.
func Search(zones []string, query string, limit int, opts Options) []string {
	limit = clampLimit(limit, opts)
	query = strings.ToLower(strings.TrimSpace(query))
	if limit == 0 || query == "" {
		return nil
	}

	matches := make([]matchedZone, 0, 16)
	for _, zone := range zones {
		lower := strings.ToLower(zone)
		// "new york" should find America/New_York
		spaced := strings.ReplaceAll(lower, "_", " ")
		if !strings.Contains(lower, query) && !strings.Contains(spaced, query) {
			continue
		}
		city := lower[strings.LastIndex(lower, "/")+1:]
		matches = append(matches, matchedZone{
			name:     zone,
			isPrefix: strings.HasPrefix(lower, query) || strings.HasPrefix(strings.ReplaceAll(city, "_", " "), query),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].isPrefix != matches[j].isPrefix {
			return matches[i].isPrefix
		}
		return matches[i].name < matches[j].name
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]string, 0, len(matches))
	for _, match := range matches {
		out = append(out, match.name)
	}
	return out
}

// SearchOptions is Search shaped as picker options.
func SearchOptions(zones []string, query string, limit int, opts Options) model.Options {
	results := Search(zones, query, limit, opts)
	out := make(model.Options, 0, len(results))
	for _, zone := range results {
		out = append(out, model.Option{Value: zone, Label: Label(zone)})
	}
	return out
}

type matchedZone struct {
	name     string
	isPrefix bool
}

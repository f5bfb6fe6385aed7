// Package catalog groups and filters tutorial items.
package catalog

import (
	"sort"
	"strings"

	"github.com/ziadkadry99/learnsite/internal/content"
)

// OtherLabel is the catch-all group for items matching no known label.
const OtherLabel = "Other"

// DefaultCap bounds the unfiltered list so the initial render stays small.
const DefaultCap = 6

// DefaultLabels is the priority order used to assign an item to a group.
var DefaultLabels = []string{"JavaScript", "Python", "C++", "HTML", "CSS", "Java"}

// Group is one labelled section of a partition.
type Group struct {
	Label string
	Items []content.Item
}

// LabelFor returns the first label in priority order that matches one of
// the item's tags or its language, case-insensitively.
func LabelFor(it content.Item, priority []string) string {
	candidates := make([]string, 0, len(it.Tags)+1)
	if it.Language != "" {
		candidates = append(candidates, strings.TrimSpace(it.Language))
	}
	for _, tag := range it.Tags {
		candidates = append(candidates, strings.TrimSpace(tag))
	}
	for _, label := range priority {
		for _, c := range candidates {
			if strings.EqualFold(c, label) {
				return label
			}
		}
	}
	return OtherLabel
}

// GroupByLabel partitions items by LabelFor. Groups come back sorted by
// label, the catch-all included; items keep their list order.
func GroupByLabel(items []content.Item, priority []string) []Group {
	if priority == nil {
		priority = DefaultLabels
	}
	index := make(map[string]int)
	var groups []Group
	for _, it := range items {
		label := LabelFor(it, priority)
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, Group{Label: label})
		}
		groups[i].Items = append(groups[i].Items, it)
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Label < groups[j].Label
	})
	return groups
}

// NormalizeQuery lowercases and trims a search query.
func NormalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// Filter returns items whose title, description or space-joined tags
// contain the query, case-insensitively, in list order. An empty query
// returns the first limit items.
func Filter(items []content.Item, query string, limit int) []content.Item {
	q := NormalizeQuery(query)
	if q == "" {
		if limit < 0 || limit > len(items) {
			limit = len(items)
		}
		return items[:limit:limit]
	}
	var out []content.Item
	for _, it := range items {
		if matches(it, q) {
			out = append(out, it)
		}
	}
	return out
}

func matches(it content.Item, q string) bool {
	return strings.Contains(strings.ToLower(it.Title), q) ||
		strings.Contains(strings.ToLower(it.Description), q) ||
		strings.Contains(strings.ToLower(strings.Join(it.Tags, " ")), q)
}

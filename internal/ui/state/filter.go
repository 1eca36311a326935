package state

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SetFilter updates the filter query. The cursor moves to the best match
// while a query is set and returns to its previous position when the query
// is cleared.
func (l *Level) SetFilter(query string) {
	trimmed := strings.TrimSpace(query)
	prevTrimmed := strings.TrimSpace(l.Filter)
	restore := -1
	l.Filter = query
	if trimmed != "" {
		if prevTrimmed == "" {
			l.LastCursor = l.Cursor
		}
		l.Cursor = 0
	} else if prevTrimmed != "" {
		restore = l.LastCursor
	}
	l.applyFilter()
	if trimmed != "" && len(l.Items) > 0 && !l.Matching.Sort {
		if idx := BestMatchIndex(l.Items, trimmed, l.Matching); idx >= 0 {
			l.Cursor = idx
		}
	}
	if trimmed == "" && prevTrimmed != "" {
		if restore >= 0 && restore < len(l.Items) {
			l.Cursor = restore
		} else {
			l.Cursor = 0
		}
		l.LastCursor = -1
	}
}

func (l *Level) applyFilter() {
	l.Items = FilterItems(l.Full, l.Filter, l.Matching)
	if len(l.Items) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Items) {
		l.Cursor = len(l.Items) - 1
	}
	if l.ViewportOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
	}
}

func rank(query string, labels []string, caseSensitive bool) fuzzy.Ranks {
	if caseSensitive {
		return fuzzy.RankFindNormalized(query, labels)
	}
	return fuzzy.RankFindNormalizedFold(query, labels)
}

func contains(label, query string, caseSensitive bool) bool {
	if caseSensitive {
		return strings.Contains(label, query)
	}
	return strings.Contains(strings.ToLower(label), strings.ToLower(query))
}

// FilterItems returns items matching query. Fuzzy matches are kept in input
// order unless m.Sort is set, in which case the closest matches come first.
// A plain substring match is the fallback when nothing matches fuzzily.
func FilterItems(items []Item, query string, m Matching) []Item {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return CloneItems(items)
	}
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	ranks := rank(trimmed, labels, m.CaseSensitive)
	if len(ranks) > 0 {
		if m.Sort {
			sort.Stable(ranks)
		} else {
			sort.SliceStable(ranks, func(i, j int) bool {
				return ranks[i].OriginalIndex < ranks[j].OriginalIndex
			})
		}
		filtered := make([]Item, 0, len(ranks))
		for _, r := range ranks {
			filtered = append(filtered, items[r.OriginalIndex])
		}
		return filtered
	}
	filtered := make([]Item, 0, len(items))
	for _, item := range items {
		if contains(item.Label, trimmed, m.CaseSensitive) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// BestMatchIndex returns the best index for the query among the provided
// items: an exact label, then a prefix, then a substring, then the closest
// fuzzy match.
func BestMatchIndex(items []Item, query string, m Matching) int {
	trimmed := strings.TrimSpace(query)
	if len(items) == 0 {
		return -1
	}
	if trimmed == "" {
		return 0
	}
	fold := func(s string) string {
		if m.CaseSensitive {
			return s
		}
		return strings.ToLower(s)
	}
	q := fold(trimmed)
	for i, item := range items {
		if fold(item.Label) == q {
			return i
		}
	}
	for i, item := range items {
		if strings.HasPrefix(fold(item.Label), q) {
			return i
		}
	}
	for i, item := range items {
		if strings.Contains(fold(item.Label), q) {
			return i
		}
	}
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	ranks := rank(trimmed, labels, m.CaseSensitive)
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, r := range ranks[1:] {
		if r.Distance < best.Distance ||
			(r.Distance == best.Distance && r.OriginalIndex < best.OriginalIndex) {
			best = r
		}
	}
	return best.OriginalIndex
}

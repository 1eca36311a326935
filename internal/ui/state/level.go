package state

// Matching controls how the filter is applied.
type Matching struct {
	CaseSensitive bool
	// Sort orders matches by fuzzy distance instead of input order.
	Sort bool
}

// Level holds the candidate list together with its filter, cursor and
// viewport.
type Level struct {
	Items          []Item
	Full           []Item
	Filter         string
	Cursor         int
	LastCursor     int
	ViewportOffset int
	Matching       Matching
}

// NewLevel constructs a Level over items.
func NewLevel(items []Item, matching Matching) *Level {
	l := &Level{
		LastCursor: -1,
		Matching:   matching,
	}
	l.UpdateItems(items)
	return l
}

// UpdateItems replaces the candidate list and reapplies the filter.
func (l *Level) UpdateItems(items []Item) {
	prevOffset := l.ViewportOffset
	l.Full = CloneItems(items)
	l.applyFilter()
	if len(l.Items) == 0 {
		l.ViewportOffset = 0
		return
	}
	if prevOffset < 0 || prevOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
		return
	}
	l.ViewportOffset = prevOffset
}

// Current returns the item under the cursor.
func (l *Level) Current() (Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return Item{}, false
	}
	return l.Items[l.Cursor], true
}

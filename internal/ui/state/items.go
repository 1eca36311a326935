package state

import "github.com/atomicstack/marcador/internal/rofi/pango"

// Item is one candidate line. Index is its position in the input, which is
// what the selector reports back.
type Item struct {
	Index int
	Label string
}

// NewItems wraps elements as items. With markup set, labels are the
// elements with pango markup removed.
func NewItems(elements []string, markup bool) []Item {
	items := make([]Item, len(elements))
	for i, element := range elements {
		label := element
		if markup {
			label = pango.Strip(element)
		}
		items[i] = Item{Index: i, Label: label}
	}
	return items
}

// CloneItems produces a shallow copy of the provided items.
func CloneItems(items []Item) []Item {
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}

// Package bookmark stores bookmarks and their tags.
package bookmark

import (
	"context"
	"errors"
	"strings"

	"github.com/atomicstack/marcador/internal/rofi/pango"
)

// ErrNotFound is returned when a bookmark id does not exist.
var ErrNotFound = errors.New("bookmark not found")

// Bookmark is one stored URL.
type Bookmark struct {
	ID          int64
	URL         string
	Description string
	Tags        []string
}

// Store is the bookmark source the menus and commands work against.
type Store interface {
	Bookmarks(ctx context.Context) ([]Bookmark, error)
	Add(ctx context.Context, url, description string, tags []string) (int64, error)
	Delete(ctx context.Context, id int64) error
}

var (
	urlSpan  = pango.New("").Weight(pango.WeightBold)
	descSpan = pango.New("").Alpha("60%").SlantStyle(pango.SlantItalic)
	tagSpan  = pango.New("").Size(pango.SizeSmall).Foreground("#5f87af")
)

// Label renders b as a markup row for -markup-rows menus.
func Label(b Bookmark) string {
	var sb strings.Builder
	sb.WriteString(urlSpan.BuildContent(pango.Escape(b.URL)))
	if b.Description != "" {
		sb.WriteString("  ")
		sb.WriteString(descSpan.BuildContent(pango.Escape(b.Description)))
	}
	if len(b.Tags) > 0 {
		sb.WriteString("  ")
		sb.WriteString(tagSpan.BuildContent(pango.Escape("#" + strings.Join(b.Tags, " #"))))
	}
	return sb.String()
}

// Labels renders every bookmark with Label, keeping order.
func Labels(bookmarks []Bookmark) []string {
	out := make([]string, len(bookmarks))
	for i, b := range bookmarks {
		out[i] = Label(b)
	}
	return out
}

// ParseTags splits a comma separated tag list, trimming blanks and dropping
// empty entries.
func ParseTags(raw string) []string {
	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

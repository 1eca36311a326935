package events

import "github.com/atomicstack/marcador/internal/logging"

type BookmarkTracer struct{}

var Bookmark = BookmarkTracer{}

func (BookmarkTracer) List(count int) {
	logging.Trace("bookmark.list", map[string]interface{}{"count": count})
}

func (BookmarkTracer) Add(id int64, url string, tags []string) {
	logging.Trace("bookmark.add", map[string]interface{}{"id": id, "url": url, "tags": tags})
}

func (BookmarkTracer) Delete(id int64) {
	logging.Trace("bookmark.delete", map[string]interface{}{"id": id})
}

func (BookmarkTracer) Open(id int64, url, browser string) {
	logging.Trace("bookmark.open", map[string]interface{}{"id": id, "url": url, "browser": browser})
}

func (BookmarkTracer) Copy(id int64, url string) {
	logging.Trace("bookmark.copy", map[string]interface{}{"id": id, "url": url})
}

package menu

import (
	"context"
	"errors"
	"strings"

	"github.com/atomicstack/marcador/internal/bookmark"
	"github.com/atomicstack/marcador/internal/logging"
	"github.com/atomicstack/marcador/internal/logging/events"
	"github.com/atomicstack/marcador/internal/rofi"
)

// errAborted ends the add flow when a prompt is cancelled.
var errAborted = errors.New("aborted")

func openAction(ctx context.Context, mc Context, bookmarks []bookmark.Bookmark, index int) error {
	b := bookmarks[index]
	events.Bookmark.Open(b.ID, b.URL, mc.Browser)
	return openURLFn(mc.Browser, b.URL)
}

func deleteAction(ctx context.Context, mc Context, bookmarks []bookmark.Bookmark, index int) error {
	b := bookmarks[index]
	if err := mc.Store.Delete(ctx, b.ID); err != nil {
		return err
	}
	events.Bookmark.Delete(b.ID)
	return nil
}

func copyAction(ctx context.Context, mc Context, bookmarks []bookmark.Bookmark, index int) error {
	b := bookmarks[index]
	if err := writeClipboardFn(b.URL); err != nil {
		return err
	}
	events.Bookmark.Copy(b.ID, b.URL)
	return nil
}

// addAction asks for URL, description and tags. The clipboard content is
// offered as the only URL candidate; anything typed instead is used as is.
func addAction(ctx context.Context, mc Context, _ []bookmark.Bookmark, _ int) error {
	var candidates []string
	clip, err := readClipboardFn()
	if err != nil {
		logging.Error(err)
	} else if clip = strings.TrimSpace(clip); clip != "" && !strings.Contains(clip, "\n") {
		candidates = []string{clip}
	}

	url, err := ask(mc, "URL", candidates, false)
	if err != nil {
		return quiet(err)
	}
	description, err := ask(mc, "Description", nil, true)
	if err != nil {
		return quiet(err)
	}
	rawTags, err := ask(mc, "Tags", nil, true)
	if err != nil {
		return quiet(err)
	}
	tags := bookmark.ParseTags(rawTags)
	id, err := mc.Store.Add(ctx, url, description, tags)
	if err != nil {
		return err
	}
	events.Bookmark.Add(id, url, tags)
	return nil
}

// ask runs a free text prompt. A blank answer is accepted only when
// allowBlank is set; otherwise it aborts like a cancel.
func ask(mc Context, prompt string, candidates []string, allowBlank bool) (string, error) {
	m := mc.newMenu(candidates).Prompt(prompt)
	events.Menu.Open(prompt, len(candidates), m.Args())
	code, text, err := m.Run()
	if errors.Is(err, rofi.ErrBlank) && allowBlank {
		events.Menu.Result(prompt, code, "")
		return "", nil
	}
	if err != nil {
		if skipped(prompt, err) {
			return "", errAborted
		}
		return "", err
	}
	events.Menu.Result(prompt, code, text)
	return strings.TrimSpace(text), nil
}

func quiet(err error) error {
	if errors.Is(err, errAborted) {
		return nil
	}
	return err
}

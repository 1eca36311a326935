package menu

import (
	"os/exec"

	"github.com/atotto/clipboard"
)

var (
	readClipboardFn  = clipboard.ReadAll
	writeClipboardFn = clipboard.WriteAll
)

// DefaultBrowser opens URLs with the desktop's preferred handler.
const DefaultBrowser = "xdg-open"

var openURLFn = openURL

// openURL starts browser on url without waiting for it.
func openURL(browser, url string) error {
	if browser == "" {
		browser = DefaultBrowser
	}
	cmd := exec.Command(browser, url)
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}

package launcher

import (
	"fmt"
	"io"

	"github.com/pkg/browser"
)

func init() {
	// Keep the helper process chatter out of the console banner.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}

// Browser opens URLs in the default web browser of the desktop session.
type Browser struct{}

func NewBrowser() Browser {
	return Browser{}
}

func (Browser) Open(url string) error {
	if err := browser.OpenURL(url); err != nil {
		return fmt.Errorf("open %q in browser: %v", url, err)
	}
	return nil
}

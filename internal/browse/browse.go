// Package browse opens a directory in the platform file browser.
package browse

import (
	"fmt"
	"os"

	"github.com/pkg/browser"
)

// Opener opens a directory for the user.
type Opener interface {
	Open(dir string) error
}

// FileBrowser opens directories with the platform default handler
// (explorer on Windows, open on macOS, xdg-open elsewhere).
type FileBrowser struct{}

var _ Opener = FileBrowser{}

// Open checks that dir is a directory and hands it to the file browser.
func (FileBrowser) Open(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("browse.Open: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("browse.Open: %s is not a directory", dir)
	}
	if err := browser.OpenFile(dir); err != nil {
		return fmt.Errorf("browse.Open: %w", err)
	}
	return nil
}

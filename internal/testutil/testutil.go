// Package testutil provides common test helpers for the gocd project.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TempShortcutsFile creates a temporary shortcuts.toml with the given content
// and returns its path. The file is automatically cleaned up.
func TempShortcutsFile(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "shortcuts.toml")

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("TempShortcutsFile: write failed: %v", err)
	}

	return path
}

// TempWorkDir creates a nested temporary directory (<tmp>/a/b/c) so that the
// parent and grandparent defaults resolve to distinct directories.
func TempWorkDir(t *testing.T) string {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	if err := os.MkdirAll(dir, 0700); err != nil {
		t.Fatalf("TempWorkDir: mkdir failed: %v", err)
	}

	return dir
}

// ReadFile reads the file at path and returns its content as a string.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: read failed: %v", err)
	}

	return string(data)
}

// SetupTestShortcuts creates a shortcuts.toml with a few user shortcuts
// pre-configured. Returns the file path.
func SetupTestShortcuts(t *testing.T) string {
	t.Helper()

	content := `version = "1.0"

[[shortcut]]
name = "ko"
path = "/x/y"

[[shortcut]]
name = "src"
path = "/home/user/src"

[[shortcut]]
name = "docs"
path = "/srv/docs"
`
	return TempShortcutsFile(t, content)
}

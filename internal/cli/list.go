package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/hbjs97/gocd/internal/store"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#0891b2", Dark: "#22d3ee"})
	groupStyle = lipgloss.NewStyle().Bold(true)
)

// runList는 shortcut 표를 출력한다. 인자가 있으면 이름에 포함된 것만 보인다.
func (a *App) runList(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return usageErrorf("incorrect number of arguments: expected 0 or 1, got %d", len(args))
	}
	var filter string
	if len(args) == 1 {
		filter = args[0]
	}

	set, err := a.store().Load()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	writeListing(out, set.List(filter), filter, isTerminal(out))
	return nil
}

func writeListing(w io.Writer, l store.Listing, filter string, styled bool) {
	header := "Go Shortcuts"
	if filter != "" {
		header += fmt.Sprintf(": Matching '%s'", strings.ToLower(filter))
	}
	pad := strings.Repeat(" ", 20)
	rule := strings.Repeat("=", len(header))
	title, group := header, groupTitle
	if styled {
		title = headerStyle.Render(header)
		group = func(s string) string { return groupStyle.Render(s) }
	}

	fmt.Fprintf(w, "%s%s\n%s%s\n", pad, title, pad, rule)
	for _, g := range []struct {
		name    string
		entries []store.Entry
	}{
		{"Default shortcuts", l.Defaults},
		{"Custom shortcuts", l.Custom},
	} {
		if len(g.entries) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s\n", group(g.name+":"))
		for _, e := range g.entries {
			fmt.Fprintf(w, "  %-20s  %s\n", e.Name, e.Path)
		}
	}
}

func groupTitle(s string) string { return s }

// isTerminal은 w가 색을 표시할 수 있는 터미널인지 판단한다.
func isTerminal(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

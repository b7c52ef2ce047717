package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	pillStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#16161d")).
			Background(lipgloss.Color("#436b77")).
			Padding(0, 1)

	pillEmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9ba0bf"))
)

// Pills renders tag names as chips on a single line. Empty input renders a
// muted placeholder so the row stays clickable.
func Pills(names []string) string {
	if len(names) == 0 {
		return pillEmptyStyle.Render("no tags")
	}
	chips := make([]string, 0, len(names))
	for _, name := range names {
		chips = append(chips, pillStyle.Render(SanitizeOneLine(name)))
	}
	return strings.Join(chips, " ")
}

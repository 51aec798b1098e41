package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/orenagassy/google-autocomplete-scraper/pkg/display"
)

var (
	headerStyle     = lipgloss.NewStyle().Bold(true)
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	countStyle      = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// errorLine renders a recovered-error message as a single prefixed line.
func errorLine(msg string) string {
	return errorStyle.Render("[!]") + " " + msg
}

// renderSuggestions prints the header, the 1-indexed suggestion list and
// the trailing count. Suggestion strings go through the direction
// processor individually when the bound language is RTL.
func (s *Session) renderSuggestions(keyword string, suggestions []string) {
	shown := display.Visual(keyword, s.lang.RTL)
	fmt.Fprintf(s.out, "\nAutocomplete suggestions for '%s':\n", headerStyle.Render(shown))
	fmt.Fprintln(s.out, strings.Repeat("=", len([]rune(shown))+35))

	if len(suggestions) == 0 {
		fmt.Fprintln(s.out, "No suggestions found.")
		return
	}

	shownCount := len(suggestions)
	if s.maxDisplay > 0 && shownCount > s.maxDisplay {
		shownCount = s.maxDisplay
	}
	for i := 0; i < shownCount; i++ {
		fmt.Fprintf(s.out, "%2d. %s\n", i+1, suggestionStyle.Render(display.Visual(suggestions[i], s.lang.RTL)))
	}
	if shownCount < len(suggestions) {
		fmt.Fprintln(s.out, countStyle.Render(fmt.Sprintf("... and %d more", len(suggestions)-shownCount)))
	}
	fmt.Fprintln(s.out, countStyle.Render(fmt.Sprintf("\nFound %d suggestion(s)", len(suggestions))))
}

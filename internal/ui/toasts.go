package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderToasts renders live notifications stacked at the top, newest
// last, matching queue insertion order. Returns "" when there are none.
func (m Model) renderToasts() string {
	live := m.toasts.Toasts()
	if len(live) == 0 {
		return ""
	}

	styles := m.theme.Styles()
	lines := make([]string, 0, len(live))
	for _, t := range live {
		accent := lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.theme.ToastColor(t.Type))).
			Bold(true)

		text := accent.Render("▌ "+t.Title)
		if t.Message != "" {
			text += " " + styles.MutedText.Render(truncate(t.Message, 48))
		}
		lines = append(lines, lipgloss.PlaceHorizontal(m.width, lipgloss.Center, text))
	}
	return strings.Join(lines, "\n")
}

package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	sections := []helpSection{
		{
			title: "Browsing",
			items: []helpItem{
				{"/", "Search products"},
				{"f", "Cycle category"},
				{"s", "Cycle sort order"},
				{"v", "Grid/list view"},
				{"j/k h/l", "Move selection"},
				{"g/G", "Go to top/bottom"},
				{"enter", "Product details"},
			},
		},
		{
			title: "Cart & wishlist",
			items: []helpItem{
				{"a", "Add to cart"},
				{"o", "Open/close cart"},
				{"+/-", "Change quantity"},
				{"x", "Remove line"},
				{"X", "Clear cart"},
				{"w", "Toggle wishlist"},
				{"W", "Wishlist view"},
			},
		},
		{
			title: "General",
			items: []helpItem{
				{"d", "Dismiss toast"},
				{"r", "Retry failed panel"},
				{"T", "Cycle theme"},
				{"?", "Toggle help"},
				{"q/ctrl+c", "Quit"},
			},
		},
	}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	for i, section := range sections {
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")

		for _, item := range section.items {
			keyStyle := lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.theme.Warning)).
				Width(12)
			b.WriteString(keyStyle.Render(item.key))
			b.WriteString(styles.Text.Render(item.desc))
			b.WriteString("\n")
		}

		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(40)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

type helpSection struct {
	title string
	items []helpItem
}

type helpItem struct {
	key  string
	desc string
}

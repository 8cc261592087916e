package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const sidebarWidth = 44

// renderWithCartSidebar renders the browse content with the cart
// sidebar docked on the right.
func (m Model) renderWithCartSidebar() string {
	sidebar := m.renderCartSidebar()

	// Shrink the product area to make room.
	narrowed := m
	narrowed.width = max(20, m.width-sidebarWidth-1)
	content := narrowed.renderProducts()

	return lipgloss.JoinHorizontal(lipgloss.Top, content, " ", sidebar)
}

// renderCartSidebar renders the cart lines, quantities, and total.
func (m Model) renderCartSidebar() string {
	styles := m.theme.Styles()
	state := m.store.State()

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("Your Cart"))
	b.WriteString("\n\n")

	if len(state.Cart) == 0 {
		b.WriteString(styles.MutedText.Render("cart is empty"))
		b.WriteString("\n\n")
		b.WriteString(styles.FaintText.Render("a adds the selected product"))
	} else {
		selected := clamp(m.cartSelected, 0, len(state.Cart)-1)
		for i, line := range state.Cart {
			row := fmt.Sprintf("%-24s x%-3d %9s",
				truncate(line.Name, 24),
				line.Quantity,
				formatPrice(line.Price*float64(line.Quantity)))
			if i == selected {
				b.WriteString(styles.Selected.Render(row))
			} else {
				b.WriteString(styles.Text.Render(row))
			}
			b.WriteString("\n")
		}

		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render(strings.Repeat("─", sidebarWidth-6)))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s %s",
			styles.MutedText.Render("total"),
			styles.SuccessText.Render(formatPrice(m.store.CartTotal()))))
		b.WriteString("\n\n")
		b.WriteString(styles.FaintText.Render("+/- quantity  x remove  X clear"))
	}

	return styles.Panel.
		BorderForeground(lipgloss.Color(m.theme.BorderFocus)).
		Width(sidebarWidth).
		Height(m.contentHeight() - 2).
		Render(b.String())
}

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderWishlist renders the saved-products view inside a viewport so
// long lists scroll with the selection.
func (m Model) renderWishlist() string {
	styles := m.theme.Styles()
	wishlist := m.store.State().Wishlist

	title := styles.AccentText.Bold(true).Render(
		fmt.Sprintf("Wishlist (%d)", len(wishlist)))

	if len(wishlist) == 0 {
		body := strings.Join([]string{
			title,
			"",
			styles.MutedText.Render("nothing saved yet"),
			styles.FaintText.Render("press w on a product to save it"),
		}, "\n")
		return lipgloss.Place(m.width, m.contentHeight(),
			lipgloss.Center, lipgloss.Center, body)
	}

	selected := clamp(m.wishSelected, 0, len(wishlist)-1)
	var rows []string
	for i, p := range wishlist {
		row := fmt.Sprintf("%-40s %9s  %s",
			truncate(p.Name, 40),
			formatPrice(p.Price),
			ratingStars(p.Rating))
		if i == selected {
			rows = append(rows, styles.Selected.Width(m.width-2).Render(row))
		} else {
			rows = append(rows, styles.Text.Render(row))
		}
	}

	vp := m.wishViewport
	vp.Width = m.width
	vp.Height = max(1, m.contentHeight()-2)
	vp.SetContent(strings.Join(rows, "\n"))
	// Keep the selection in view.
	if selected >= vp.Height {
		vp.SetYOffset(selected - vp.Height + 1)
	} else {
		vp.SetYOffset(0)
	}

	return title + "\n" +
		styles.FaintText.Render("a add to cart  x remove  esc back") + "\n" +
		vp.View()
}

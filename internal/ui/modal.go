package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderProductModal renders the detail overlay for the selected
// product, centered over the content area.
func (m Model) renderProductModal() string {
	styles := m.theme.Styles()
	p := m.store.State().SelectedProduct
	if p == nil {
		// Open modal without a selection would be a reducer bug.
		panic("ui: product modal open with no selected product")
	}

	inWishlist := m.store.InWishlist(p.ID)
	wishLabel := "w add to wishlist"
	if inWishlist {
		wishLabel = "w remove from wishlist"
	}

	rows := []string{
		styles.AccentText.Bold(true).Render(p.Name),
		"",
		fmt.Sprintf("%s %s", styles.MutedText.Render("price   "), styles.SuccessText.Render(formatPrice(p.Price))),
		fmt.Sprintf("%s %s", styles.MutedText.Render("rating  "), styles.Text.Render(fmt.Sprintf("%s %.2f", ratingStars(p.Rating), p.Rating))),
		fmt.Sprintf("%s %s", styles.MutedText.Render("category"), styles.Text.Render(p.Category)),
		fmt.Sprintf("%s %s", styles.MutedText.Render("stock   "), stockLabel(styles, p.Stock)),
		fmt.Sprintf("%s %s", styles.MutedText.Render("image   "), styles.FaintText.Render(truncate(p.Image, 48))),
		"",
		styles.FaintText.Render("a add to cart  " + wishLabel + "  esc close"),
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.BorderFocus)).
		Padding(1, 2).
		Width(64).
		Render(strings.Join(rows, "\n"))

	return lipgloss.Place(m.width, m.contentHeight(),
		lipgloss.Center, lipgloss.Center, modal)
}

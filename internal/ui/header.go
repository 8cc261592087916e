package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the top bar: logo, search input, cart and
// wishlist badges.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	logo := styles.Logo.Render("shopfront")

	search := m.searchInput.View()
	if !m.searching && m.searchInput.Value() == "" {
		search = styles.FaintText.Render("/ to search")
	}

	cartBadge := fmt.Sprintf("cart %d", m.store.CartItemCount())
	if m.store.CartItemCount() > 0 {
		cartBadge = styles.AccentText.Render(cartBadge)
	} else {
		cartBadge = styles.MutedText.Render(cartBadge)
	}

	wishBadge := fmt.Sprintf("wishlist %d", m.store.WishlistCount())
	if m.store.WishlistCount() > 0 {
		wishBadge = styles.AccentText.Render(wishBadge)
	} else {
		wishBadge = styles.MutedText.Render(wishBadge)
	}

	total := styles.SuccessText.Render(formatPrice(m.store.CartTotal()))

	left := logo + "  " + search
	right := strings.Join([]string{cartBadge, wishBadge, total}, "  ")

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}

	return styles.Header.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

package ui

import "strings"

// renderFooter renders the context-sensitive key hint bar.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	state := m.store.State()

	var hints []string
	switch {
	case m.searching:
		hints = []string{"enter commit", "esc cancel"}
	case state.IsProductModalOpen:
		hints = []string{"a add", "w wishlist", "esc close"}
	case state.IsCartOpen:
		hints = []string{"j/k select", "+/- qty", "x remove", "X clear", "esc close"}
	case m.currentView == ViewWishlist:
		hints = []string{"j/k select", "a add to cart", "x remove", "esc back"}
	default:
		hints = []string{"/ search", "f category", "s sort", "v view", "a cart", "w wish", "o cart", "? help"}
	}

	return styles.Footer.Width(m.width).Render(
		truncate(strings.Join(hints, "  •  "), m.width-2))
}

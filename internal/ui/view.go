package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder

	if toasts := m.renderRegion("toasts", m.renderToasts); toasts != "" {
		b.WriteString(toasts)
		b.WriteString("\n")
	}

	b.WriteString(m.renderRegion("header", m.renderHeader))
	b.WriteString("\n")
	b.WriteString(m.renderRegion("filters", m.renderFilterBar))
	b.WriteString("\n")

	state := m.store.State()
	switch {
	case state.IsProductModalOpen:
		b.WriteString(m.renderRegion("modal", m.renderProductModal))
	case state.IsCartOpen:
		b.WriteString(m.renderRegion("cart", m.renderWithCartSidebar))
	case m.currentView == ViewWishlist:
		b.WriteString(m.renderRegion("wishlist", m.renderWishlist))
	default:
		b.WriteString(m.renderRegion("products", m.renderProducts))
	}
	b.WriteString("\n")

	b.WriteString(m.renderRegion("footer", m.renderFooter))

	return b.String()
}

// renderRegion runs a region's render function behind a panic boundary.
// A region that panics shows a fallback panel with a retry hint instead
// of taking the whole UI down; unrelated regions keep rendering. The
// failure is remembered (the failed map is shared across model copies)
// until the user retries.
func (m Model) renderRegion(name string, render func() string) (out string) {
	if msg, ok := m.failed[name]; ok {
		return m.renderRegionFallback(name, msg)
	}
	defer func() {
		if r := recover(); r != nil {
			m.failed[name] = fmt.Sprintf("%v", r)
			out = m.renderRegionFallback(name, m.failed[name])
		}
	}()
	return render()
}

// renderRegionFallback renders the error panel for a failed region.
func (m Model) renderRegionFallback(name, msg string) string {
	styles := m.theme.Styles()
	body := fmt.Sprintf("%s\n%s\n\n%s",
		styles.DangerText.Render("Something went wrong in "+name),
		styles.MutedText.Render(truncate(msg, 60)),
		styles.FaintText.Render("press r to retry"))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Danger)).
		Padding(0, 2).
		Render(body)
}

// contentHeight returns the rows available to the main content region.
func (m Model) contentHeight() int {
	// toasts are transient; reserve header, filter bar, and footer.
	reserved := 3
	if len(m.toasts.Toasts()) > 0 {
		reserved += len(m.toasts.Toasts())
	}
	return max(1, m.height-reserved)
}

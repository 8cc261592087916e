package ui

import (
	"strings"

	"github.com/kvisser/shopfront/internal/shop"
)

// renderFilterBar renders the category, sort, and view mode strip.
func (m Model) renderFilterBar() string {
	styles := m.theme.Styles()
	state := m.store.State()

	var parts []string

	// Categories, with the active one highlighted. No selection means
	// the welcome state.
	for _, c := range m.store.Categories() {
		label := c
		if c == state.CategoryFilter {
			parts = append(parts, styles.Selected.Render(" "+label+" "))
		} else {
			parts = append(parts, styles.MutedText.Render(label))
		}
	}
	if state.CategoryFilter == "" {
		parts = append([]string{styles.FaintText.Render("f: pick a category")}, parts...)
	}

	parts = append(parts, styles.FaintText.Render("|"))
	parts = append(parts, styles.Text.Render("sort: "+sortLabel(state.SortBy)))
	parts = append(parts, styles.Text.Render("view: "+string(state.ViewMode)))

	return truncate(strings.Join(parts, "  "), m.width)
}

func sortLabel(k shop.SortKey) string {
	switch k {
	case shop.SortName:
		return "name ↑"
	case shop.SortNameDesc:
		return "name ↓"
	case shop.SortPriceLow:
		return "price ↑"
	case shop.SortPriceHigh:
		return "price ↓"
	case shop.SortRatingDesc:
		return "rating ↓"
	case shop.SortRatingAsc:
		return "rating ↑"
	default:
		return string(k)
	}
}

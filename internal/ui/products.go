package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kvisser/shopfront/internal/catalog"
	"github.com/kvisser/shopfront/internal/shop"
)

const (
	cardWidth  = 28
	cardGutter = 2
)

// gridColumns returns how many product cards fit per row.
func (m Model) gridColumns() int {
	cols := m.width / (cardWidth + cardGutter)
	if cols < 1 {
		cols = 1
	}
	return cols
}

// renderProducts renders the filtered catalog as a grid or list.
func (m Model) renderProducts() string {
	state := m.store.State()
	products := m.store.FilteredProducts()

	if len(products) == 0 {
		if state.CategoryFilter == "" && strings.TrimSpace(state.SearchTerm) == "" {
			return m.renderWelcome()
		}
		return m.renderNoMatches()
	}

	selected := clamp(m.selected, 0, len(products)-1)
	if state.ViewMode == shop.ViewList {
		return m.renderProductList(products, selected)
	}
	return m.renderProductGrid(products, selected)
}

// renderWelcome is shown before any category or search is chosen.
func (m Model) renderWelcome() string {
	styles := m.theme.Styles()
	body := strings.Join([]string{
		styles.AccentText.Bold(true).Render("Welcome to shopfront"),
		"",
		styles.Text.Render(fmt.Sprintf("%d products across %d categories",
			len(m.store.State().Products), len(m.store.Categories())-1)),
		"",
		styles.MutedText.Render("press f to pick a category, or / to search"),
	}, "\n")

	return lipgloss.Place(m.width, m.contentHeight(),
		lipgloss.Center, lipgloss.Center, body)
}

// renderNoMatches is shown when a filter is active but nothing matched.
func (m Model) renderNoMatches() string {
	styles := m.theme.Styles()
	body := strings.Join([]string{
		styles.WarningText.Render("No products found"),
		styles.MutedText.Render("adjust the search or category filter"),
	}, "\n")

	return lipgloss.Place(m.width, m.contentHeight(),
		lipgloss.Center, lipgloss.Center, body)
}

func (m Model) renderProductGrid(products []catalog.Product, selected int) string {
	cols := m.gridColumns()

	var rows []string
	for start := 0; start < len(products); start += cols {
		end := min(start+cols, len(products))
		cards := make([]string, 0, cols)
		for i := start; i < end; i++ {
			cards = append(cards, m.renderCard(products[i], i == selected))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	return m.clipToContent(strings.Join(rows, "\n"), selectedRowOffset(selected, cols))
}

func (m Model) renderCard(p catalog.Product, selected bool) string {
	styles := m.theme.Styles()

	name := truncate(p.Name, cardWidth-2)
	line2 := fmt.Sprintf("%s  %s", formatPrice(p.Price), ratingStars(p.Rating))
	line3 := styles.MutedText.Render(truncate(p.Category, cardWidth-12)) + " " +
		stockLabel(styles, p.Stock)

	body := styles.Text.Bold(selected).Render(name) + "\n" +
		styles.Text.Render(line2) + "\n" + line3

	card := styles.Card
	if selected {
		card = styles.CardSelected
	}
	return card.Width(cardWidth).Render(body)
}

func (m Model) renderProductList(products []catalog.Product, selected int) string {
	styles := m.theme.Styles()

	var b strings.Builder
	for i, p := range products {
		row := fmt.Sprintf("%-40s %9s  %s  %s",
			truncate(p.Name, 40),
			formatPrice(p.Price),
			ratingStars(p.Rating),
			truncate(p.Category, 20))
		if i == selected {
			b.WriteString(styles.Selected.Width(m.width).Render(row))
		} else {
			b.WriteString(styles.Text.Render(row))
		}
		if i < len(products)-1 {
			b.WriteString("\n")
		}
	}

	return m.clipToContent(b.String(), selected)
}

// clipToContent trims rendered rows to the content height, keeping the
// row containing the selection visible.
func (m Model) clipToContent(content string, selectedRow int) string {
	lines := strings.Split(content, "\n")
	height := m.contentHeight()
	if len(lines) <= height {
		return content
	}

	start := 0
	if selectedRow >= height {
		start = selectedRow - height + 1
	}
	if start+height > len(lines) {
		start = len(lines) - height
	}
	return strings.Join(lines[start:start+height], "\n")
}

// selectedRowOffset maps a grid selection index to its rendered line,
// given that each card is five lines tall (three body + two border).
func selectedRowOffset(selected, cols int) int {
	const cardHeight = 5
	return (selected / cols) * cardHeight
}

func stockLabel(styles Styles, stock int) string {
	switch {
	case stock == 0:
		return styles.DangerText.Render("out of stock")
	case stock < 10:
		return styles.WarningText.Render(fmt.Sprintf("only %d left", stock))
	default:
		return styles.FaintText.Render(fmt.Sprintf("%d in stock", stock))
	}
}

package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Escape     key.Binding
	Retry      key.Binding

	// Browsing
	Search         key.Binding
	CycleCategory  key.Binding
	CycleSort      key.Binding
	ToggleViewMode key.Binding
	Open           key.Binding

	// Navigation
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Top    key.Binding
	Bottom key.Binding

	// Cart / wishlist
	AddToCart      key.Binding
	ToggleWishlist key.Binding
	ShowWishlist   key.Binding
	ToggleCart     key.Binding
	Increment      key.Binding
	Decrement      key.Binding
	Remove         key.Binding
	ClearCart      key.Binding

	// Toasts
	DismissToast key.Binding
}

// defaultKeyMap returns the default key bindings.
func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close / back"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Retry failed panel"),
		),

		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search products"),
		),
		CycleCategory: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Cycle category"),
		),
		CycleSort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Cycle sort"),
		),
		ToggleViewMode: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "Grid/list view"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Product details"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("j/k", "Move"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/l", "Move across"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g/G", "Top/bottom"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
		),

		AddToCart: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Add to cart"),
		),
		ToggleWishlist: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "Toggle wishlist"),
		),
		ShowWishlist: key.NewBinding(
			key.WithKeys("W"),
			key.WithHelp("W", "Wishlist view"),
		),
		ToggleCart: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "Open/close cart"),
		),
		Increment: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+/-", "Change quantity"),
		),
		Decrement: key.NewBinding(
			key.WithKeys("-"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Remove line"),
		),
		ClearCart: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "Clear cart"),
		),

		DismissToast: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "Dismiss toast"),
		),
	}
}

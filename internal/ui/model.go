package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kvisser/shopfront/internal/catalog"
	"github.com/kvisser/shopfront/internal/prefs"
	"github.com/kvisser/shopfront/internal/shop"
	"github.com/kvisser/shopfront/internal/toast"
)

// View represents the current main view.
type View int

const (
	ViewBrowse View = iota
	ViewWishlist
)

// Options configures the UI.
type Options struct {
	Context        context.Context
	Store          *shop.Store
	Toasts         *toast.Queue
	ThemeName      string
	PrefsPath      string
	SearchDebounce time.Duration
}

// Model is the root application state for Bubble Tea. Shop state lives
// in the store; the model holds only presentation concerns (focus,
// selection, draft input, overlays).
type Model struct {
	ctx       context.Context
	store     *shop.Store
	toasts    *toast.Queue
	keys      keyMap
	theme     Theme
	prefsPath string

	width  int
	height int
	ready  bool

	currentView  View
	selected     int // index into the filtered product list
	wishSelected int // index into the wishlist
	cartSelected int // index into the cart lines

	// Search draft state. Keystrokes edit the input locally; the term is
	// committed to the store only after a quiet period. Every keystroke
	// bumps searchSeq so an in-flight commit for an older draft is
	// recognized as stale and dropped.
	searchInput textinput.Model
	searching   bool
	searchSeq   int
	debounce    time.Duration

	wishViewport viewport.Model

	showHelp bool

	// failed maps a render region to its captured panic message. A
	// failed region renders a fallback panel until the user retries.
	failed map[string]string
}

// New creates the root model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	debounce := opts.SearchDebounce
	if debounce <= 0 {
		debounce = 300 * time.Millisecond
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Dracula"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	input := textinput.New()
	input.Placeholder = "search products"
	input.CharLimit = 64
	input.Width = 28

	return Model{
		ctx:         ctx,
		store:       opts.Store,
		toasts:      opts.Toasts,
		keys:        defaultKeyMap(),
		theme:       GetTheme(themeName),
		prefsPath:   prefsPath,
		currentView: ViewBrowse,
		searchInput: input,
		debounce:    debounce,
		failed:      make(map[string]string),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.wishViewport = viewport.New(msg.Width, max(1, msg.Height-4))
		} else {
			m.wishViewport.Width = msg.Width
			m.wishViewport.Height = max(1, msg.Height-4)
		}
		m.ready = true
		return m, nil

	case searchCommitMsg:
		if msg.seq != m.searchSeq {
			// A newer keystroke superseded this commit.
			return m, nil
		}
		m.store.Dispatch(shop.SetSearchTerm{Term: m.searchInput.Value()})
		m.selected = 0
		return m, nil

	case toastsChangedMsg:
		// Repaint only; the queue is read during View.
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Help overlay swallows everything.
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	// While the search input is focused, only a few keys escape it.
	if m.searching {
		return m.handleSearchKey(msg)
	}

	state := m.store.State()

	// Modal and sidebar get keys before the main views.
	if state.IsProductModalOpen {
		return m.handleModalKey(msg, state)
	}
	if state.IsCartOpen {
		return m.handleCartKey(msg, state)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Retry):
		clear(m.failed)
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.ToggleCart):
		m.cartSelected = 0
		m.store.Dispatch(shop.ToggleCartSidebar{})
		return m, nil

	case key.Matches(msg, m.keys.ShowWishlist):
		if m.currentView == ViewWishlist {
			m.currentView = ViewBrowse
		} else {
			m.currentView = ViewWishlist
			m.wishSelected = 0
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleViewMode):
		mode := shop.ViewGrid
		if state.ViewMode == shop.ViewGrid {
			mode = shop.ViewList
		}
		m.store.Dispatch(shop.SetViewMode{Mode: mode})
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.CycleCategory):
		m.store.Dispatch(shop.SetCategoryFilter{Category: m.nextCategory(state.CategoryFilter)})
		m.selected = 0
		return m, nil

	case key.Matches(msg, m.keys.CycleSort):
		m.store.Dispatch(shop.SetSortBy{Key: nextSortKey(state.SortBy)})
		return m, nil

	case key.Matches(msg, m.keys.DismissToast):
		if live := m.toasts.Toasts(); len(live) > 0 {
			m.toasts.Dismiss(live[0].ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		if m.currentView == ViewWishlist {
			m.currentView = ViewBrowse
			return m, nil
		}
		// Esc in browse clears the search draft and committed term.
		if m.searchInput.Value() != "" || state.SearchTerm != "" {
			m.searchInput.SetValue("")
			m.searchSeq++
			m.store.Dispatch(shop.SetSearchTerm{Term: ""})
			m.selected = 0
		}
		return m, nil
	}

	switch m.currentView {
	case ViewBrowse:
		return m.handleBrowseKey(msg)
	case ViewWishlist:
		return m.handleWishlistKey(msg)
	}

	return m, nil
}

// handleSearchKey processes input while the search field is focused.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.searching = false
		m.searchInput.Blur()
		return m, nil

	case "enter":
		// Commit immediately and invalidate any pending debounce.
		m.searching = false
		m.searchInput.Blur()
		m.searchSeq++
		m.store.Dispatch(shop.SetSearchTerm{Term: m.searchInput.Value()})
		m.selected = 0
		return m, nil
	}

	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if m.searchInput.Value() == before {
		return m, cmd
	}

	// Keystroke: restart the debounce window.
	m.searchSeq++
	return m, tea.Batch(cmd, m.debounceCmd(m.searchSeq))
}

// handleBrowseKey processes keys for the product browse view.
func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	products := m.store.FilteredProducts()
	if len(products) == 0 {
		return m, nil
	}
	m.selected = clamp(m.selected, 0, len(products)-1)

	step := 1
	if m.store.State().ViewMode == shop.ViewGrid {
		step = m.gridColumns()
	}

	switch {
	case key.Matches(msg, m.keys.Down):
		m.selected = clamp(m.selected+step, 0, len(products)-1)
	case key.Matches(msg, m.keys.Up):
		m.selected = clamp(m.selected-step, 0, len(products)-1)
	case key.Matches(msg, m.keys.Left):
		m.selected = clamp(m.selected-1, 0, len(products)-1)
	case key.Matches(msg, m.keys.Right):
		m.selected = clamp(m.selected+1, 0, len(products)-1)
	case key.Matches(msg, m.keys.Top):
		m.selected = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selected = len(products) - 1

	case key.Matches(msg, m.keys.Open):
		m.store.Dispatch(shop.OpenProductModal{Product: products[m.selected]})

	case key.Matches(msg, m.keys.AddToCart):
		p := products[m.selected]
		m.store.Dispatch(shop.AddToCart{Product: p})
		m.toasts.CartNote("Added to cart", p.Name)

	case key.Matches(msg, m.keys.ToggleWishlist):
		m.toggleWishlist(products[m.selected])
	}

	return m, nil
}

// handleWishlistKey processes keys for the wishlist view.
func (m Model) handleWishlistKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	wishlist := m.store.State().Wishlist
	if len(wishlist) == 0 {
		return m, nil
	}
	m.wishSelected = clamp(m.wishSelected, 0, len(wishlist)-1)

	switch {
	case key.Matches(msg, m.keys.Down):
		m.wishSelected = clamp(m.wishSelected+1, 0, len(wishlist)-1)
	case key.Matches(msg, m.keys.Up):
		m.wishSelected = clamp(m.wishSelected-1, 0, len(wishlist)-1)
	case key.Matches(msg, m.keys.Top):
		m.wishSelected = 0
	case key.Matches(msg, m.keys.Bottom):
		m.wishSelected = len(wishlist) - 1

	case key.Matches(msg, m.keys.AddToCart):
		p := wishlist[m.wishSelected]
		m.store.Dispatch(shop.AddToCart{Product: p})
		m.toasts.CartNote("Added to cart", p.Name)

	case key.Matches(msg, m.keys.Remove), key.Matches(msg, m.keys.ToggleWishlist):
		p := wishlist[m.wishSelected]
		m.store.Dispatch(shop.RemoveFromWishlist{ID: p.ID})
		m.toasts.WishlistRemoved("Removed from wishlist", p.Name)
		m.wishSelected = clamp(m.wishSelected, 0, max(0, len(wishlist)-2))
	}

	return m, nil
}

// handleModalKey processes keys while the product modal is open.
func (m Model) handleModalKey(msg tea.KeyMsg, state shop.State) (tea.Model, tea.Cmd) {
	p := state.SelectedProduct
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit

	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Open):
		m.store.Dispatch(shop.CloseProductModal{})

	case key.Matches(msg, m.keys.AddToCart):
		if p != nil {
			m.store.Dispatch(shop.AddToCart{Product: *p})
			m.toasts.CartNote("Added to cart", p.Name)
		}

	case key.Matches(msg, m.keys.ToggleWishlist):
		if p != nil {
			m.toggleWishlist(*p)
		}
	}
	return m, nil
}

// handleCartKey processes keys while the cart sidebar is open.
func (m Model) handleCartKey(msg tea.KeyMsg, state shop.State) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit

	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.ToggleCart):
		m.store.Dispatch(shop.ToggleCartSidebar{})
		return m, nil

	case key.Matches(msg, m.keys.ClearCart):
		if len(state.Cart) > 0 {
			m.store.Dispatch(shop.ClearCart{})
			m.toasts.Info("Cart cleared", "")
		}
		return m, nil
	}

	if len(state.Cart) == 0 {
		return m, nil
	}
	m.cartSelected = clamp(m.cartSelected, 0, len(state.Cart)-1)
	line := state.Cart[m.cartSelected]

	switch {
	case key.Matches(msg, m.keys.Down):
		m.cartSelected = clamp(m.cartSelected+1, 0, len(state.Cart)-1)
	case key.Matches(msg, m.keys.Up):
		m.cartSelected = clamp(m.cartSelected-1, 0, len(state.Cart)-1)

	case key.Matches(msg, m.keys.Increment):
		m.store.Dispatch(shop.UpdateQuantity{ID: line.ID, Quantity: line.Quantity + 1})

	case key.Matches(msg, m.keys.Decrement):
		// Quantity 1 minus one removes the line, same as the reducer rule.
		m.store.Dispatch(shop.UpdateQuantity{ID: line.ID, Quantity: line.Quantity - 1})
		m.cartSelected = clamp(m.cartSelected, 0, max(0, len(state.Cart)-2))

	case key.Matches(msg, m.keys.Remove):
		m.store.Dispatch(shop.RemoveFromCart{ID: line.ID})
		m.toasts.Info("Removed from cart", line.Name)
		m.cartSelected = clamp(m.cartSelected, 0, max(0, len(state.Cart)-2))
	}

	return m, nil
}

// toggleWishlist adds or removes a product and pushes the matching toast.
func (m *Model) toggleWishlist(p catalog.Product) {
	if m.store.InWishlist(p.ID) {
		m.store.Dispatch(shop.RemoveFromWishlist{ID: p.ID})
		m.toasts.WishlistRemoved("Removed from wishlist", p.Name)
		return
	}
	m.store.Dispatch(shop.AddToWishlist{Product: p})
	m.toasts.WishlistAdded("Added to wishlist", p.Name)
}

// nextCategory cycles welcome state -> All -> each category -> welcome.
func (m Model) nextCategory(current string) string {
	cycle := append([]string{""}, m.store.Categories()...)
	for i, c := range cycle {
		if c == current {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return cycle[0]
}

var sortOrder = []shop.SortKey{
	shop.SortName,
	shop.SortNameDesc,
	shop.SortPriceLow,
	shop.SortPriceHigh,
	shop.SortRatingDesc,
	shop.SortRatingAsc,
}

func nextSortKey(current shop.SortKey) shop.SortKey {
	for i, k := range sortOrder {
		if k == current {
			return sortOrder[(i+1)%len(sortOrder)]
		}
	}
	return sortOrder[0]
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	_ = prefs.Save(m.prefsPath, prefs.Prefs{
		Theme:    m.theme.Name,
		ViewMode: string(m.store.State().ViewMode),
	})
}

// Messages

// searchCommitMsg commits the search draft once the debounce window for
// seq has elapsed without another keystroke.
type searchCommitMsg struct {
	seq int
}

// toastsChangedMsg is sent by the toast queue whenever it changes.
type toastsChangedMsg struct{}

// Commands

func (m Model) debounceCmd(seq int) tea.Cmd {
	return tea.Tick(m.debounce, func(time.Time) tea.Msg {
		return searchCommitMsg{seq: seq}
	})
}

package shop

import "github.com/kvisser/shopfront/internal/catalog"

// SortKey selects the ordering applied to the filtered product list.
type SortKey string

const (
	SortName       SortKey = "name"
	SortNameDesc   SortKey = "name-desc"
	SortPriceLow   SortKey = "price-low"
	SortPriceHigh  SortKey = "price-high"
	SortRatingDesc SortKey = "rating-desc"
	SortRatingAsc  SortKey = "rating-asc"
)

// ViewMode selects how the product list is presented.
type ViewMode string

const (
	ViewGrid ViewMode = "grid"
	ViewList ViewMode = "list"
)

// CartLine is a product plus the quantity of it in the active cart.
// Quantity is always >= 1 while the line exists; a line whose quantity
// drops to zero is removed by the reducer. The embedded Product inlines
// its fields into the persisted JSON shape.
type CartLine struct {
	catalog.Product
	Quantity int `json:"quantity"`
}

// State is the single root value every view reads. It is replaced, never
// mutated in place: Reduce returns a fresh State with fresh slices for
// whatever changed, so stale references observed by callers stay valid.
type State struct {
	// Product browsing
	Products       []catalog.Product
	CategoryFilter string // empty means no filter selected (welcome state)
	SearchTerm     string
	SortBy         SortKey
	ViewMode       ViewMode

	// Cart
	Cart       []CartLine
	IsCartOpen bool

	// Wishlist
	Wishlist []catalog.Product

	// Product modal. IsProductModalOpen implies SelectedProduct != nil.
	SelectedProduct    *catalog.Product
	IsProductModalOpen bool
}

// NewState returns the initial state for the given catalog.
func NewState(products []catalog.Product) State {
	return State{
		Products: products,
		SortBy:   SortName,
		ViewMode: ViewGrid,
	}
}

package shop

import "github.com/kvisser/shopfront/internal/catalog"

// Action is the sealed set of state transitions understood by Reduce.
// Each variant is a small struct carrying its payload; the unexported
// marker method keeps the set closed to this package.
type Action interface {
	isAction()
}

// SetCategoryFilter replaces the active category filter. An empty
// category returns the UI to the welcome state.
type SetCategoryFilter struct {
	Category string
}

// SetSearchTerm replaces the committed search term.
type SetSearchTerm struct {
	Term string
}

// SetSortBy replaces the sort key for the filtered product list.
type SetSortBy struct {
	Key SortKey
}

// SetViewMode switches between grid and list presentation.
type SetViewMode struct {
	Mode ViewMode
}

// AddToCart merges a product into the cart: an existing line's quantity
// is incremented, otherwise a new line with quantity 1 appends at the end.
type AddToCart struct {
	Product catalog.Product
}

// RemoveFromCart deletes the line with the given product id, if any.
type RemoveFromCart struct {
	ID int
}

// UpdateQuantity sets a line's quantity directly. A quantity <= 0
// removes the line; an unknown id is a no-op. Stock is deliberately not
// checked, cart quantity is independent of availability.
type UpdateQuantity struct {
	ID       int
	Quantity int
}

// ClearCart empties the cart.
type ClearCart struct{}

// ToggleCartSidebar flips the cart sidebar open state.
type ToggleCartSidebar struct{}

// OpenProductModal selects a product and opens the detail modal.
type OpenProductModal struct {
	Product catalog.Product
}

// CloseProductModal closes the detail modal and clears the selection.
type CloseProductModal struct{}

// AddToWishlist appends a product to the wishlist. Adding a product that
// is already wishlisted is a no-op.
type AddToWishlist struct {
	Product catalog.Product
}

// RemoveFromWishlist deletes the wishlist entry with the given id, if any.
type RemoveFromWishlist struct {
	ID int
}

func (SetCategoryFilter) isAction()  {}
func (SetSearchTerm) isAction()      {}
func (SetSortBy) isAction()          {}
func (SetViewMode) isAction()        {}
func (AddToCart) isAction()          {}
func (RemoveFromCart) isAction()     {}
func (UpdateQuantity) isAction()     {}
func (ClearCart) isAction()          {}
func (ToggleCartSidebar) isAction()  {}
func (OpenProductModal) isAction()   {}
func (CloseProductModal) isAction()  {}
func (AddToWishlist) isAction()      {}
func (RemoveFromWishlist) isAction() {}

package shop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvisser/shopfront/internal/catalog"
)

var (
	mascara = catalog.Product{ID: 1, Name: "Essence Mascara Lash Princess", Price: 9.99, Category: "beauty", Rating: 2.56, Stock: 99}
	palette = catalog.Product{ID: 2, Name: "Eyeshadow Palette with Mirror", Price: 19.99, Category: "beauty", Rating: 2.86, Stock: 34}
	perfume = catalog.Product{ID: 6, Name: "Calvin Klein CK One", Price: 49.99, Category: "fragrances", Rating: 4.37, Stock: 29}
)

func testState() State {
	return NewState([]catalog.Product{mascara, palette, perfume})
}

func TestReduce_AddToCartMergesByID(t *testing.T) {
	s := testState()
	for i := 0; i < 5; i++ {
		s = Reduce(s, AddToCart{Product: mascara})
	}

	require.Len(t, s.Cart, 1)
	assert.Equal(t, mascara.ID, s.Cart[0].ID)
	assert.Equal(t, 5, s.Cart[0].Quantity)
}

func TestReduce_AddToCartAppendsNewLinesAtEnd(t *testing.T) {
	s := testState()
	s = Reduce(s, AddToCart{Product: mascara})
	s = Reduce(s, AddToCart{Product: palette})
	s = Reduce(s, AddToCart{Product: mascara})
	s = Reduce(s, AddToCart{Product: perfume})

	require.Len(t, s.Cart, 3)
	assert.Equal(t, []int{mascara.ID, palette.ID, perfume.ID},
		[]int{s.Cart[0].ID, s.Cart[1].ID, s.Cart[2].ID})
	assert.Equal(t, 2, s.Cart[0].Quantity)
}

func TestReduce_RemoveFromCart(t *testing.T) {
	s := testState()
	s = Reduce(s, AddToCart{Product: mascara})
	s = Reduce(s, AddToCart{Product: palette})

	s = Reduce(s, RemoveFromCart{ID: mascara.ID})
	require.Len(t, s.Cart, 1)
	assert.Equal(t, palette.ID, s.Cart[0].ID)

	// Removing an absent id is a no-op.
	before := s.Cart
	s = Reduce(s, RemoveFromCart{ID: 999})
	assert.Equal(t, before, s.Cart)
}

func TestReduce_UpdateQuantity(t *testing.T) {
	s := testState()
	s = Reduce(s, AddToCart{Product: mascara})

	s = Reduce(s, UpdateQuantity{ID: mascara.ID, Quantity: 7})
	require.Len(t, s.Cart, 1)
	assert.Equal(t, 7, s.Cart[0].Quantity)
}

func TestReduce_UpdateQuantityZeroOrNegativeRemovesLine(t *testing.T) {
	for _, qty := range []int{0, -3} {
		s := testState()
		s = Reduce(s, AddToCart{Product: mascara})
		s = Reduce(s, UpdateQuantity{ID: mascara.ID, Quantity: qty})
		assert.Empty(t, s.Cart, "quantity %d should remove the line", qty)
	}
}

func TestReduce_UpdateQuantityUnknownIDCreatesNothing(t *testing.T) {
	s := testState()
	s = Reduce(s, AddToCart{Product: mascara})

	s = Reduce(s, UpdateQuantity{ID: 999, Quantity: 4})
	require.Len(t, s.Cart, 1)
	assert.Equal(t, mascara.ID, s.Cart[0].ID)
	assert.Equal(t, 1, s.Cart[0].Quantity)
}

func TestReduce_UpdateQuantityIgnoresStock(t *testing.T) {
	s := testState()
	s = Reduce(s, AddToCart{Product: perfume})

	// Stock is 29; the cart does not enforce it.
	s = Reduce(s, UpdateQuantity{ID: perfume.ID, Quantity: 500})
	assert.Equal(t, 500, s.Cart[0].Quantity)
}

func TestReduce_ClearCart(t *testing.T) {
	s := testState()
	s = Reduce(s, AddToCart{Product: mascara})
	s = Reduce(s, AddToCart{Product: palette})

	s = Reduce(s, ClearCart{})
	assert.Empty(t, s.Cart)
}

func TestReduce_ToggleCartSidebar(t *testing.T) {
	s := testState()
	assert.False(t, s.IsCartOpen)
	s = Reduce(s, ToggleCartSidebar{})
	assert.True(t, s.IsCartOpen)
	s = Reduce(s, ToggleCartSidebar{})
	assert.False(t, s.IsCartOpen)
}

func TestReduce_ProductModalCoupling(t *testing.T) {
	s := testState()

	s = Reduce(s, OpenProductModal{Product: palette})
	require.NotNil(t, s.SelectedProduct)
	assert.Equal(t, palette.ID, s.SelectedProduct.ID)
	assert.True(t, s.IsProductModalOpen)

	s = Reduce(s, CloseProductModal{})
	assert.Nil(t, s.SelectedProduct)
	assert.False(t, s.IsProductModalOpen)
}

func TestReduce_AddToWishlistIsIdempotent(t *testing.T) {
	s := testState()
	s = Reduce(s, AddToWishlist{Product: mascara})
	s = Reduce(s, AddToWishlist{Product: mascara})

	require.Len(t, s.Wishlist, 1)
	assert.Equal(t, mascara.ID, s.Wishlist[0].ID)
}

func TestReduce_RemoveFromWishlist(t *testing.T) {
	s := testState()
	s = Reduce(s, AddToWishlist{Product: mascara})
	s = Reduce(s, AddToWishlist{Product: palette})

	s = Reduce(s, RemoveFromWishlist{ID: mascara.ID})
	require.Len(t, s.Wishlist, 1)
	assert.Equal(t, palette.ID, s.Wishlist[0].ID)

	before := s.Wishlist
	s = Reduce(s, RemoveFromWishlist{ID: 999})
	assert.Equal(t, before, s.Wishlist)
}

func TestReduce_FilterAndViewSettings(t *testing.T) {
	s := testState()
	s = Reduce(s, SetCategoryFilter{Category: "beauty"})
	s = Reduce(s, SetSearchTerm{Term: "mascara"})
	s = Reduce(s, SetSortBy{Key: SortPriceLow})
	s = Reduce(s, SetViewMode{Mode: ViewList})

	assert.Equal(t, "beauty", s.CategoryFilter)
	assert.Equal(t, "mascara", s.SearchTerm)
	assert.Equal(t, SortPriceLow, s.SortBy)
	assert.Equal(t, ViewList, s.ViewMode)
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	s := testState()
	s = Reduce(s, AddToCart{Product: mascara})
	snapshot := s

	next := Reduce(s, AddToCart{Product: mascara})
	assert.Equal(t, 1, snapshot.Cart[0].Quantity, "input state mutated")
	assert.Equal(t, 2, next.Cart[0].Quantity)

	next = Reduce(s, UpdateQuantity{ID: mascara.ID, Quantity: 9})
	assert.Equal(t, 1, snapshot.Cart[0].Quantity, "input state mutated")
	assert.Equal(t, 9, next.Cart[0].Quantity)
}

type bogusAction struct{}

func (bogusAction) isAction() {}

func TestReduce_UnknownActionPanics(t *testing.T) {
	s := testState()
	require.Panics(t, func() { Reduce(s, bogusAction{}) })
	require.Panics(t, func() { Reduce(s, nil) })
}

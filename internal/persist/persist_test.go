package persist

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvisser/shopfront/internal/catalog"
	"github.com/kvisser/shopfront/internal/shop"
)

var (
	soap   = catalog.Product{ID: 1, Name: "Soap", Price: 3.49, Category: "beauty", Rating: 4.1, Stock: 12}
	candle = catalog.Product{ID: 2, Name: "Candle", Price: 8.99, Category: "home", Rating: 3.7, Stock: 5}
)

func testAdapter(t *testing.T) *Adapter {
	t.Helper()
	return New(t.TempDir(), log.New(io.Discard, "", 0))
}

func TestCartRoundTrip(t *testing.T) {
	a := testAdapter(t)
	a.SaveCart([]shop.CartLine{
		{Product: soap, Quantity: 3},
		{Product: candle, Quantity: 1},
	})

	got := a.LoadCart()
	require.Len(t, got, 2)
	assert.Equal(t, soap.ID, got[0].ID)
	assert.Equal(t, 3, got[0].Quantity)
	assert.Equal(t, candle.ID, got[1].ID)
	assert.Equal(t, 1, got[1].Quantity)
}

func TestWishlistRoundTrip(t *testing.T) {
	a := testAdapter(t)
	a.SaveWishlist([]catalog.Product{candle, soap})

	got := a.LoadWishlist()
	require.Len(t, got, 2)
	assert.Equal(t, []int{candle.ID, soap.ID}, []int{got[0].ID, got[1].ID})
}

func TestLoad_MissingSnapshotIsEmpty(t *testing.T) {
	a := testAdapter(t)
	assert.Nil(t, a.LoadCart())
	assert.Nil(t, a.LoadWishlist())
}

func TestLoad_CorruptSnapshotIsEmptyAndReported(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shopping-cart.json"), []byte("{not json"), 0o644))

	a := New(dir, log.New(io.Discard, "", 0))
	var reported []error
	a.OnError = func(err error) { reported = append(reported, err) }

	assert.Nil(t, a.LoadCart())
	require.Len(t, reported, 1)
	assert.Contains(t, reported[0].Error(), "corrupt")
}

func TestSaveCart_NilWritesEmptyArray(t *testing.T) {
	dir := t.TempDir()
	a := New(dir, log.New(io.Discard, "", 0))
	a.SaveCart(nil)

	data, err := os.ReadFile(filepath.Join(dir, "shopping-cart.json"))
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestRehydrate_PreservesQuantities(t *testing.T) {
	a := testAdapter(t)
	a.SaveCart([]shop.CartLine{
		{Product: soap, Quantity: 4},
		{Product: candle, Quantity: 2},
	})
	a.SaveWishlist([]catalog.Product{soap})

	store := shop.New([]catalog.Product{soap, candle})
	a.Rehydrate(store)

	st := store.State()
	require.Len(t, st.Cart, 2)
	assert.Equal(t, 4, st.Cart[0].Quantity)
	assert.Equal(t, 2, st.Cart[1].Quantity)
	require.Len(t, st.Wishlist, 1)
	assert.Equal(t, soap.ID, st.Wishlist[0].ID)
}

func TestRehydrate_SkipsNonPositiveQuantities(t *testing.T) {
	a := testAdapter(t)
	a.SaveCart([]shop.CartLine{
		{Product: soap, Quantity: 0},
		{Product: candle, Quantity: -2},
	})

	store := shop.New([]catalog.Product{soap, candle})
	a.Rehydrate(store)
	assert.Empty(t, store.State().Cart)
}

func TestWatch_SavesOnChange(t *testing.T) {
	a := testAdapter(t)
	store := shop.New([]catalog.Product{soap, candle})
	a.Watch(store)

	store.Dispatch(shop.AddToCart{Product: soap})
	store.Dispatch(shop.AddToWishlist{Product: candle})

	assert.Len(t, a.LoadCart(), 1)
	assert.Len(t, a.LoadWishlist(), 1)

	store.Dispatch(shop.ClearCart{})
	assert.Empty(t, a.LoadCart())
}

func TestWatch_IgnoresUnrelatedDispatches(t *testing.T) {
	a := testAdapter(t)
	store := shop.New([]catalog.Product{soap})
	a.Watch(store)

	store.Dispatch(shop.SetSearchTerm{Term: "soap"})
	store.Dispatch(shop.ToggleCartSidebar{})

	_, err := os.Stat(filepath.Join(a.dir, "shopping-cart.json"))
	assert.True(t, os.IsNotExist(err), "no snapshot should be written without a cart change")
}

package shop

import (
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/kvisser/shopfront/internal/catalog"
)

// The selectors below are pure projections of the current state. Each
// caches its last inputs and output so that repeated calls with an
// unchanged state return the identical value, downstream consumers can
// rely on reference equality to skip work. Input identity is checked by
// slice header (the reducer replaces a slice whenever it changes) plus
// scalar equality.

// sameSlice reports whether two slices are the same view of the same
// backing array. Good enough as an identity check because the reducer
// never mutates a slice in place.
func sameSlice[T any](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return &a[0] == &b[0]
}

type filteredCache struct {
	mu       sync.Mutex
	valid    bool
	products []catalog.Product
	search   string
	category string
	sort     SortKey
	out      []catalog.Product
	coll     *collate.Collator
}

// FilteredProducts returns the product list after applying the search
// term, category filter, and sort key. With no category selected and a
// blank search it returns an empty list: that is the welcome-state
// signal, not "no matches".
func (s *Store) FilteredProducts() []catalog.Product {
	st := s.State()
	c := &s.filtered
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.valid && sameSlice(c.products, st.Products) &&
		c.search == st.SearchTerm && c.category == st.CategoryFilter && c.sort == st.SortBy {
		return c.out
	}
	if c.coll == nil {
		c.coll = collate.New(language.English, collate.Loose)
	}
	c.out = filterAndSort(st, c.coll)
	c.products = st.Products
	c.search = st.SearchTerm
	c.category = st.CategoryFilter
	c.sort = st.SortBy
	c.valid = true
	return c.out
}

func filterAndSort(st State, coll *collate.Collator) []catalog.Product {
	if st.CategoryFilter == "" && strings.TrimSpace(st.SearchTerm) == "" {
		return nil
	}

	needle := strings.ToLower(st.SearchTerm)
	out := make([]catalog.Product, 0, len(st.Products))
	for _, p := range st.Products {
		if !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		if st.CategoryFilter != "" && st.CategoryFilter != "All" && p.Category != st.CategoryFilter {
			continue
		}
		out = append(out, p)
	}

	// Stable so that equal keys keep their catalog order.
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch st.SortBy {
		case SortName:
			return coll.CompareString(a.Name, b.Name) < 0
		case SortNameDesc:
			return coll.CompareString(b.Name, a.Name) < 0
		case SortPriceLow:
			return a.Price < b.Price
		case SortPriceHigh:
			return b.Price < a.Price
		case SortRatingDesc:
			return b.Rating < a.Rating
		case SortRatingAsc:
			return a.Rating < b.Rating
		default:
			return false
		}
	})
	return out
}

type categoriesCache struct {
	mu       sync.Mutex
	valid    bool
	products []catalog.Product
	out      []string
}

// Categories returns "All" plus the distinct categories present in the
// catalog. The catalog is static today but the derivation still keys on
// the products slice so a dynamic catalog would recompute correctly.
func (s *Store) Categories() []string {
	st := s.State()
	c := &s.categories
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.valid && sameSlice(c.products, st.Products) {
		return c.out
	}
	c.out = catalog.Categories(st.Products)
	c.products = st.Products
	c.valid = true
	return c.out
}

type totalCache struct {
	mu    sync.Mutex
	valid bool
	cart  []CartLine
	out   float64
}

// CartTotal returns the sum of price times quantity over all cart lines.
func (s *Store) CartTotal() float64 {
	st := s.State()
	c := &s.total
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.valid && sameSlice(c.cart, st.Cart) {
		return c.out
	}
	var total float64
	for _, line := range st.Cart {
		total += line.Price * float64(line.Quantity)
	}
	c.out = total
	c.cart = st.Cart
	c.valid = true
	return total
}

// CartItemCount returns the number of distinct cart lines, not the sum
// of quantities. Used for the cart badge.
func (s *Store) CartItemCount() int {
	return len(s.State().Cart)
}

// WishlistCount returns the number of wishlisted products.
func (s *Store) WishlistCount() int {
	return len(s.State().Wishlist)
}

// InWishlist reports whether the product with the given id is wishlisted.
func (s *Store) InWishlist(id int) bool {
	for _, p := range s.State().Wishlist {
		if p.ID == id {
			return true
		}
	}
	return false
}

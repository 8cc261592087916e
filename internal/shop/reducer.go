package shop

import (
	"fmt"

	"github.com/kvisser/shopfront/internal/catalog"
)

// Reduce applies a single action to the current state and returns the
// next state. It never mutates its input: slices are copied before any
// element changes. Dispatching a nil or unrecognized action is a
// programming defect and panics rather than silently returning the
// state unchanged.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case SetCategoryFilter:
		s.CategoryFilter = a.Category
		return s

	case SetSearchTerm:
		s.SearchTerm = a.Term
		return s

	case SetSortBy:
		s.SortBy = a.Key
		return s

	case SetViewMode:
		s.ViewMode = a.Mode
		return s

	case AddToCart:
		for i, line := range s.Cart {
			if line.ID == a.Product.ID {
				cart := make([]CartLine, len(s.Cart))
				copy(cart, s.Cart)
				cart[i].Quantity++
				s.Cart = cart
				return s
			}
		}
		cart := make([]CartLine, len(s.Cart), len(s.Cart)+1)
		copy(cart, s.Cart)
		s.Cart = append(cart, CartLine{Product: a.Product, Quantity: 1})
		return s

	case RemoveFromCart:
		s.Cart = removeLine(s.Cart, a.ID)
		return s

	case UpdateQuantity:
		if a.Quantity <= 0 {
			s.Cart = removeLine(s.Cart, a.ID)
			return s
		}
		for i, line := range s.Cart {
			if line.ID == a.ID {
				cart := make([]CartLine, len(s.Cart))
				copy(cart, s.Cart)
				cart[i].Quantity = a.Quantity
				s.Cart = cart
				return s
			}
		}
		// Unknown id: no line is created.
		return s

	case ClearCart:
		s.Cart = nil
		return s

	case ToggleCartSidebar:
		s.IsCartOpen = !s.IsCartOpen
		return s

	case OpenProductModal:
		p := a.Product
		s.SelectedProduct = &p
		s.IsProductModalOpen = true
		return s

	case CloseProductModal:
		s.SelectedProduct = nil
		s.IsProductModalOpen = false
		return s

	case AddToWishlist:
		for _, p := range s.Wishlist {
			if p.ID == a.Product.ID {
				return s
			}
		}
		wishlist := make([]catalog.Product, len(s.Wishlist), len(s.Wishlist)+1)
		copy(wishlist, s.Wishlist)
		s.Wishlist = append(wishlist, a.Product)
		return s

	case RemoveFromWishlist:
		found := false
		for _, p := range s.Wishlist {
			if p.ID == a.ID {
				found = true
				break
			}
		}
		if !found {
			return s
		}
		wishlist := make([]catalog.Product, 0, len(s.Wishlist)-1)
		for _, p := range s.Wishlist {
			if p.ID != a.ID {
				wishlist = append(wishlist, p)
			}
		}
		s.Wishlist = wishlist
		return s

	default:
		panic(fmt.Sprintf("shop: unknown action %T", a))
	}
}

// removeLine returns cart without the line matching id. The input slice
// is returned unchanged when no line matches.
func removeLine(cart []CartLine, id int) []CartLine {
	found := false
	for _, line := range cart {
		if line.ID == id {
			found = true
			break
		}
	}
	if !found {
		return cart
	}
	out := make([]CartLine, 0, len(cart)-1)
	for _, line := range cart {
		if line.ID != id {
			out = append(out, line)
		}
	}
	return out
}

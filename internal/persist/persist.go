// Package persist snapshots the cart and wishlist to local JSON files
// and replays them through the reducer at startup.
package persist

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/kvisser/shopfront/internal/catalog"
	"github.com/kvisser/shopfront/internal/shop"
)

// Storage keys. Each key maps to <key>.json inside the data dir and
// holds the full serialized slice, replaced on every change.
const (
	cartKey     = "shopping-cart"
	wishlistKey = "shopping-wishlist"
)

// Adapter performs one-way sync of the cart and wishlist slices to the
// data directory. All failures degrade silently: a missing or corrupt
// snapshot reads as empty, and a failed write is logged and dropped.
type Adapter struct {
	dir    string
	logger *log.Logger

	// OnError, when set, receives every persistence error after it has
	// been logged. Intended for external reporting hooks.
	OnError func(error)
}

// New creates an adapter rooted at dir. The logger must not be nil.
func New(dir string, logger *log.Logger) *Adapter {
	return &Adapter{dir: dir, logger: logger}
}

// LoadCart reads the saved cart snapshot. Missing or unparseable data
// yields nil.
func (a *Adapter) LoadCart() []shop.CartLine {
	var lines []shop.CartLine
	if !a.load(cartKey, &lines) {
		return nil
	}
	return lines
}

// LoadWishlist reads the saved wishlist snapshot. Missing or
// unparseable data yields nil.
func (a *Adapter) LoadWishlist() []catalog.Product {
	var items []catalog.Product
	if !a.load(wishlistKey, &items) {
		return nil
	}
	return items
}

// SaveCart writes the full cart slice, replacing any previous snapshot.
func (a *Adapter) SaveCart(lines []shop.CartLine) {
	if lines == nil {
		lines = []shop.CartLine{}
	}
	a.save(cartKey, lines)
}

// SaveWishlist writes the full wishlist slice, replacing any previous
// snapshot.
func (a *Adapter) SaveWishlist(items []catalog.Product) {
	if items == nil {
		items = []catalog.Product{}
	}
	a.save(wishlistKey, items)
}

// Rehydrate replays the saved snapshots into the store as ordinary
// AddToCart / AddToWishlist dispatches, so reducer invariants
// (merge-by-id, idempotency) hold for restored data exactly as they do
// for live interaction. Each cart line is added once per unit of
// quantity so quantities survive the round trip.
func (a *Adapter) Rehydrate(store *shop.Store) {
	for _, line := range a.LoadCart() {
		if line.Quantity < 1 {
			continue
		}
		for i := 0; i < line.Quantity; i++ {
			store.Dispatch(shop.AddToCart{Product: line.Product})
		}
	}
	for _, p := range a.LoadWishlist() {
		store.Dispatch(shop.AddToWishlist{Product: p})
	}
}

// Watch subscribes to the store and writes whichever slice changed.
// Writes are best-effort: the subscriber recovers its own panics so a
// persistence fault can never take down a dispatch.
func (a *Adapter) Watch(store *shop.Store) {
	store.Subscribe(func(old, next shop.State) {
		defer func() {
			if r := recover(); r != nil {
				a.report(fmt.Errorf("persist: snapshot write panicked: %v", r))
			}
		}()
		if !sameCart(old.Cart, next.Cart) {
			a.SaveCart(next.Cart)
		}
		if !sameWishlist(old.Wishlist, next.Wishlist) {
			a.SaveWishlist(next.Wishlist)
		}
	})
}

// load returns false when there is no usable snapshot for key.
func (a *Adapter) load(key string, out any) bool {
	data, err := os.ReadFile(a.path(key))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			a.report(fmt.Errorf("persist: read %s: %w", key, err))
		}
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		a.report(fmt.Errorf("persist: corrupt %s snapshot ignored: %w", key, err))
		return false
	}
	return true
}

func (a *Adapter) save(key string, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		a.report(fmt.Errorf("persist: marshal %s: %w", key, err))
		return
	}
	if err := os.MkdirAll(a.dir, 0o755); err != nil {
		a.report(fmt.Errorf("persist: create data dir: %w", err))
		return
	}
	if err := os.WriteFile(a.path(key), data, 0o644); err != nil {
		a.report(fmt.Errorf("persist: write %s: %w", key, err))
	}
}

func (a *Adapter) path(key string) string {
	return filepath.Join(a.dir, key+".json")
}

func (a *Adapter) report(err error) {
	a.logger.Printf("WARN %v", err)
	if a.OnError != nil {
		a.OnError(err)
	}
}

func sameCart(a, b []shop.CartLine) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return &a[0] == &b[0]
}

func sameWishlist(a, b []catalog.Product) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return &a[0] == &b[0]
}

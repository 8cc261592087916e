package shop

import (
	"log"
	"sync"

	"github.com/davecgh/go-spew/spew"

	"github.com/kvisser/shopfront/internal/catalog"
)

// Store owns the current State and is the only writer to it. Every
// mutation flows through Dispatch, which applies the reducer and then
// runs change subscribers to completion before returning. Reads get a
// value snapshot; the slices inside it are immutable by convention.
type Store struct {
	mu    sync.RWMutex
	state State
	subs  []func(old, next State)
	debug *log.Logger

	// Memoized selector caches, see selectors.go.
	filtered   filteredCache
	categories categoriesCache
	total      totalCache
}

// New creates a store seeded with the given catalog.
func New(products []catalog.Product) *Store {
	return &Store{state: NewState(products)}
}

// State returns the current state. The returned value shares its slices
// with the store; callers must not modify them.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch applies an action and notifies subscribers synchronously.
// It panics on a nil or unknown action, see Reduce.
func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	old := s.state
	next := Reduce(old, a)
	s.state = next
	debug := s.debug
	subs := s.subs
	s.mu.Unlock()

	if debug != nil {
		debug.Printf("dispatch %s (cart=%d wishlist=%d)",
			spew.Sprintf("%#v", a), len(next.Cart), len(next.Wishlist))
	}
	for _, fn := range subs {
		fn(old, next)
	}
}

// Subscribe registers a hook invoked after every dispatch with the state
// before and after the action. Hooks run on the dispatching goroutine.
func (s *Store) Subscribe(fn func(old, next State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// SetDebugLogger enables an action trace on the given logger. Passing
// nil disables it.
func (s *Store) SetDebugLogger(l *log.Logger) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.debug = l
}

// Package shop implements the state-management core of shopfront.
//
// # Overview
//
// All application state lives in a single State value owned by a Store.
// Views never mutate state directly: they dispatch Actions, a sealed sum
// type, and the pure Reduce function computes the next state. Derived
// views (filtered products, cart totals, categories) are memoized
// selector methods on the Store.
//
// # Data Flow
//
//	user input -> Store.Dispatch(Action)
//	           -> Reduce(state, action) replaces the State
//	           -> subscribers run (persistence snapshots, UI repaint)
//	           -> selectors recompute lazily on next read
//
// # Immutability
//
// Reduce treats its input as frozen. Whenever a slice element would
// change, the slice is copied first; State itself is passed and returned
// by value. A snapshot obtained from Store.State before a dispatch is
// therefore never affected by the dispatch.
//
// # Actions
//
// Action variants are plain structs (AddToCart, UpdateQuantity,
// SetSearchTerm, ...) implementing an unexported marker method, so the
// set is closed and the reducer's type switch covers every variant.
// Dispatching a nil or foreign Action panics: that is a programming
// defect and is surfaced immediately rather than silently ignored.
//
// # Selectors
//
// FilteredProducts, Categories, and CartTotal cache their last inputs
// and outputs. Because the reducer replaces slices instead of mutating
// them, slice identity plus scalar equality is a sound cache key, and
// an unchanged state yields the identical (reference-equal) result.
//
// # Concurrency
//
// The Store is mutex-guarded and safe for concurrent use, but the
// application is effectively single-writer: dispatches originate from
// the UI event loop and run to completion, subscribers included, before
// the next action is processed.
package shop

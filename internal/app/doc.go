// Package app provides the orchestration layer for shopfront.
//
// # Overview
//
// This package is the composition root: it loads configuration and
// user preferences, validates the bundled catalog, constructs the
// store, rehydrates persisted cart and wishlist snapshots through the
// reducer, wires the persistence watcher and toast queue, and hands
// everything to the UI. Nothing here holds state of its own; the store
// is built once and passed by reference down the stack, there is no
// ambient global to reach for.
//
// # Startup Sequence
//
//  1. Load config (TOML file + SHOPFRONT_* env overrides)
//  2. Load prefs (theme, view mode; corrupt prefs degrade to defaults)
//  3. Validate the catalog (a data defect here is fatal)
//  4. Build the store, apply the preferred view mode
//  5. Rehydrate saved snapshots as ordinary dispatches
//  6. Subscribe the persistence watcher
//  7. Run the UI until quit or context cancellation
package app

// Package ui provides the terminal user interface for shopfront.
//
// # Architecture Overview
//
// The UI is a Bubble Tea application. The root Model holds presentation
// state only (selection indices, search draft, overlays, theme); all
// shop state lives in the shop.Store and is read fresh on every render.
// Key presses translate into store dispatches, so the data flow is the
// standard one-way loop: input -> dispatch -> reduce -> render.
//
// # Views and Overlays
//
// Two main views (browse, wishlist) plus three overlays (cart sidebar,
// product modal, help). The modal and sidebar open states are shop
// state, the reducer owns them; the help overlay and wishlist view are
// purely presentational and live on the Model.
//
// # Search Debounce
//
// The search input edits a local draft. Each keystroke bumps a sequence
// counter and schedules a commit via tea.Tick; when the commit message
// arrives it is applied only if its sequence is still current, so any
// keystroke inside the quiet period effectively cancels the previous
// pending commit. Enter commits immediately and invalidates pending
// ticks the same way.
//
// # Render Boundaries
//
// Each top-level region (header, filter bar, content, footer, toasts)
// renders behind a recover boundary. A panicking region is replaced by
// a fallback panel with a retry hint while the rest of the UI keeps
// working; r clears captured failures.
//
// # Theming
//
// Named lipgloss palettes (Dracula, Nightfox, Slate). T cycles themes
// and persists the choice via the prefs package, as does toggling the
// grid/list view mode.
package ui

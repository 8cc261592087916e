package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/kvisser/shopfront/internal/catalog"
	"github.com/kvisser/shopfront/internal/config"
	"github.com/kvisser/shopfront/internal/persist"
	"github.com/kvisser/shopfront/internal/prefs"
	"github.com/kvisser/shopfront/internal/shop"
	"github.com/kvisser/shopfront/internal/toast"
	"github.com/kvisser/shopfront/internal/ui"
)

// Options configure the shopfront application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/shopfront/prefs.toml

	// OnAsyncError, when set, receives errors from background work
	// (persistence writes, timer callbacks) after they are logged.
	OnAsyncError func(error)
}

// Run boots the shopfront TUI until the context is cancelled or the
// user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	products := catalog.Products()
	if err := catalog.Validate(products); err != nil {
		return fmt.Errorf("validate catalog: %w", err)
	}

	logger := newLogger(cfg.LogPath())

	store := shop.New(products)
	if userPrefs.ViewMode == string(shop.ViewList) {
		store.Dispatch(shop.SetViewMode{Mode: shop.ViewList})
	}
	if os.Getenv("SHOPFRONT_DEBUG") != "" {
		store.SetDebugLogger(logger)
	}

	// Restore saved cart and wishlist before watching for changes, so
	// the replay itself does not rewrite the snapshots mid-read.
	adapter := persist.New(cfg.DataDir, logger)
	adapter.OnError = opts.OnAsyncError
	adapter.Rehydrate(store)
	adapter.Watch(store)

	toasts := toast.NewQueue(cfg.ToastDuration)

	return ui.Run(ui.Options{
		Context:        ctx,
		Store:          store,
		Toasts:         toasts,
		ThemeName:      userPrefs.Theme,
		PrefsPath:      opts.PrefsPath,
		SearchDebounce: cfg.SearchDebounce,
	})
}

// newLogger opens the application log file. Stdout belongs to the TUI,
// so logging degrades to a discard writer when the file cannot be
// opened.
func newLogger(path string) *log.Logger {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return log.New(io.Discard, "", 0)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return log.New(io.Discard, "", 0)
	}
	return log.New(f, "", log.LstdFlags)
}

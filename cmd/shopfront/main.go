package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/kvisser/shopfront/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Best-effort: a .env in the working directory can supply
	// SHOPFRONT_* overrides during development.
	_ = godotenv.Load()

	configPath := flag.String("config", "", "override config path (optional)")
	prefsPath := flag.String("prefs", "", "override prefs path (optional)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "shopfront: %v\n", err)
		return 1
	}
	return 0
}

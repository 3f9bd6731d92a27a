package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"shopquote/internal/cli"
	"shopquote/internal/repository"
	"shopquote/internal/service"
	"shopquote/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine store path: env var or default ~/.shopquote/shopquote.db
	dbPath := os.Getenv("SHOPQUOTE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".shopquote", "shopquote.db")
	}

	kv, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer kv.Close()

	// Wire repositories
	customerRepo := repository.NewKVCustomerRepo(kv)
	quoteRepo := repository.NewKVQuoteRepo(kv)
	draftRepo := repository.NewKVDraftRepo(kv)

	// Wire services
	quoteSvc := service.NewQuoteService(quoteRepo, customerRepo)

	app := &cli.App{
		Customers: service.NewCustomerService(customerRepo),
		Quotes:    quoteSvc,
		Access:    service.NewAccessService(kv),
		Drafts:    draftRepo,
		Editor:    service.NewEditor(customerRepo, quoteSvc, draftRepo),
	}

	// Detect interactive terminal for the quote editor.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"shopquote/internal/repository"
	"shopquote/internal/service"
)

// App holds references to the services used by CLI commands.
type App struct {
	Customers service.CustomerService
	Quotes    service.QuoteService
	Access    service.AccessService
	Drafts    repository.DraftRepo
	Editor    *service.Editor

	// IsInteractive reports whether stdin is a terminal; the quote
	// editor only opens when it is.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "shopquote" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "shopquote",
		Short: "Quote builder and customer mini-CRM for auto shops",
	}

	// Every core command is gated behind the shop's access code.
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if gateExempt(cmd) || app.Access.Unlocked() {
			return nil
		}
		return fmt.Errorf("access locked: run `shopquote unlock CODE` with your access code")
	}

	root.AddCommand(
		newUnlockCmd(app),
		newLockCmd(app),
		newCustomerCmd(app),
		newQuoteCmd(app),
		newDraftCmd(app),
	)

	return root
}

// gateExempt reports whether the command (or one of its ancestors) may run
// without the access code.
func gateExempt(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "unlock", "help", "completion":
			return true
		}
	}
	return false
}

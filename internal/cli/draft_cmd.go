package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"shopquote/internal/cli/formatter"
	"shopquote/internal/pricing"
)

func newDraftCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Inspect or clear the in-progress quote",
	}

	cmd.AddCommand(newDraftShowCmd(app), newDraftClearCmd(app))

	return cmd
}

func newDraftShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the autosaved draft",
		RunE: func(cmd *cobra.Command, args []string) error {
			if id, ok := app.Drafts.EditPointer(); ok {
				fmt.Printf("Editing saved quote %s (draft autosave suspended).\n", shortID(id))
				return nil
			}
			d, ok := app.Drafts.Draft()
			if !ok {
				fmt.Println("No draft in progress.")
				return nil
			}
			sum := pricing.Summarize(d.Items, d.TaxRate)
			fmt.Printf("%s %s\n", formatter.Bold(d.Title), formatter.StatusBadge(d.Status))
			for _, it := range d.Items {
				fmt.Printf("- %s | qty %g | %s\n", it.Name, pricing.Finite(it.Qty), pricing.Money(it.Unit))
			}
			fmt.Printf("Subtotal %s  Tax %s  Total %s\n",
				pricing.Money(sum.Subtotal), pricing.Money(sum.Tax), formatter.Bold(pricing.Money(sum.Total)))
			return nil
		},
	}
}

func newDraftClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Discard the draft and any pending edit",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Drafts.ClearDraft()
			app.Drafts.ClearEditPointer()
			fmt.Println("Draft cleared.")
			return nil
		},
	}
}

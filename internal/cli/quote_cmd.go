package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"shopquote/internal/cli/formatter"
	"shopquote/internal/domain"
	"shopquote/internal/pdf"
	"shopquote/internal/service"
)

func newQuoteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Build and manage quotes",
	}

	cmd.AddCommand(
		newQuoteNewCmd(app),
		newQuoteListCmd(app),
		newQuoteShowCmd(app),
		newQuoteEditCmd(app),
		newQuoteRemoveCmd(app),
		newQuotePrintCmd(app),
		newQuoteSummaryCmd(app),
		newQuoteFollowupsCmd(app),
	)

	return cmd
}

// parseItemFlag parses a "name:qty:unit" line-item flag value.
func parseItemFlag(s string) (domain.LineItem, error) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) != 3 {
		return domain.LineItem{}, fmt.Errorf("invalid item %q, expected name:qty:unit", s)
	}
	qty, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return domain.LineItem{}, fmt.Errorf("invalid qty in item %q: %w", s, err)
	}
	unit, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
	if err != nil {
		return domain.LineItem{}, fmt.Errorf("invalid unit price in item %q: %w", s, err)
	}
	return domain.LineItem{Name: strings.TrimSpace(parts[0]), Qty: qty, Unit: unit}, nil
}

func newQuoteNewCmd(app *App) *cobra.Command {
	var customer, title, status, notes string
	var taxRate float64
	var itemFlags []string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Compose a quote (interactive editor, or flags)",
		RunE: func(cmd *cobra.Command, args []string) error {
			// No flags on a terminal: open the editor, which resumes
			// the autosaved draft or a pending edit.
			if customer == "" && len(itemFlags) == 0 {
				if app.IsInteractive != nil && app.IsInteractive() {
					return runEditor(app)
				}
				return fmt.Errorf("no terminal detected: pass --customer and --item, e.g. --item \"Labor:2:120\"")
			}

			customerID, err := resolveCustomerID(app, customer)
			if err != nil {
				return err
			}
			items := make([]domain.LineItem, 0, len(itemFlags))
			for _, f := range itemFlags {
				it, err := parseItemFlag(f)
				if err != nil {
					return err
				}
				items = append(items, it)
			}

			q, err := app.Quotes.Save(service.QuoteInput{
				CustomerID: customerID,
				Title:      title,
				Status:     domain.SafeStatus(status),
				Notes:      notes,
				TaxRate:    taxRate,
				Items:      items,
			}, "")
			if err != nil {
				return err
			}
			fmt.Printf("Saved quote %s [%s]\n", q.Title, q.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&customer, "customer", "", "Customer (ID, ID prefix, or exact name)")
	cmd.Flags().StringVar(&title, "title", "", "Quote title (guessed from first item when empty)")
	cmd.Flags().StringVar(&status, "status", "Draft", "Status (Draft|Sent|Approved|Paid)")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")
	cmd.Flags().Float64Var(&taxRate, "tax", domain.DefaultTaxRate, "Tax rate, e.g. 0.09 = 9%")
	cmd.Flags().StringArrayVar(&itemFlags, "item", nil, "Line item as name:qty:unit (repeatable)")

	return cmd
}

func newQuoteListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved quotes with totals and follow-ups",
		RunE: func(cmd *cobra.Command, args []string) error {
			quotes := app.Quotes.List()
			if len(quotes) == 0 {
				fmt.Println("No saved quotes yet.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatQuoteList(quotes))
			return nil
		},
	}
}

func newQuoteShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one quote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveQuoteID(app, args[0])
			if err != nil {
				return err
			}
			q, _ := app.Quotes.FindByID(id)
			fmt.Printf("%s\n", formatter.FormatQuoteCard(q))
			return nil
		},
	}
}

func newQuoteEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit ID",
		Short: "Edit a saved quote in the editor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveQuoteID(app, args[0])
			if err != nil {
				return err
			}
			app.Drafts.SetEditPointer(id)
			if app.IsInteractive != nil && app.IsInteractive() {
				return runEditor(app)
			}
			fmt.Printf("Quote %s marked for editing; run `shopquote quote new` in a terminal to continue.\n", shortID(id))
			return nil
		},
	}
}

func newQuoteRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a quote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveQuoteID(app, args[0])
			if err != nil {
				return err
			}
			app.Quotes.Remove(id)
			fmt.Printf("Removed quote %s\n", shortID(id))
			return nil
		},
	}
}

func newQuotePrintCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "print ID",
		Short: "Export a quote as a PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveQuoteID(app, args[0])
			if err != nil {
				return err
			}
			q, _ := app.Quotes.FindByID(id)

			data, err := pdf.Generate(q)
			if err != nil {
				return err
			}
			if out == "" {
				out = fmt.Sprintf("quote-%s.pdf", q.DisplayID())
			}
			if err := os.WriteFile(out, data, 0644); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			fmt.Printf("Wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Output file (default quote-<id>.pdf)")

	return cmd
}

func newQuoteSummaryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "summary ID",
		Short: "Print a copy-paste text summary of a quote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveQuoteID(app, args[0])
			if err != nil {
				return err
			}
			q, _ := app.Quotes.FindByID(id)
			fmt.Println(formatter.FormatSummary(q))
			return nil
		},
	}
}

func newQuoteFollowupsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "followups ID",
		Short: "Show the Day 1/3/7 follow-up dates for a quote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveQuoteID(app, args[0])
			if err != nil {
				return err
			}
			q, _ := app.Quotes.FindByID(id)
			fmt.Printf("%s %s\n%s", formatter.Bold(q.Title), formatter.StatusBadge(q.Status), formatter.FormatFollowUps(q.CreatedAt))
			return nil
		},
	}
}

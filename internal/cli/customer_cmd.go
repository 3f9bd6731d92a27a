package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"shopquote/internal/cli/formatter"
)

func newCustomerCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customer",
		Short: "Manage customers",
	}

	cmd.AddCommand(
		newCustomerAddCmd(app),
		newCustomerListCmd(app),
		newCustomerRemoveCmd(app),
	)

	return cmd
}

func newCustomerAddCmd(app *App) *cobra.Command {
	var name, phone, email string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a customer",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Customers.Add(name, phone, email)
			if err != nil {
				return err
			}
			fmt.Printf("Added customer %s [%s]\n", c.Name, shortID(c.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Customer name")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newCustomerListCmd(app *App) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List customers",
		RunE: func(cmd *cobra.Command, args []string) error {
			customers := app.Customers.Search(search)
			if len(customers) == 0 {
				fmt.Println("No customers yet.")
				return nil
			}
			fmt.Printf("%s", formatter.FormatCustomerList(customers))
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Filter by name, phone, or email")

	return cmd
}

func newCustomerRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveCustomerID(app, args[0])
			if err != nil {
				return err
			}
			app.Customers.Remove(id)
			fmt.Printf("Removed customer %s\n", shortID(id))
			return nil
		},
	}
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUnlockCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "unlock CODE",
		Short: "Unlock the tool with your access code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Access.Unlock(args[0]); err != nil {
				return err
			}
			fmt.Println("Unlocked. You're good to go.")
			return nil
		},
	}
}

func newLockCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "lock",
		Short: "Re-lock the tool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Access.Lock()
			fmt.Println("Locked.")
			return nil
		},
	}
}

package user

import (
	"fmt"

	"github.com/spf13/cobra"

	"scribepad/internal/app"
	"scribepad/internal/config"
)

// Cmd represents the user command
var Cmd = &cobra.Command{
	Use:   "user",
	Short: "Manage credential store accounts",
}

var addCmd = &cobra.Command{
	Use:   "add <username> <password>",
	Short: "Create an account directly in the credential store",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load("")
		if err != nil {
			return fmt.Errorf("load configuration: %w", err)
		}

		dao, err := app.ProvideUserDAO(cfg)
		if err != nil {
			return fmt.Errorf("open credential store: %w", err)
		}
		defer dao.Close()

		svc := app.ProvideAuthService(dao, app.ProvideTokenManager(cfg), app.ProvideLogger())
		if err := svc.Signup(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}

		fmt.Printf("User %s created\n", args[0])
		return nil
	},
}

func init() {
	Cmd.AddCommand(addCmd)
}

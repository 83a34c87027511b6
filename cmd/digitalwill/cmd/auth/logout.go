package auth

import (
	"github.com/spf13/cobra"

	"digitalwill/internal/app/shell"
	"digitalwill/internal/app/workspace"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and forget the stored session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ws := workspace.MustFrom(cmd.Context())

		err := ws.Session().Logout(cmd.Context())
		shell.PrintFeedback(cmd.OutOrStdout(), ws.Drain())
		return err
	},
}

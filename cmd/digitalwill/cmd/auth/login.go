package auth

import (
	"bufio"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"digitalwill/internal/app/shell"
	"digitalwill/internal/app/workspace"
	"digitalwill/internal/domain/session"
)

var loginEmail string

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and remember the session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ws := workspace.MustFrom(cmd.Context())
		out := cmd.OutOrStdout()
		src := cmd.InOrStdin()
		in := bufio.NewReader(src)

		email := loginEmail
		if email == "" {
			var err error
			if email, err = prompt(out, in, "Email: "); err != nil {
				return err
			}
		}
		pass, err := password(out, in, src)
		if err != nil {
			return err
		}

		fmt.Fprintln(out, "Signing in...")
		_, err = ws.Session().Login(cmd.Context(), email, pass)
		shell.PrintFeedback(out, ws.Drain())
		if errors.Is(err, session.ErrInvalidCredentials) {
			return nil
		}
		return err
	},
}

func init() {
	LoginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "account email")
}

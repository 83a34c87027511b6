package auth

import (
	"bufio"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"digitalwill/internal/app/shell"
	"digitalwill/internal/app/workspace"
	"digitalwill/internal/domain/credential"
	"digitalwill/internal/domain/session"
)

var RegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account",
	Long: `Create an account. Registering does not sign you in.

Accounts live in memory for the lifetime of the process; use the shell or
the HTTP server to register and then sign in.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ws := workspace.MustFrom(cmd.Context())
		out := cmd.OutOrStdout()
		src := cmd.InOrStdin()
		in := bufio.NewReader(src)

		name, err := prompt(out, in, "Full name: ")
		if err != nil {
			return err
		}
		email, err := prompt(out, in, "Email: ")
		if err != nil {
			return err
		}
		pass, err := password(out, in, src)
		if err != nil {
			return err
		}

		fmt.Fprintln(out, "Creating account...")
		_, err = ws.Session().Register(cmd.Context(), name, email, pass)
		shell.PrintFeedback(out, ws.Drain())
		if errors.Is(err, session.ErrDuplicateRegistration) || errors.Is(err, credential.ErrInvalidInput) {
			return nil
		}
		return err
	},
}

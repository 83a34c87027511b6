package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"digitalwill/internal/app/shell"
	"digitalwill/internal/app/workspace"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		sh := shell.New(workspace.MustFrom(ctx), os.Stdin, cmd.OutOrStdout(), log)
		if err := sh.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

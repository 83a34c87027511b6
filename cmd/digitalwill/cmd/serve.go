package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"digitalwill/internal/app/server/api"
	"digitalwill/internal/app/workspace"
)

const shutdownTimeout = 5 * time.Second

var address string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the workspace over HTTP",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ws := workspace.MustFrom(cmd.Context())

		addr := cfg.Server.RunAddress
		if address != "" {
			addr = address
		}

		srv := &http.Server{
			Addr:              addr,
			Handler:           api.New(ws, log),
			ReadHeaderTimeout: 5 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			log.Info("server started", "address", addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err, ok := <-errCh:
			if ok {
				return fmt.Errorf("listen: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().StringVarP(&address, "address", "a", "", "listen address (overrides RUN_ADDRESS)")
}

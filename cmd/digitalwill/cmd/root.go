package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slog"

	"digitalwill/cmd/digitalwill/cmd/auth"
	"digitalwill/internal/app/workspace"
	"digitalwill/internal/config"
	"digitalwill/internal/utils/logger"
)

var (
	cfgFile    string
	debug      bool
	storageURI string

	cfg *config.Config
	log *slog.Logger
	ws  *workspace.Workspace
)

var rootCmd = &cobra.Command{
	Use:   "digitalwill",
	Short: "Digital Will - plan what happens to your digital estate",
	Long: `Digital Will keeps track of the documents, crypto assets, nominees and
trusted contacts that make up a digital estate.

The signed-in session is remembered between runs in the configured storage.`,
	PersistentPreRunE:  setupApp,
	PersistentPostRunE: teardownApp,
	SilenceUsage:       true,
	SilenceErrors:      true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if storageURI != "" {
		cfg.Storage.URI = storageURI
	}
	level := cfg.Logger.LogLevel
	if debug {
		level = "debug"
	}
	log = logger.NewLevel(cfg.Env, level)

	ws, err = workspace.Open(cmd.Context(), cfg, log)
	if err != nil {
		return fmt.Errorf("open workspace: %w", err)
	}

	cmd.SetContext(workspace.With(cmd.Context(), ws))
	return nil
}

func teardownApp(_ *cobra.Command, _ []string) error {
	if ws == nil {
		return nil
	}
	return ws.Close()
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}

		viper.AddConfigPath(filepath.Join(home, ".digitalwill"))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return config.Load(viper.GetViper())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.digitalwill/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&storageURI, "storage", "", "session storage URI (memory://, sqlite3://, postgres://, redis://)")

	rootCmd.AddCommand(serveCmd, shellCmd, auth.AuthCmd)
}

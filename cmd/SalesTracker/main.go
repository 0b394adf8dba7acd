package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sebuszqo/SalesTracker/internal/config"
	"github.com/sebuszqo/SalesTracker/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	v       = viper.New()
	cfg     config.Config
	rootCmd = &cobra.Command{
		Use:   "salestracker",
		Short: "Sales tracking REST API backed by PostgreSQL",
		Long: `salestracker serves categories and sales over HTTP, creating the schema and
sample data on startup, and exposes Prometheus metrics at /metrics.

Without a subcommand it runs the server.`,
		PersistentPreRunE: initConfig,
		RunE:              runServe,
		SilenceUsage:      true,
	}
)

func init() {
	// Global flags
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")
	rootCmd.Flags().Int("port", 3000, "HTTP listen port")

	_ = v.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = v.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(cmd *cobra.Command, _ []string) error {
	config.LoadEnvFile()

	if f := cmd.Flags().Lookup("port"); f != nil {
		if err := v.BindPFlag("port", f); err != nil {
			return fmt.Errorf("failed to bind port flag: %w", err)
		}
	}

	loaded, err := config.Load(v)
	if err != nil {
		return err
	}
	cfg = loaded

	if err := logging.Setup(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	return nil
}

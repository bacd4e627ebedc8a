package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/eringen/gamesite"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site",
	Long: `Serve loads content, builds the search index and starts the HTTP server.
In development mode the structure cache is cleared periodically and files
under the config directory are watched, so edits show up on the next request.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := appConfig.siteConfig()
		logger := gamesite.NewLogger(os.Stderr, cfg.Mode, cfg.LogLevel)

		app := gamesite.New(cfg,
			gamesite.WithLogger(logger),
			gamesite.WithStaticDir(appConfig.StaticDir),
		)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := app.Start(ctx); err != nil {
			logger.Error("server failed", "error", err)
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (overrides config)")
	serveCmd.Flags().String("mode", "", "development or production (overrides config)")
}

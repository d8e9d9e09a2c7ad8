package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/gridview"
	httpAdapter "github.com/aretw0/gridview/internal/adapters/http"
	"github.com/aretw0/gridview/internal/config"
	"github.com/aretw0/gridview/internal/logging"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard HTTP server",
	Long: `Loads the dataset, applies the renewable filter and serves the
interactive dashboard plus its JSON API over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		logger := logging.New(logging.ParseLevel(mustString(cmd, "log-level")))

		cfg, err := config.Load(configPath)
		if err != nil {
			logger.Error("failed to load config", "error", err)
			os.Exit(1)
		}
		// Flags win over the config file.
		if cmd.Flags().Changed("addr") || cfg.Addr == "" {
			cfg.Addr = mustString(cmd, "addr")
		}
		if cmd.Flags().Changed("data") || cfg.Data == "" {
			cfg.Data = mustString(cmd, "data")
		}

		// Any load error is fatal: never serve a partial dataset.
		dashboard, err := gridview.New(cfg.Data,
			gridview.WithLogger(logger),
			gridview.WithPalette(cfg.Palette),
		)
		if err != nil {
			logger.Error("failed to initialize dashboard", "error", err)
			os.Exit(1)
		}

		handler := httpAdapter.NewHandler(dashboard, logger)

		srv := &http.Server{
			Addr:    cfg.Addr,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			logger.Info("starting gridview server", "addr", srv.Addr, "data", cfg.Data)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			logger.Error("server error", "error", err)
			os.Exit(1)

		case sig := <-shutdown:
			logger.Info("starting shutdown", "signal", sig.String())

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("graceful shutdown did not complete", "error", err)
				if err := srv.Close(); err != nil {
					logger.Error("error killing server", "error", err)
				}
			}
			logger.Info("gridview server stopped gracefully")
		}
	},
}

func mustString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", ":8080", "Address to listen on")
	serveCmd.Flags().String("config", "gridview.yaml", "Path of the optional config file")
	serveCmd.Flags().String("log-level", "info", "Log level: debug, info, warn, error")
}

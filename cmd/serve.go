package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/learnsite/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the learning site over HTTP",
	Long:  `Starts the learnsite HTTP server: course viewer, tutorial pages, toggle actions, a small JSON API and the static assets.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if serveAddr != "" {
			cfg.Addr = serveAddr
		}

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		a, err := newApp(ctx, cfg, "")
		if err != nil {
			return err
		}
		defer a.Close()

		srv := server.New(server.Config{
			Addr:     cfg.Addr,
			AllowAll: cfg.AllowAllOrigins,
		}, a.pages, a.renderer, a.assets, a.log)

		go func() {
			<-ctx.Done()
			a.log.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				a.log.Error("shutdown", "error", err)
			}
		}()

		a.log.Info("learnsite starting",
			"version", Version,
			"addr", cfg.Addr,
			"content", contentLocation(cfg.ContentDir, cfg.ContentURL),
			"store", string(cfg.Store.Driver),
		)

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving: %w", err)
		}
		return nil
	},
}

func contentLocation(dir, url string) string {
	if url != "" {
		return url
	}
	return dir
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "address to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

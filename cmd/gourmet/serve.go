package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"gourmet-search/internal/api"
	"gourmet-search/internal/gourmet"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the shop search over HTTP.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		router := api.NewRouter(gourmet.NewClient(cfg.Gourmet), cfg)
		server := &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
			Handler: router,
		}

		// Start the server in a goroutine
		serveErr := make(chan error, 1)
		go func() {
			log.Printf("HTTP server starting on port %d", cfg.Server.Port)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serveErr <- err
			}
			close(serveErr)
		}()

		// Block until a signal is received or the server dies.
		select {
		case err := <-serveErr:
			return fmt.Errorf("HTTP server ListenAndServe: %w", err)
		case <-cmd.Context().Done():
		}
		log.Println("Shutdown signal received, stopping server...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("HTTP server Shutdown: %w", err)
		}

		log.Println("Server gracefully stopped")
		return nil
	},
}

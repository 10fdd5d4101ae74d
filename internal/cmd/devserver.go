package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/gravitrone/classdesk/internal/api"
	"github.com/gravitrone/classdesk/internal/devserver"
)

const shutdownTimeout = 5 * time.Second

// DevServerOptions configures the in-memory API server.
type DevServerOptions struct {
	Addr     string
	Username string
	Password string
	Seed     bool
}

// sampleClassrooms populates a fresh store when --seed is set.
var sampleClassrooms = []api.ClassroomCreate{
	{Name: "CS3560 Spring 2022-2023", BeginDate: "2023-01-01", EndDate: "2023-05-05"},
	{Name: "CS2400 Fall 2023", BeginDate: "2023-08-28", EndDate: "2023-12-15"},
}

// NewDevServer builds the handler described by opts, seeding it when asked.
func NewDevServer(opts DevServerOptions, logger *slog.Logger) (*devserver.Server, error) {
	srv := devserver.NewServer(nil, devserver.Credentials{Username: opts.Username, Password: opts.Password}, logger)
	if !opts.Seed {
		return srv, nil
	}
	for _, c := range sampleClassrooms {
		if _, err := srv.Store().Create(c); err != nil {
			return nil, fmt.Errorf("seed %q: %w", c.Name, err)
		}
	}
	return srv, nil
}

// RunDevServer serves until ctx is cancelled, then shuts down gracefully.
func RunDevServer(ctx context.Context, opts DevServerOptions, logger *slog.Logger) error {
	handler, err := NewDevServer(opts, logger)
	if err != nil {
		return err
	}
	httpServer := &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("dev server listening", "addr", opts.Addr, "user", opts.Username)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logger.Info("dev server shutting down")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// DevServerCmd returns the `classdesk dev-server` command.
func DevServerCmd() *cobra.Command {
	opts := DevServerOptions{}
	cmd := &cobra.Command{
		Use:   "dev-server",
		Short: "Run an in-memory classroom API for local development",
		RunE: func(c *cobra.Command, _ []string) error {
			if opts.Username == "" {
				return fmt.Errorf("--user is required")
			}
			logger := slog.Default()
			ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return RunDevServer(ctx, opts, logger)
		},
	}
	cmd.Flags().StringVar(&opts.Addr, "addr", ":8000", "listen address")
	cmd.Flags().StringVar(&opts.Username, "user", "johndoe", "accepted username")
	cmd.Flags().StringVar(&opts.Password, "password", "secret", "accepted password")
	cmd.Flags().BoolVar(&opts.Seed, "seed", false, "start with sample classrooms")
	return cmd
}

package controllers

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/scmbridge/config"
	"github.com/rios0rios0/scmbridge/internal/domain/commands"
	"github.com/rios0rios0/scmbridge/internal/domain/entities"
	"github.com/rios0rios0/scmbridge/internal/infrastructure/metrics"
	"github.com/rios0rios0/scmbridge/internal/infrastructure/repositories/memory"
	"github.com/rios0rios0/scmbridge/internal/infrastructure/server"
)

const shutdownTimeout = 10 * time.Second

// ServeController handles the "serve" subcommand.
type ServeController struct {
	command   commands.Workspace
	service   commands.SCM
	statusBar *memory.StatusBarRepository
	metrics   *metrics.SCMMetrics
}

// NewServeController creates a new ServeController.
func NewServeController(
	command commands.Workspace,
	service commands.SCM,
	statusBar *memory.StatusBarRepository,
	scmMetrics *metrics.SCMMetrics,
) *ServeController {
	return &ServeController{
		command:   command,
		service:   service,
		statusBar: statusBar,
		metrics:   scmMetrics,
	}
}

// GetBind returns the Cobra command metadata for the serve controller.
func (it *ServeController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "serve",
		Short: "Serve the SCM host API over HTTP",
		Long: `Register every provider of the workspace configuration and expose
the repositories, their selection and input boxes, the status bar and
Prometheus metrics over HTTP until interrupted.`,
	}
}

// Execute runs the HTTP server until SIGINT or SIGTERM.
func (it *ServeController) Execute(cmd *cobra.Command, _ []string) {
	applyVerbosity(cmd)

	cfg, err := loadConfig(cmd)
	if err != nil {
		logger.Error(err)
		return
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Server.Address = addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	listener, err := net.Listen("tcp", cfg.Server.Address)
	if err != nil {
		logger.Errorf("Failed to listen on %s: %v", cfg.Server.Address, err)
		return
	}

	if err = it.serve(ctx, cfg, listener); err != nil {
		logger.Errorf("Serve failed: %v", err)
	}
}

// serve registers the workspace and answers HTTP requests on listener until
// ctx is done. The listener is closed on return.
func (it *ServeController) serve(ctx context.Context, cfg *config.Config, listener net.Listener) error {
	observation := it.metrics.Observe(it.service)
	defer observation.Dispose()
	it.statusBar.OnUpsert(it.metrics.CountStatusBarUpdate)

	if err := it.command.Execute(ctx, cfg); err != nil {
		_ = listener.Close()
		return err
	}
	defer it.command.Close()

	//nolint:exhaustruct // Minimal Server initialization with required fields only
	httpServer := &http.Server{
		Handler:           server.NewHandler(it.service, it.statusBar, it.metrics).Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Infof("Listening on %s", listener.Addr())
		serveErr <- httpServer.Serve(listener)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("HTTP server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown failed: %w", err)
	}
	return nil
}

// AddFlags adds the serve-specific flags to the given Cobra command.
func (it *ServeController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("addr", "", "Listen address (overrides server.address from the config)")
}

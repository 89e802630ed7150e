package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rpgo/pension-calculator/internal/api"
	"github.com/rpgo/pension-calculator/internal/config"
	"github.com/spf13/cobra"
)

var flagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calculator over HTTP",
	Long: `Serve the estimate API. Settings come from the environment:
  SSCALC_ADDR, SSCALC_ALLOWED_ORIGINS, SSCALC_READ_TIMEOUT,
  SSCALC_WRITE_TIMEOUT, SSCALC_IDLE_TIMEOUT, SSCALC_SHUTDOWN_GRACE`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "Listen address, overrides SSCALC_ADDR")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	serverCfg, err := config.LoadServerConfig()
	if err != nil {
		return err
	}
	if flagAddr != "" {
		serverCfg.Addr = flagAddr
	}
	cfg, err := loadScenario(cmd)
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), flagVerbose)
	srv := api.NewServer(serverCfg, api.NewHandler(cfg.Formula, cfg.EmptyWindow, logger))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		fmt.Fprintf(cmd.ErrOrStderr(), "listening on %s\n", serverCfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	fmt.Fprintln(cmd.ErrOrStderr(), "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverCfg.ShutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}

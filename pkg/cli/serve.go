package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/baysgaia/cashmax/pkg/cli/config"
	httpctrl "github.com/baysgaia/cashmax/pkg/controller/http"
	"github.com/baysgaia/cashmax/pkg/repository/seed"
	"github.com/baysgaia/cashmax/pkg/service/worker"
	"github.com/baysgaia/cashmax/pkg/usecase"
	"github.com/baysgaia/cashmax/pkg/utils/logging"
)

const shutdownTimeout = 10 * time.Second

func cmdServe(version string) *cli.Command {
	var addr string
	var seedData bool
	var constCfg config.Constants
	var repoCfg config.Repository
	var slackCfg config.Slack
	var sentryCfg config.Sentry

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("CASHMAX_ADDR"),
			Destination: &addr,
		},
		&cli.BoolFlag{
			Name:        "seed",
			Usage:       "Load the initial dataset into the repository on startup",
			Value:       true,
			Sources:     cli.EnvVars("CASHMAX_SEED"),
			Destination: &seedData,
		},
	}

	// Add shared config flags
	flags = append(flags, constCfg.Flags()...)
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			sentryCloser, err := sentryCfg.Configure(version)
			if err != nil {
				return goerr.Wrap(err, "failed to configure sentry")
			}
			defer sentryCloser()

			constants, err := constCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load business constants")
			}

			// Initialize repository based on backend type
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logger.Error("failed to close repository", "error", err.Error())
				}
			}()

			if seedData {
				if err := seed.Load(ctx, repo, time.Now()); err != nil {
					return goerr.Wrap(err, "failed to seed repository")
				}
				logger.Info("Initial dataset loaded")
			}

			notifier, err := slackCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure Slack notifier")
			}

			uc := usecase.New(repo,
				usecase.WithNotifier(notifier),
				usecase.WithConstants(constants),
			)

			scheduler := worker.NewScheduler(uc)
			if err := scheduler.Start(ctx); err != nil {
				return goerr.Wrap(err, "failed to start scheduler")
			}
			defer scheduler.Stop()

			srv := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc),
				ReadHeaderTimeout: 10 * time.Second,
			}

			sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				logger.Info("HTTP server starting", "addr", addr)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- goerr.Wrap(err, "HTTP server failed")
				}
			}()

			select {
			case err := <-errCh:
				return err
			case <-sigCtx.Done():
				logger.Info("Shutdown signal received")
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown HTTP server")
			}

			logger.Info("HTTP server stopped")
			return nil
		},
	}
}

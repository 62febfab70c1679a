package main

import (
	"bskybridge/internal/api"
	"bskybridge/internal/api/handler/v1handler"
	"bskybridge/internal/bridge"
	"bskybridge/internal/config"
	"bskybridge/internal/worker"
	"bskybridge/pkg/logger"
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(ctx, deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func setupWorker(
	ctx context.Context,
	cfg *config.Config,
	dbPool *pgxpool.Pool,
	processor bridge.Processor,
) (*river.Client[pgx.Tx], func(ctx context.Context)) {
	logger.Info(ctx, "starting river queue workers...", zap.Int("maxWorkers", cfg.Queue.MaxWorkers))
	riverClient, err := worker.Start(ctx, dbPool, processor, worker.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not start river queue workers", zap.Error(err))
	}

	return riverClient, func(ctx context.Context) {
		logger.Info(ctx, "stopping river queue workers...")
		if err := riverClient.Stop(ctx); err != nil {
			logger.Error(ctx, "could not stop river queue client", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			mp, err := api.NewMeterProvider()
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}
			otel.SetMeterProvider(mp)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			b, err := newBridge(ctx, cfg, strg, nil)
			if err != nil {
				logger.Fatal(ctx, "could not create bridge", zap.Error(err))
			}

			riverClient, stopWorker := setupWorker(ctx, cfg, strg.Pool, b)

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps:        v1handler.Deps{Bridge: b},
				RiverClient: riverClient,
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			stopWorker(shutdownCtx)
			if err := mp.Shutdown(shutdownCtx); err != nil {
				logger.Warn(shutdownCtx, "could not shut down meter provider", zap.Error(err))
			}
		},
	}

	return cmd
}

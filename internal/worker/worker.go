// Package worker runs the River client that processes queued batches.
package worker

import (
	"bskybridge/internal/bridge"
	"bskybridge/internal/config"
	"bskybridge/pkg/logger"
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
)

// Options configure the River client.
type Options struct {
	// MaxWorkers is the number of batches processed concurrently. Batches
	// posted concurrently interleave in the feed, so it defaults to 1.
	MaxWorkers int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{MaxWorkers: cfg.Queue.MaxWorkers}
}

// NewClient creates a River client with the batch worker registered. It does
// not start it.
func NewClient(ctx context.Context, dbPool *pgxpool.Pool, processor bridge.Processor, opts Options) (*river.Client[pgx.Tx], error) {
	maxWorkers := opts.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = 1
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, NewPostBatchWorker(processor))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers: workers,
		Logger:  logger.Slog(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	return riverClient, nil
}

// Start creates and starts a River client processing batch jobs.
func Start(ctx context.Context, dbPool *pgxpool.Pool, processor bridge.Processor, opts Options) (*river.Client[pgx.Tx], error) {
	riverClient, err := NewClient(ctx, dbPool, processor, opts)
	if err != nil {
		return nil, err
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}

package worker

import (
	"bskybridge/internal/bridge"
	"bskybridge/pkg/bluesky"
	"bskybridge/pkg/logger"
	"bskybridge/pkg/serrors"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// defaultRateLimitWait is used when a rate-limited response carries no reset
// time.
const defaultRateLimitWait = time.Minute

// PostBatchWorker is a River worker that publishes a batch of messages using
// a bridge.Processor.
//
// # Rate limiting
//
// When the PDS rejects a post with HTTP 429 the batch is snoozed until the
// advertised reset time. The worker remembers that time, so batches picked
// up before it elapses are snoozed straight away instead of authenticating
// and hitting the limit again. The remembered reset only ever moves forward.
//
// Error handling: credential and authentication failures cancel the job, as
// retrying cannot fix them. Other errors are returned so River retries the
// job according to its MaxAttempts. Messages posted before a failure are
// skipped on retry when deliveries are tracked.
type PostBatchWorker struct {
	river.WorkerDefaults[bridge.PostBatchArgs]

	// processor publishes the batch.
	processor bridge.Processor
	// now is the clock used for rate-limit decisions.
	now func() time.Time

	// mu protects blockedUntil.
	mu sync.Mutex
	// blockedUntil is the latest rate-limit reset reported by the PDS.
	blockedUntil time.Time
}

// NewPostBatchWorker constructs a PostBatchWorker using the provided processor.
func NewPostBatchWorker(processor bridge.Processor) *PostBatchWorker {
	return &PostBatchWorker{
		processor: processor,
		now:       time.Now,
	}
}

// Work processes a single batch job and maps errors to River actions.
func (w *PostBatchWorker) Work(ctx context.Context, job *river.Job[bridge.PostBatchArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.Int("attempt", job.Attempt),
		zap.Int("messages", len(job.Args.Messages)))

	if wait := w.blockedFor(); wait > 0 {
		logger.Info(ctx, "rate limited, snoozing batch", zap.Duration("wait", wait))

		return river.JobSnooze(wait) //nolint: wrapcheck
	}

	res, err := w.processor.ProcessBatch(ctx, job.Args.Messages)
	if err != nil {
		logger.Error(ctx, "error in processing batch",
			zap.Int("posted", res.Posted),
			zap.Int("skipped", res.Skipped),
			zap.Error(err))

		switch {
		case errors.Is(err, serrors.ErrUnauthorized), errors.Is(err, serrors.ErrMissingField):
			return river.JobCancel(err) //nolint: wrapcheck
		case errors.Is(err, serrors.ErrRateLimited):
			return river.JobSnooze(w.rateLimited(err)) //nolint: wrapcheck
		}

		return fmt.Errorf("could not process batch: %w", err)
	}

	logger.Info(ctx, "batch processed successfully",
		zap.Int("posted", res.Posted),
		zap.Int("skipped", res.Skipped))

	return nil
}

// rateLimited records the reset time carried by err and returns how long to
// wait for it. Without a reset time it waits defaultRateLimitWait and
// remembers nothing.
func (w *PostBatchWorker) rateLimited(err error) time.Duration {
	var rlErr *bluesky.RateLimitError
	if !errors.As(err, &rlErr) || rlErr.Status.ResetAt.IsZero() {
		return defaultRateLimitWait
	}

	w.mu.Lock()
	if rlErr.Status.ResetAt.After(w.blockedUntil) {
		w.blockedUntil = rlErr.Status.ResetAt
	}
	w.mu.Unlock()

	return w.blockedFor()
}

// blockedFor returns how long until the remembered rate-limit reset, or zero.
func (w *PostBatchWorker) blockedFor() time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()

	dur := w.blockedUntil.Sub(w.now())
	if dur < 0 {
		return 0
	}

	return dur
}

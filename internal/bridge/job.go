package bridge

import (
	"bskybridge/pkg/domain"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// PostBatchKind is the River job kind of PostBatchArgs.
const PostBatchKind = "PostBatch"

// PostBatchArgs contains the arguments of a batch job submitted to River.
// The whole batch travels in one job so it is processed in order and fails
// as a unit.
type PostBatchArgs struct {
	// Messages are posted in this order.
	Messages []domain.Message `json:"messages"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
	// uniqueJobPeriod is the window in which an identical batch is considered
	// a duplicate.
	uniqueJobPeriod time.Duration
}

// Kind returns the River job kind used to register and dispatch the batch worker.
func (args PostBatchArgs) Kind() string { return PostBatchKind }

// InsertOpts returns the River options that control how the job is enqueued.
// An identical batch is not queued twice while one is still pending or
// running, or completed within uniqueJobPeriod.
func (args PostBatchArgs) InsertOpts() river.InsertOpts {
	opts := river.InsertOpts{
		MaxAttempts: args.maxAttempts,
	}
	if args.uniqueJobPeriod > 0 {
		opts.UniqueOpts = river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.uniqueJobPeriod,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		}
	}

	return opts
}

package storage

import (
	"context"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// JobStorage enqueues background jobs. Implementations persist the job into
// the underlying queue backend and participate in the surrounding
// transaction when there is one.
type JobStorage interface {
	// AddJob enqueues a new job with the given arguments. The result tells
	// whether the insert was skipped as a duplicate of a unique job.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (*rivertype.JobInsertResult, error)
}

// Package bridge republishes queue messages as Bluesky posts. It owns the
// batch semantics: credentials and a session are obtained once per batch,
// messages are posted strictly in order, and the first failure aborts the
// rest of the batch.
package bridge

import (
	"bskybridge/pkg/domain"
	"context"
)

// Result summarizes a processed batch.
type Result struct {
	// Total is the number of messages in the batch.
	Total int
	// Posted is the number of messages published by this run.
	Posted int
	// Skipped is the number of messages already delivered by an earlier run.
	Skipped int
}

// Enqueued describes a batch accepted for asynchronous processing.
type Enqueued struct {
	// JobID is the queue job processing the batch. It is zero when nothing
	// was left to enqueue.
	JobID int64
	// MessageIDs lists the IDs of the accepted messages in order, including
	// the ones generated for messages that had none.
	MessageIDs []string
	// AlreadyDelivered lists the IDs that were dropped because they already
	// have a delivery.
	AlreadyDelivered []string
	// Duplicate reports that an identical batch is already queued.
	Duplicate bool
}

// Processor publishes a batch of messages.
//
//go:generate mockgen -package mockbridge -source=interface.go -destination=mock/mockbridge.go *
type Processor interface {
	// ProcessBatch posts messages in order. Credentials or session failures
	// abort before any message is attempted. The first failed post aborts
	// the batch and is returned wrapped with the message ID.
	ProcessBatch(ctx context.Context, messages []domain.Message) (Result, error)
}

// Bridge is the full service used by the API: synchronous processing plus
// enqueueing and delivery listing.
type Bridge interface {
	Processor

	// Enqueue validates messages, assigns IDs to the ones missing one and
	// queues them as a single batch job.
	Enqueue(ctx context.Context, messages []domain.Message) (*Enqueued, error)
	// Deliveries returns a page of deliveries, newest first. cursor is the
	// opaque value returned by a previous call, or empty.
	Deliveries(ctx context.Context, cursor string, limit uint) ([]domain.Delivery, string, error)
}

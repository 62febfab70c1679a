package storage

import (
	"bskybridge/pkg/domain"
	"context"
	"time"
)

// Cursor is a position in the delivery log, ordered by CreatedAt then ID,
// both descending. A zero ID positions before every delivery created at
// CreatedAt.
type Cursor struct {
	CreatedAt time.Time
	ID        domain.DeliveryID
}

// Deliveries groups a page of deliveries together with an optional
// NextCursor used for pagination.
type Deliveries struct {
	// Deliveries contains the current page, newest first.
	Deliveries []domain.Delivery
	// NextCursor is the cursor of the next page, nil on the last page.
	NextCursor *Cursor
}

// DeliveryStorage persists the log of published posts.
type DeliveryStorage interface {
	// StoreDelivery records a published post. Storing a second delivery for
	// the same message ID keeps the first one, which is returned.
	StoreDelivery(ctx context.Context, delivery domain.Delivery) (*domain.Delivery, error)
	// DeliveryByMessageID returns the delivery of a message, or nil when the
	// message was never delivered.
	DeliveryByMessageID(ctx context.Context, messageID string) (*domain.Delivery, error)
	// DeliveredMessageIDs returns the subset of messageIDs that already have
	// a delivery.
	DeliveredMessageIDs(ctx context.Context, messageIDs ...string) (map[string]bool, error)
	// Deliveries returns a page of deliveries after the optional cursor,
	// newest first. Deliveries sharing a timestamp are never skipped.
	Deliveries(ctx context.Context, cursor *Cursor, limit uint) (Deliveries, error)
}

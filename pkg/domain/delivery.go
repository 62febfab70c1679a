package domain

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryID uniquely identifies a delivery record.
// It wraps uuid.UUID to provide type safety at the domain layer.
type DeliveryID uuid.UUID

func (id DeliveryID) String() string { return uuid.UUID(id).String() }

// MarshalText encodes the ID in its canonical UUID form.
func (id DeliveryID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText() //nolint: wrapcheck
}

// UnmarshalText parses a canonical UUID.
func (id *DeliveryID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(b) //nolint: wrapcheck
}

// Delivery records a message that was successfully published as a post.
type Delivery struct {
	// ID is the unique identifier of the delivery.
	ID DeliveryID `json:"id"`
	// MessageID is the queue message identifier the post was built from.
	MessageID string `json:"messageId"`

	// PostURI is the AT-URI of the created record.
	PostURI string `json:"postUri"`
	// PostCID is the content identifier of the created record.
	PostCID string `json:"postCid"`
	// Text is the post text as published, after normalization.
	Text string `json:"text"`
	// Truncated reports whether the message body had to be shortened.
	Truncated bool `json:"truncated"`
	// LinkCount is the number of link facets attached to the post.
	LinkCount int `json:"linkCount"`

	// CreatedAt is when the delivery was recorded.
	CreatedAt time.Time `json:"createdAt"`
}

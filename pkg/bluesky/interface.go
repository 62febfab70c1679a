// Package bluesky defines the contract the bridge needs from a Bluesky
// (AT Protocol) personal data server: open a session and create post records.
package bluesky

import (
	"bskybridge/pkg/richtext"
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultPDS is the personal data server used when none is configured.
const DefaultPDS = "https://bsky.social"

// Session is an authenticated session returned by createSession.
type Session struct {
	AccessJwt string // AccessJwt is the bearer token for subsequent calls.
	DID       string // DID is the account's decentralized identifier, used as the repo.
	Handle    string // Handle is the account handle, informational only.
}

// ExpiresAt reads the exp claim of the access token without verifying its
// signature. The PDS is the only party that can verify it; the bridge only
// needs to know when to stop reusing it.
func (s Session) ExpiresAt() (time.Time, error) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.AccessJwt, &claims); err != nil {
		return time.Time{}, fmt.Errorf("could not parse access token: %w", err)
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, nil
	}

	return claims.ExpiresAt.Time, nil
}

// RecordRef points at a record created in a repo.
type RecordRef struct {
	URI string // URI is the AT-URI of the record.
	CID string // CID is the content identifier of the record.
}

// RateLimitStatus describes the rate-limit headers returned by the PDS.
type RateLimitStatus struct {
	Limit     int       // Limit is the total number of allowed requests in the current window.
	Remaining int       // Remaining indicates how many requests are left in the current window.
	ResetAt   time.Time // ResetAt is when the rate-limit window resets.
}

// RateLimitError carries the rate-limit status of a rejected request. It is
// wrapped in a serrors.ErrRateLimited error.
type RateLimitError struct {
	Status RateLimitStatus
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited until %s", e.Status.ResetAt.Format(time.RFC3339))
}

// Client is the abstraction over a Bluesky PDS.
//
//go:generate mockgen -package mockbluesky -source=interface.go -destination=mock/mockbluesky.go *
type Client interface {
	// CreateSession authenticates with a handle (or DID/email) and an app
	// password.
	CreateSession(ctx context.Context, identifier, password string) (Session, error)
	// CreatePost writes record into the session's repo as an
	// app.bsky.feed.post.
	CreatePost(ctx context.Context, session Session, record richtext.PostRecord) (RecordRef, error)
}

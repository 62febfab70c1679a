// Package xrpc provides a bluesky.Client implementation that talks to a PDS
// over the AT Protocol XRPC HTTP API.
package xrpc

import (
	"bskybridge/pkg/bluesky"
	"bskybridge/pkg/richtext"
	"bskybridge/pkg/serrors"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	createSessionPath = "/xrpc/com.atproto.server.createSession"
	createRecordPath  = "/xrpc/com.atproto.repo.createRecord"
)

// Client talks to a PDS and fulfills the bluesky.Client interface. It is safe
// for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to the PDS
	pds        string       // pds is the base URL of the personal data server
}

// New constructs a Client for the PDS at pds. An empty pds means
// bluesky.DefaultPDS.
func New(httpClient *http.Client, pds string) *Client {
	if pds == "" {
		pds = bluesky.DefaultPDS
	}

	return &Client{
		httpClient: httpClient,
		pds:        strings.TrimRight(pds, "/"),
	}
}

// ParseRateLimit extracts the PDS rate-limit headers. Missing headers yield a
// zero status; RateLimit-Reset is a unix timestamp in seconds.
func ParseRateLimit(h http.Header) bluesky.RateLimitStatus {
	atoi := func(s string) int {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0
		}

		return n
	}

	var rl bluesky.RateLimitStatus
	rl.Limit = atoi(h.Get("RateLimit-Limit"))
	rl.Remaining = atoi(h.Get("RateLimit-Remaining"))
	if reset, err := strconv.ParseInt(h.Get("RateLimit-Reset"), 10, 64); err == nil {
		rl.ResetAt = time.Unix(reset, 0).UTC()
	}

	return rl
}

// CreateSession opens a session with com.atproto.server.createSession. A
// response without accessJwt or did is an serrors.ErrMissingField error.
func (c *Client) CreateSession(ctx context.Context, identifier, password string) (bluesky.Session, error) {
	req := struct {
		Identifier string `json:"identifier"`
		Password   string `json:"password"`
	}{Identifier: identifier, Password: password}

	var resp struct {
		AccessJwt *string `json:"accessJwt"`
		DID       *string `json:"did"`
		Handle    string  `json:"handle"`
	}
	if err := c.post(ctx, createSessionPath, "", req, &resp); err != nil {
		return bluesky.Session{}, fmt.Errorf("could not create session: %w", err)
	}

	switch {
	case resp.AccessJwt == nil || *resp.AccessJwt == "":
		return bluesky.Session{}, serrors.With(serrors.ErrMissingField, "createSession response has no accessJwt")
	case resp.DID == nil || *resp.DID == "":
		return bluesky.Session{}, serrors.With(serrors.ErrMissingField, "createSession response has no did")
	}

	return bluesky.Session{
		AccessJwt: *resp.AccessJwt,
		DID:       *resp.DID,
		Handle:    resp.Handle,
	}, nil
}

// CreatePost creates an app.bsky.feed.post record in the session's repo via
// com.atproto.repo.createRecord.
func (c *Client) CreatePost(
	ctx context.Context,
	session bluesky.Session,
	record richtext.PostRecord) (bluesky.RecordRef, error) {
	if session.AccessJwt == "" {
		return bluesky.RecordRef{}, serrors.With(serrors.ErrUnauthorized, "not authenticated: no access token")
	}

	req := struct {
		Repo       string              `json:"repo"`
		Collection string              `json:"collection"`
		Record     richtext.PostRecord `json:"record"`
	}{
		Repo:       session.DID,
		Collection: richtext.PostCollection,
		Record:     record,
	}

	var resp struct {
		URI string `json:"uri"`
		CID string `json:"cid"`
	}
	if err := c.post(ctx, createRecordPath, session.AccessJwt, req, &resp); err != nil {
		return bluesky.RecordRef{}, fmt.Errorf("could not create record: %w", err)
	}

	return bluesky.RecordRef{URI: resp.URI, CID: resp.CID}, nil
}

func (c *Client) post(ctx context.Context, path, token string, body any, result any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("could not marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.pds+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return serrors.Wrap(serrors.ErrUnavailable, err, "could not send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("could not read response body: %w", err)
	}

	if err := statusError(resp, b); err != nil {
		return err
	}

	if result != nil && len(b) > 0 {
		if err := json.Unmarshal(b, result); err != nil {
			return fmt.Errorf("could not decode response: %w", err)
		}
	}

	return nil
}

// statusError maps a non-2xx response to a semantic error.
func statusError(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	msg := strings.TrimSpace(string(body))
	var xe struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &xe) == nil && xe.Error != "" {
		msg = xe.Error
		if xe.Message != "" {
			msg += ": " + xe.Message
		}
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return serrors.Wrap(serrors.ErrRateLimited,
			&bluesky.RateLimitError{Status: ParseRateLimit(resp.Header)},
			"status %d: %s", resp.StatusCode, msg)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return serrors.With(serrors.ErrUnauthorized, "status %d: %s", resp.StatusCode, msg)
	case resp.StatusCode >= http.StatusInternalServerError:
		return serrors.With(serrors.ErrUnavailable, "status %d: %s", resp.StatusCode, msg)
	default:
		return serrors.With(serrors.ErrUpstream, "status %d: %s", resp.StatusCode, msg)
	}
}

// Ensure Client conforms to the bluesky.Client interface at compile time.
var _ bluesky.Client = (*Client)(nil)

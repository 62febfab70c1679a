package bluesky

import (
	"bskybridge/pkg/logger"
	"bskybridge/pkg/richtext"
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// sessionKey identifies a cached session.
type sessionKey struct {
	identifier string
	password   string
}

// CachedSessions is a Client that reuses sessions across calls to
// CreateSession until their access token is about to expire. Calls that fail
// are never cached. It is safe for concurrent use.
type CachedSessions struct {
	Client

	// margin is how long before expiry a session stops being reused.
	margin time.Duration
	now    func() time.Time

	mu       sync.Mutex
	sessions map[sessionKey]cachedSession
}

type cachedSession struct {
	session   Session
	expiresAt time.Time
}

// NewCachedSessions wraps client. Sessions are dropped margin before the
// expiry encoded in their access token. Tokens without an expiry are reused
// until the process exits.
func NewCachedSessions(client Client, margin time.Duration) *CachedSessions {
	return &CachedSessions{
		Client:   client,
		margin:   margin,
		now:      time.Now,
		sessions: make(map[sessionKey]cachedSession),
	}
}

// CreateSession returns a cached session for identifier when one is still
// valid, otherwise it opens a new one.
func (c *CachedSessions) CreateSession(ctx context.Context, identifier, password string) (Session, error) {
	key := sessionKey{identifier: identifier, password: password}

	c.mu.Lock()
	defer c.mu.Unlock()

	if cached, ok := c.sessions[key]; ok {
		if cached.expiresAt.IsZero() || c.now().Add(c.margin).Before(cached.expiresAt) {
			logger.Debug(ctx, "reusing bluesky session", zap.Time("expiresAt", cached.expiresAt))

			return cached.session, nil
		}
		delete(c.sessions, key)
	}

	session, err := c.Client.CreateSession(ctx, identifier, password)
	if err != nil {
		return Session{}, err //nolint: wrapcheck
	}

	expiresAt, err := session.ExpiresAt()
	if err != nil {
		// an opaque token is still usable for this call, just not reusable
		logger.Warn(ctx, "could not read session expiry, not caching", zap.Error(err))

		return session, nil
	}
	c.sessions[key] = cachedSession{session: session, expiresAt: expiresAt}

	return session, nil
}

// CreatePost forwards to the wrapped client.
func (c *CachedSessions) CreatePost(ctx context.Context, session Session, record richtext.PostRecord) (RecordRef, error) {
	return c.Client.CreatePost(ctx, session, record) //nolint: wrapcheck
}

var _ Client = (*CachedSessions)(nil)

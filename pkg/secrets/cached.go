package secrets

import (
	"bskybridge/pkg/logger"
	"context"
	"sync"
)

// Cached fetches credentials from the wrapped Provider once and serves the
// same value for the lifetime of the process. Failed fetches are not cached,
// so the next call retries. It is safe for concurrent use.
type Cached struct {
	provider Provider

	mu    sync.Mutex
	creds *Credentials
}

// NewCached wraps provider.
func NewCached(provider Provider) *Cached {
	return &Cached{provider: provider}
}

// Credentials implements Provider.
func (c *Cached) Credentials(ctx context.Context) (Credentials, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.creds != nil {
		return *c.creds, nil
	}

	creds, err := c.provider.Credentials(ctx)
	if err != nil {
		return Credentials{}, err //nolint: wrapcheck
	}
	logger.Debug(ctx, "credentials fetched and cached")
	c.creds = &creds

	return creds, nil
}

// Reset drops the cached credentials so the next call fetches them again.
func (c *Cached) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.creds = nil
}

var _ Provider = (*Cached)(nil)

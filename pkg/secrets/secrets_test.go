package secrets_test

import (
	"bskybridge/pkg/secrets"
	mocksecrets "bskybridge/pkg/secrets/mock"
	"bskybridge/pkg/serrors"
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestParseCredentials(t *testing.T) {
	creds, err := secrets.ParseCredentials([]byte(`{"bluesky_handle":"a.bsky.social","extra":{"x":[1,2]},"bluesky_password":"pw"}`))
	require.NoError(t, err)
	require.Equal(t, secrets.Credentials{Handle: "a.bsky.social", Password: "pw"}, creds)
}

func TestParseCredentials_missingFields(t *testing.T) {
	tests := map[string]struct {
		doc   string
		field string
	}{
		"no handle":    {`{"bluesky_password":"pw"}`, secrets.HandleField},
		"null handle":  {`{"bluesky_handle":null,"bluesky_password":"pw"}`, secrets.HandleField},
		"empty handle": {`{"bluesky_handle":"","bluesky_password":"pw"}`, secrets.HandleField},
		"no password":  {`{"bluesky_handle":"h"}`, secrets.PasswordField},
		"empty doc":    {`{}`, secrets.HandleField},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := secrets.ParseCredentials([]byte(tt.doc))
			require.ErrorIs(t, err, serrors.ErrMissingField)
			require.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestParseCredentials_malformed(t *testing.T) {
	for _, doc := range []string{``, `[]`, `{"bluesky_handle":42}`, `{"bluesky_handle":"h"`} {
		_, err := secrets.ParseCredentials([]byte(doc))
		require.ErrorIs(t, err, serrors.ErrBadRequest, doc)
	}
}

func TestStatic(t *testing.T) {
	creds, err := secrets.Static{Handle: "h", Password: "p"}.Credentials(context.Background())
	require.NoError(t, err)
	require.Equal(t, secrets.Credentials{Handle: "h", Password: "p"}, creds)

	_, err = secrets.Static{Handle: "h"}.Credentials(context.Background())
	require.ErrorIs(t, err, serrors.ErrMissingField)
}

func TestCached_fetchesOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocksecrets.NewMockProvider(ctrl)
	provider.EXPECT().Credentials(gomock.Any()).Return(secrets.Credentials{Handle: "h", Password: "p"}, nil).Times(1)

	cached := secrets.NewCached(provider)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			creds, err := cached.Credentials(context.Background())
			require.NoError(t, err)
			require.Equal(t, "h", creds.Handle)
		}()
	}
	wg.Wait()
}

func TestCached_failureNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocksecrets.NewMockProvider(ctrl)
	gomock.InOrder(
		provider.EXPECT().Credentials(gomock.Any()).Return(secrets.Credentials{}, serrors.With(serrors.ErrUnavailable, "down")),
		provider.EXPECT().Credentials(gomock.Any()).Return(secrets.Credentials{Handle: "h", Password: "p"}, nil),
	)

	cached := secrets.NewCached(provider)
	_, err := cached.Credentials(context.Background())
	require.ErrorIs(t, err, serrors.ErrUnavailable)

	creds, err := cached.Credentials(context.Background())
	require.NoError(t, err)
	require.Equal(t, "p", creds.Password)
}

func TestCached_reset(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocksecrets.NewMockProvider(ctrl)
	provider.EXPECT().Credentials(gomock.Any()).Return(secrets.Credentials{Handle: "h", Password: "p"}, nil).Times(2)

	cached := secrets.NewCached(provider)
	_, err := cached.Credentials(context.Background())
	require.NoError(t, err)
	cached.Reset()
	_, err = cached.Credentials(context.Background())
	require.NoError(t, err)
}

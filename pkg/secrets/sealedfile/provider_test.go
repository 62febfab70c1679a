package sealedfile_test

import (
	"bskybridge/pkg/secrets"
	"bskybridge/pkg/secrets/sealedfile"
	"bskybridge/pkg/serrors"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"filippo.io/age"
	"github.com/stretchr/testify/require"
)

func writeSealed(t *testing.T, creds secrets.Credentials, armored bool, recipient age.Recipient) string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, sealedfile.Seal(&buf, creds, armored, recipient))

	path := filepath.Join(t.TempDir(), "secret.age")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	return path
}

func TestProvider_roundTrip(t *testing.T) {
	identity, err := age.GenerateX25519Identity()
	require.NoError(t, err)
	want := secrets.Credentials{Handle: "news.bsky.social", Password: "abcd-efgh"}

	for name, armored := range map[string]bool{"binary": false, "armored": true} {
		t.Run(name, func(t *testing.T) {
			path := writeSealed(t, want, armored, identity.Recipient())

			got, err := sealedfile.NewWithIdentities(path, identity).Credentials(context.Background())
			require.NoError(t, err)
			require.Equal(t, want, got)
		})
	}
}

func TestNew_identityFile(t *testing.T) {
	identity, err := age.GenerateX25519Identity()
	require.NoError(t, err)

	dir := t.TempDir()
	identityFile := filepath.Join(dir, "key.txt")
	require.NoError(t, os.WriteFile(identityFile, []byte("# test key\n"+identity.String()+"\n"), 0o600))

	path := writeSealed(t, secrets.Credentials{Handle: "h", Password: "p"}, false, identity.Recipient())
	p, err := sealedfile.New(path, identityFile)
	require.NoError(t, err)

	got, err := p.Credentials(context.Background())
	require.NoError(t, err)
	require.Equal(t, "h", got.Handle)

	_, err = sealedfile.New(path, filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
}

func TestProvider_wrongIdentity(t *testing.T) {
	sealer, err := age.GenerateX25519Identity()
	require.NoError(t, err)
	other, err := age.GenerateX25519Identity()
	require.NoError(t, err)

	path := writeSealed(t, secrets.Credentials{Handle: "h", Password: "p"}, false, sealer.Recipient())

	_, err = sealedfile.NewWithIdentities(path, other).Credentials(context.Background())
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestProvider_missingField(t *testing.T) {
	identity, err := age.GenerateX25519Identity()
	require.NoError(t, err)

	path := writeSealed(t, secrets.Credentials{Handle: "h"}, true, identity.Recipient())

	_, err = sealedfile.NewWithIdentities(path, identity).Credentials(context.Background())
	require.ErrorIs(t, err, serrors.ErrMissingField)
}

func TestProvider_missingFile(t *testing.T) {
	identity, err := age.GenerateX25519Identity()
	require.NoError(t, err)

	_, err = sealedfile.NewWithIdentities(filepath.Join(t.TempDir(), "nope.age"), identity).
		Credentials(context.Background())
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

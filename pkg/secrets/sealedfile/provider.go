// Package sealedfile reads credentials from an age-encrypted secret document
// on disk. Both binary and ASCII-armored files are accepted.
package sealedfile

import (
	"bskybridge/pkg/secrets"
	"bskybridge/pkg/serrors"
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"filippo.io/age"
	"filippo.io/age/armor"
)

// Provider decrypts the sealed file on every call so a replaced file is
// picked up without a restart.
type Provider struct {
	path       string
	identities []age.Identity
}

// New parses the age identities in identityFile and constructs a Provider for
// the sealed document at path.
func New(path, identityFile string) (*Provider, error) {
	f, err := os.Open(identityFile)
	if err != nil {
		return nil, fmt.Errorf("could not open identity file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	identities, err := age.ParseIdentities(f)
	if err != nil {
		return nil, fmt.Errorf("could not parse identities: %w", err)
	}

	return NewWithIdentities(path, identities...), nil
}

// NewWithIdentities constructs a Provider using already parsed identities.
func NewWithIdentities(path string, identities ...age.Identity) *Provider {
	return &Provider{path: path, identities: identities}
}

// Credentials implements secrets.Provider.
func (p *Provider) Credentials(_ context.Context) (secrets.Credentials, error) {
	f, err := os.Open(p.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return secrets.Credentials{}, serrors.Wrap(serrors.ErrNotFound, err, "sealed secret not found")
		}

		return secrets.Credentials{}, fmt.Errorf("could not open sealed secret: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	br := bufio.NewReader(f)
	var src io.Reader = br
	if peek, _ := br.Peek(len(armor.Header)); bytes.Equal(peek, []byte(armor.Header)) {
		src = armor.NewReader(br)
	}

	r, err := age.Decrypt(src, p.identities...)
	if err != nil {
		return secrets.Credentials{}, serrors.Wrap(serrors.ErrUnauthorized, err, "could not decrypt sealed secret")
	}

	doc, err := io.ReadAll(r)
	if err != nil {
		return secrets.Credentials{}, fmt.Errorf("could not read sealed secret: %w", err)
	}

	creds, err := secrets.ParseCredentials(doc)
	if err != nil {
		return secrets.Credentials{}, fmt.Errorf("could not parse sealed secret: %w", err)
	}

	return creds, nil
}

// Seal encrypts a secret document holding creds to recipients and writes it
// to w, armored when armored is set.
func Seal(w io.Writer, creds secrets.Credentials, armored bool, recipients ...age.Recipient) error {
	if len(recipients) == 0 {
		return errors.New("at least one recipient is required")
	}

	dst := w
	var aw io.WriteCloser
	if armored {
		aw = armor.NewWriter(w)
		dst = aw
	}

	enc, err := age.Encrypt(dst, recipients...)
	if err != nil {
		return fmt.Errorf("could not create encryptor: %w", err)
	}
	doc, err := json.Marshal(map[string]string{
		secrets.HandleField:   creds.Handle,
		secrets.PasswordField: creds.Password,
	})
	if err != nil {
		return fmt.Errorf("could not encode secret: %w", err)
	}
	if _, err := enc.Write(doc); err != nil {
		return fmt.Errorf("could not write secret: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("could not finalize encryption: %w", err)
	}
	if aw != nil {
		if err := aw.Close(); err != nil {
			return fmt.Errorf("could not finalize armor: %w", err)
		}
	}

	return nil
}

var _ secrets.Provider = (*Provider)(nil)

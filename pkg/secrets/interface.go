// Package secrets retrieves the Bluesky account credentials the bridge posts
// with. Providers differ only in where the secret document lives; all of them
// hand back the same typed Credentials.
package secrets

import (
	"bskybridge/pkg/serrors"
	"context"
	"fmt"

	"github.com/go-faster/jx"
)

const (
	// HandleField is the secret document key holding the account handle.
	HandleField = "bluesky_handle"
	// PasswordField is the secret document key holding the app password.
	PasswordField = "bluesky_password"
)

// Credentials authenticate the bridge against the PDS.
type Credentials struct {
	Handle   string
	Password string
}

// Validate reports the first missing field as an serrors.ErrMissingField error.
func (c Credentials) Validate() error {
	switch {
	case c.Handle == "":
		return serrors.With(serrors.ErrMissingField, "secret is missing %s", HandleField)
	case c.Password == "":
		return serrors.With(serrors.ErrMissingField, "secret is missing %s", PasswordField)
	}

	return nil
}

// Provider fetches credentials from a secrets store.
//
//go:generate mockgen -package mocksecrets -source=interface.go -destination=mock/mocksecrets.go *
type Provider interface {
	// Credentials returns validated credentials or an error. A secret
	// document without one of the required fields yields an
	// serrors.ErrMissingField error.
	Credentials(ctx context.Context) (Credentials, error)
}

// ParseCredentials decodes a secret document of the form
// {"bluesky_handle": "...", "bluesky_password": "..."}. Unknown keys are
// ignored. Absent, null or empty required keys are reported by name.
func ParseCredentials(b []byte) (Credentials, error) {
	var c Credentials
	err := jx.DecodeBytes(b).ObjBytes(func(d *jx.Decoder, key []byte) error {
		var dst *string
		switch string(key) {
		case HandleField:
			dst = &c.Handle
		case PasswordField:
			dst = &c.Password
		default:
			return d.Skip()
		}

		if d.Next() == jx.Null {
			return d.Null()
		}
		v, err := d.Str()
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = v

		return nil
	})
	if err != nil {
		return Credentials{}, serrors.Wrap(serrors.ErrBadRequest, err, "could not decode secret")
	}

	if err := c.Validate(); err != nil {
		return Credentials{}, err
	}

	return c, nil
}

package secrets

import "context"

// Static serves fixed credentials, typically taken from configuration or the
// environment during local development.
type Static Credentials

// Credentials implements Provider.
func (s Static) Credentials(_ context.Context) (Credentials, error) {
	c := Credentials(s)
	if err := c.Validate(); err != nil {
		return Credentials{}, err
	}

	return c, nil
}

var _ Provider = Static{}

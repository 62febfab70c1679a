// Package awssm reads credentials from AWS Secrets Manager.
package awssm

import (
	"bskybridge/pkg/secrets"
	"bskybridge/pkg/serrors"
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/smithy-go"
)

// API is the subset of the Secrets Manager client the provider uses.
type API interface {
	GetSecretValue(
		ctx context.Context,
		params *secretsmanager.GetSecretValueInput,
		optFns ...func(*secretsmanager.Options),
	) (*secretsmanager.GetSecretValueOutput, error)
}

// DefaultSecretID returns the secret name used when none is configured.
func DefaultSecretID(project, environment string) string {
	return fmt.Sprintf("ACCESS_TOKEN-%s-%s", project, environment)
}

// Provider fetches the secret document on every call.
type Provider struct {
	api      API
	secretID string
}

// New constructs a Provider reading secretID through api.
func New(api API, secretID string) *Provider {
	return &Provider{api: api, secretID: secretID}
}

// NewFromConfig loads the default AWS configuration chain (environment,
// shared config, instance role) and constructs a Provider. An empty region
// leaves region resolution to the chain.
func NewFromConfig(ctx context.Context, region, secretID string) (*Provider, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not load aws config: %w", err)
	}

	return New(secretsmanager.NewFromConfig(cfg), secretID), nil
}

// Credentials implements secrets.Provider. SecretString is preferred;
// SecretBinary is accepted when no string is stored.
func (p *Provider) Credentials(ctx context.Context) (secrets.Credentials, error) {
	out, err := p.api.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(p.secretID),
	})
	if err != nil {
		return secrets.Credentials{}, mapError(err, p.secretID)
	}

	var doc []byte
	switch {
	case out.SecretString != nil:
		doc = []byte(*out.SecretString)
	case len(out.SecretBinary) > 0:
		doc = out.SecretBinary
	default:
		return secrets.Credentials{}, serrors.With(serrors.ErrMissingField, "secret %s has no value", p.secretID)
	}

	creds, err := secrets.ParseCredentials(doc)
	if err != nil {
		return secrets.Credentials{}, fmt.Errorf("could not parse secret %s: %w", p.secretID, err)
	}

	return creds, nil
}

func mapError(err error, secretID string) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "ResourceNotFoundException":
			return serrors.Wrap(serrors.ErrNotFound, err, "secret %s not found", secretID)
		case "AccessDeniedException", "UnrecognizedClientException":
			return serrors.Wrap(serrors.ErrUnauthorized, err, "access to secret %s denied", secretID)
		case "ThrottlingException":
			return serrors.Wrap(serrors.ErrRateLimited, err, "could not get secret %s", secretID)
		case "InternalServiceError":
			return serrors.Wrap(serrors.ErrUnavailable, err, "could not get secret %s", secretID)
		}
	}

	return fmt.Errorf("could not get secret %s: %w", secretID, err)
}

var _ secrets.Provider = (*Provider)(nil)

package main

import (
	"bskybridge/internal/bridge"
	"bskybridge/internal/config"
	"bskybridge/pkg/bluesky"
	"bskybridge/pkg/bluesky/xrpc"
	"bskybridge/pkg/metrics"
	"bskybridge/pkg/secrets"
	"bskybridge/pkg/secrets/awssm"
	"bskybridge/pkg/secrets/sealedfile"
	"bskybridge/pkg/storage"
	"context"
	"fmt"
	"net/http"

	"go.opentelemetry.io/otel/metric"
)

// newSecretsProvider builds the credentials provider selected in cfg.
func newSecretsProvider(ctx context.Context, cfg *config.Config) (secrets.Provider, error) {
	var provider secrets.Provider
	switch cfg.Secrets.Provider {
	case config.SecretsProviderAWS:
		secretID := cfg.Secrets.SecretID
		if secretID == "" {
			secretID = awssm.DefaultSecretID(cfg.Project, cfg.Environment)
		}
		p, err := awssm.NewFromConfig(ctx, cfg.Secrets.Region, secretID)
		if err != nil {
			return nil, fmt.Errorf("could not create aws secrets provider: %w", err)
		}
		provider = p
	case config.SecretsProviderFile:
		p, err := sealedfile.New(cfg.Secrets.File, cfg.Secrets.IdentityFile)
		if err != nil {
			return nil, fmt.Errorf("could not create sealed file provider: %w", err)
		}
		provider = p
	case config.SecretsProviderEnv:
		provider = secrets.Static{Handle: cfg.Secrets.Handle, Password: cfg.Secrets.Password}
	default:
		return nil, fmt.Errorf("unknown secrets provider %q", cfg.Secrets.Provider)
	}

	if cfg.Secrets.Cache {
		provider = secrets.NewCached(provider)
	}

	return provider, nil
}

// newBlueskyClient builds the PDS client, reusing sessions when configured.
func newBlueskyClient(cfg *config.Config) bluesky.Client {
	var client bluesky.Client = xrpc.New(&http.Client{Timeout: cfg.Bluesky.Timeout}, cfg.Bluesky.PDS)
	if cfg.Bluesky.ReuseSession {
		client = bluesky.NewCachedSessions(client, cfg.Bluesky.SessionMargin)
	}

	return client
}

// newBridge wires a bridge from cfg. strg may be nil when deliveries are not
// tracked and nothing is enqueued. A nil meter uses the global meter provider.
func newBridge(ctx context.Context, cfg *config.Config, strg storage.Storage, meter metric.Meter) (bridge.Bridge, error) {
	provider, err := newSecretsProvider(ctx, cfg)
	if err != nil {
		return nil, err
	}

	instruments, err := metrics.NewBridge(meter)
	if err != nil {
		return nil, fmt.Errorf("could not create bridge metrics: %w", err)
	}

	return bridge.New(bridge.Deps{
		Secrets: provider,
		Client:  newBlueskyClient(cfg),
		Storage: strg,
		Metrics: instruments,
	}, bridge.NewOptions(cfg)), nil
}

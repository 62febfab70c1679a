package main

import (
	"bskybridge/internal/config"
	"bskybridge/pkg/logger"
	"bskybridge/pkg/secrets"
	"bskybridge/pkg/secrets/sealedfile"
	"context"
	"fmt"
	"os"

	"filippo.io/age"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// sealCommand constructs the 'seal' subcommand that writes the account
// credentials to an age encrypted file readable by the file secrets provider.
// With --generate-identity it first creates a new X25519 identity file and
// seals to it.
func sealCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seal",
		Short: "Encrypts the Bluesky credentials into the secrets file",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			recipientFlags, _ := cmd.Flags().GetStringArray("recipient")
			generate, _ := cmd.Flags().GetBool("generate-identity")
			armored, _ := cmd.Flags().GetBool("armor")

			creds := secrets.Credentials{Handle: cfg.Secrets.Handle, Password: cfg.Secrets.Password}
			if err := creds.Validate(); err != nil {
				logger.Fatal(ctx, "BLUESKY_HANDLE and BLUESKY_PASSWORD must be set", zap.Error(err))
			}

			var recipients []age.Recipient
			if generate {
				identity, err := generateIdentity(cfg.Secrets.IdentityFile)
				if err != nil {
					logger.Fatal(ctx, "could not generate identity", zap.Error(err))
				}
				recipients = append(recipients, identity.Recipient())
				logger.Info(ctx, "generated identity",
					zap.String("file", cfg.Secrets.IdentityFile),
					zap.String("recipient", identity.Recipient().String()))
			}
			for _, r := range recipientFlags {
				recipient, err := age.ParseX25519Recipient(r)
				if err != nil {
					logger.Fatal(ctx, "could not parse recipient", zap.String("recipient", r), zap.Error(err))
				}
				recipients = append(recipients, recipient)
			}
			if len(recipients) == 0 {
				logger.Fatal(ctx, "at least one --recipient or --generate-identity is required")
			}

			f, err := os.OpenFile(cfg.Secrets.File, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
			if err != nil {
				logger.Fatal(ctx, "could not create secrets file", zap.Error(err))
			}
			defer f.Close()

			if err := sealedfile.Seal(f, creds, armored, recipients...); err != nil {
				logger.Fatal(ctx, "could not seal credentials", zap.Error(err))
			}
			logger.Info(ctx, "credentials sealed", zap.String("file", cfg.Secrets.File), zap.Int("recipients", len(recipients)))
		},
	}

	cmd.Flags().StringArray("recipient", nil, "age X25519 recipient (age1...) able to decrypt the file")
	cmd.Flags().Bool("generate-identity", false, "Create a new identity at the configured identity file and seal to it")
	cmd.Flags().Bool("armor", false, "Write the file in ASCII armor")

	return cmd
}

// generateIdentity creates a new X25519 identity and writes it to path. An
// existing file is never overwritten.
func generateIdentity(path string) (*age.X25519Identity, error) {
	identity, err := age.GenerateX25519Identity()
	if err != nil {
		return nil, fmt.Errorf("could not generate x25519 identity: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, fmt.Errorf("could not create identity file: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "# public key: %s\n%s\n", identity.Recipient(), identity); err != nil {
		return nil, fmt.Errorf("could not write identity file: %w", err)
	}

	return identity, nil
}

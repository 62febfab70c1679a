package main

import (
	"bskybridge/internal/config"
	"bskybridge/pkg/logger"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/aws/aws-lambda-go/events"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// postCommand constructs the 'post' subcommand that processes an SQS event
// document from a file or stdin exactly as the Lambda handler would.
func postCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "post [event.json]",
		Short: "Posts the messages of an SQS event file (or stdin) as one batch",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			var in io.Reader = os.Stdin
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("could not open event file: %w", err)
				}
				defer f.Close()
				in = f
			}

			var event events.SQSEvent
			if err := json.NewDecoder(in).Decode(&event); err != nil {
				return fmt.Errorf("could not decode sqs event: %w", err)
			}
			logger.Info(ctx, "replaying sqs event", zap.Int("records", len(event.Records)))

			handler, closeStrg := newSQSHandler(ctx, cfg)
			defer closeStrg()

			res, err := handler(ctx, event)
			if err != nil {
				return err
			}

			out, err := json.Marshal(res)
			if err != nil {
				return fmt.Errorf("could not encode response: %w", err)
			}
			fmt.Println(string(out)) //nolint: forbidigo

			return nil
		},
	}

	return cmd
}

package main

import (
	"bskybridge/internal/config"
	"bskybridge/internal/sqsbatch"
	"bskybridge/pkg/logger"
	"bskybridge/pkg/storage"
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// sqsHandler is the SQS event handler shared by the lambda and post commands.
type sqsHandler = func(ctx context.Context, event events.SQSEvent) (sqsbatch.Response, error)

// newSQSHandler wires a bridge for synchronous batch processing. Postgres is
// only connected when deliveries are tracked. The returned func releases it.
func newSQSHandler(ctx context.Context, cfg *config.Config) (sqsHandler, func()) {
	var (
		strg      storage.Storage
		closeStrg = func() {}
	)
	if cfg.Bridge.TrackDeliveries {
		strg, closeStrg = getPostgres(ctx, cfg)
	}

	b, err := newBridge(ctx, cfg, strg, nil)
	if err != nil {
		closeStrg()
		logger.Fatal(ctx, "could not create bridge", zap.Error(err))
	}

	return sqsbatch.Handler(b), closeStrg
}

// lambdaCommand constructs the 'lambda' subcommand that serves SQS events in
// the AWS Lambda runtime. Each event is posted as one batch.
func lambdaCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lambda",
		Short: "Serves SQS events in the AWS Lambda runtime",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			handler, closeStrg := newSQSHandler(ctx, cfg)
			defer closeStrg()

			logger.Info(ctx, "starting lambda handler...")
			lambda.StartWithOptions(handler, lambda.WithContext(ctx))
		},
	}

	return cmd
}

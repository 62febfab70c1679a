// Package sqsbatch adapts AWS Lambda SQS events to the bridge. One event is
// one batch: records are posted in order and the first failure fails the
// whole invocation, so SQS redelivers the batch.
package sqsbatch

import (
	"bskybridge/internal/bridge"
	"bskybridge/pkg/domain"
	"bskybridge/pkg/logger"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"
)

// SuccessMessage is reported in the response body of a processed event.
const SuccessMessage = "Successfully processed all messages"

// Response is the value returned to the Lambda runtime.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// responseBody is encoded into Response.Body.
type responseBody struct {
	Message        string `json:"message"`
	ProcessedCount int    `json:"processed_count"`
}

// Messages converts the records of event into bridge messages, keeping order.
func Messages(event events.SQSEvent) []domain.Message {
	messages := make([]domain.Message, 0, len(event.Records))
	for _, record := range event.Records {
		messages = append(messages, domain.Message{ID: record.MessageId, Body: record.Body})
	}

	return messages
}

// Handler returns a Lambda handler processing each event as one batch.
func Handler(processor bridge.Processor) func(ctx context.Context, event events.SQSEvent) (Response, error) {
	return func(ctx context.Context, event events.SQSEvent) (Response, error) {
		messages := Messages(event)
		ctx = logger.WithFields(ctx, zap.Int("records", len(messages)))

		res, err := processor.ProcessBatch(ctx, messages)
		if err != nil {
			logger.Error(ctx, "could not process sqs event", zap.Error(err))

			return Response{}, fmt.Errorf("could not process sqs event: %w", err)
		}

		body, err := json.Marshal(responseBody{
			Message:        SuccessMessage,
			ProcessedCount: res.Total,
		})
		if err != nil {
			return Response{}, fmt.Errorf("could not encode response: %w", err)
		}

		return Response{StatusCode: http.StatusOK, Body: string(body)}, nil
	}
}

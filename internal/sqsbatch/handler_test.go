package sqsbatch_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"bskybridge/internal/bridge"
	mockbridge "bskybridge/internal/bridge/mock"
	"bskybridge/internal/sqsbatch"
	"bskybridge/pkg/domain"
	"bskybridge/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func event(bodies ...string) events.SQSEvent {
	var ev events.SQSEvent
	for i, body := range bodies {
		ev.Records = append(ev.Records, events.SQSMessage{
			MessageId: string(rune('a' + i)),
			Body:      body,
		})
	}

	return ev
}

func TestMessages_KeepsOrderAndIDs(t *testing.T) {
	got := sqsbatch.Messages(event("one", "two", ""))
	require.Equal(t, []domain.Message{
		{ID: "a", Body: "one"},
		{ID: "b", Body: "two"},
		{ID: "c", Body: ""},
	}, got)

	require.Empty(t, sqsbatch.Messages(events.SQSEvent{}))
}

func TestHandler_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockbridge.NewMockProcessor(ctrl)

	mock.EXPECT().ProcessBatch(gomock.Any(), []domain.Message{{ID: "a", Body: "one"}, {ID: "b", Body: "two"}}).
		Return(bridge.Result{Total: 2, Posted: 2}, nil)

	res, err := sqsbatch.Handler(mock)(context.Background(), event("one", "two"))
	require.NoError(t, err)
	require.Equal(t, 200, res.StatusCode)
	require.JSONEq(t, `{"message":"Successfully processed all messages","processed_count":2}`, res.Body)
}

func TestHandler_EmptyEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockbridge.NewMockProcessor(ctrl)

	mock.EXPECT().ProcessBatch(gomock.Any(), []domain.Message{}).Return(bridge.Result{}, nil)

	res, err := sqsbatch.Handler(mock)(context.Background(), events.SQSEvent{})
	require.NoError(t, err)
	require.JSONEq(t, `{"message":"Successfully processed all messages","processed_count":0}`, res.Body)
}

func TestHandler_FailureFailsInvocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockbridge.NewMockProcessor(ctrl)

	boom := errors.New("boom")
	mock.EXPECT().ProcessBatch(gomock.Any(), gomock.Any()).Return(bridge.Result{Total: 2, Posted: 1}, boom)

	res, err := sqsbatch.Handler(mock)(context.Background(), event("one", "two"))
	require.ErrorIs(t, err, boom)
	require.Zero(t, res)
}

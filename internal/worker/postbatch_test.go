package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"bskybridge/internal/bridge"
	mockbridge "bskybridge/internal/bridge/mock"
	"bskybridge/internal/worker"
	"bskybridge/pkg/bluesky"
	"bskybridge/pkg/domain"
	"bskybridge/pkg/logger"
	"bskybridge/pkg/serrors"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makeJob(id int64, messages ...domain.Message) *river.Job[bridge.PostBatchArgs] {
	return &river.Job[bridge.PostBatchArgs]{
		JobRow: &rivertype.JobRow{ID: id, Attempt: 1},
		Args:   bridge.PostBatchArgs{Messages: messages},
	}
}

func rateLimitErr(resetAt time.Time) error {
	return serrors.Wrap(serrors.ErrRateLimited,
		&bluesky.RateLimitError{Status: bluesky.RateLimitStatus{ResetAt: resetAt}},
		"status 429")
}

func TestPostBatchWorker_Work_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mockbridge.NewMockProcessor(ctrl)
	w := worker.NewPostBatchWorker(mock)

	messages := []domain.Message{{ID: "1", Body: "hello"}, {ID: "2", Body: "world"}}
	mock.EXPECT().ProcessBatch(gomock.Any(), messages).Return(bridge.Result{Total: 2, Posted: 2}, nil)

	require.NoError(t, w.Work(context.Background(), makeJob(1, messages...)))
}

func TestPostBatchWorker_Work_UnauthorizedCancels(t *testing.T) {
	for name, kind := range map[string]serrors.Kind{
		"unauthorized":  serrors.ErrUnauthorized,
		"missing field": serrors.ErrMissingField,
	} {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mock := mockbridge.NewMockProcessor(ctrl)
			w := worker.NewPostBatchWorker(mock)

			mock.EXPECT().ProcessBatch(gomock.Any(), gomock.Any()).Return(bridge.Result{}, serrors.With(kind, "bad creds"))

			err := w.Work(context.Background(), makeJob(2, domain.Message{Body: "x"}))
			require.Error(t, err)
			var cancelErr *river.JobCancelError
			require.ErrorAs(t, err, &cancelErr)
		})
	}
}

func TestPostBatchWorker_Work_RateLimitedSnoozes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mockbridge.NewMockProcessor(ctrl)
	w := worker.NewPostBatchWorker(mock)

	resetAt := time.Now().Add(1500 * time.Millisecond)
	mock.EXPECT().ProcessBatch(gomock.Any(), gomock.Any()).Return(bridge.Result{Posted: 1}, rateLimitErr(resetAt))

	err := w.Work(context.Background(), makeJob(3, domain.Message{Body: "x"}))
	require.Error(t, err)
	var snoozeErr *river.JobSnoozeError
	require.ErrorAs(t, err, &snoozeErr)
	// Duration should be around time.Until(resetAt)
	require.GreaterOrEqual(t, snoozeErr.Duration, 1200*time.Millisecond)
	require.LessOrEqual(t, snoozeErr.Duration, 2*time.Second)
}

func TestPostBatchWorker_Work_SnoozesWhileBlocked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mockbridge.NewMockProcessor(ctrl)
	w := worker.NewPostBatchWorker(mock)

	// only the first batch reaches the processor
	mock.EXPECT().ProcessBatch(gomock.Any(), gomock.Any()).Return(bridge.Result{}, rateLimitErr(time.Now().Add(time.Minute))).Times(1)

	err := w.Work(context.Background(), makeJob(4, domain.Message{Body: "x"}))
	var snoozeErr *river.JobSnoozeError
	require.ErrorAs(t, err, &snoozeErr)

	err = w.Work(context.Background(), makeJob(5, domain.Message{Body: "y"}))
	require.ErrorAs(t, err, &snoozeErr)
	require.Greater(t, snoozeErr.Duration, 50*time.Second)
}

func TestPostBatchWorker_Work_RateLimitWithoutReset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mockbridge.NewMockProcessor(ctrl)
	w := worker.NewPostBatchWorker(mock)

	gomock.InOrder(
		mock.EXPECT().ProcessBatch(gomock.Any(), gomock.Any()).Return(bridge.Result{}, serrors.With(serrors.ErrRateLimited, "429")),
		mock.EXPECT().ProcessBatch(gomock.Any(), gomock.Any()).Return(bridge.Result{}, nil),
	)

	err := w.Work(context.Background(), makeJob(6, domain.Message{Body: "x"}))
	var snoozeErr *river.JobSnoozeError
	require.ErrorAs(t, err, &snoozeErr)
	require.Equal(t, time.Minute, snoozeErr.Duration)

	// nothing remembered, next batch runs
	require.NoError(t, w.Work(context.Background(), makeJob(7, domain.Message{Body: "y"})))
}

func TestPostBatchWorker_Work_GenericErrorWrapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mockbridge.NewMockProcessor(ctrl)
	w := worker.NewPostBatchWorker(mock)

	boom := errors.New("boom")
	mock.EXPECT().ProcessBatch(gomock.Any(), gomock.Any()).Return(bridge.Result{}, boom)

	err := w.Work(context.Background(), makeJob(8, domain.Message{Body: "x"}))
	require.ErrorIs(t, err, boom)
	var cancelErr *river.JobCancelError
	require.NotErrorAs(t, err, &cancelErr, "did not expect JobCancelError")
	var snoozeErr *river.JobSnoozeError
	require.NotErrorAs(t, err, &snoozeErr, "did not expect JobSnoozeError")
}

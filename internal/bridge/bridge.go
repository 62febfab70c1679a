package bridge

import (
	"bskybridge/internal/config"
	"bskybridge/pkg/bluesky"
	"bskybridge/pkg/domain"
	"bskybridge/pkg/logger"
	"bskybridge/pkg/metrics"
	"bskybridge/pkg/richtext"
	"bskybridge/pkg/secrets"
	"bskybridge/pkg/serrors"
	"bskybridge/pkg/storage"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tracerName is the instrumentation scope of bridge spans.
const tracerName = "bskybridge/internal/bridge"

// Options configure how posts are built and how batches are enqueued.
// These settings are typically derived from application configuration.
type Options struct {
	// Pipeline turns message bodies into post records.
	Pipeline richtext.Pipeline
	// TrackDeliveries records each post in the delivery log and skips
	// messages that already have a delivery. It needs a storage.
	TrackDeliveries bool
	// MaxAttempts is the maximum number of attempts the background worker
	// makes for a batch.
	MaxAttempts int
	// UniquePeriod is the window during which an identical batch is not
	// enqueued again.
	UniquePeriod time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Pipeline: richtext.Pipeline{
			Normalizer: richtext.Normalizer{
				Limit:          cfg.Bluesky.Limit,
				Ellipsis:       cfg.Bluesky.Ellipsis,
				CountGraphemes: cfg.Bluesky.CountGraphemes,
			},
			IsolateURLs: cfg.Bluesky.IsolateURLs,
		},
		TrackDeliveries: cfg.Bridge.TrackDeliveries,
		MaxAttempts:     cfg.Queue.MaxAttempts,
		UniquePeriod:    cfg.Queue.UniquePeriod,
	}
}

// Deps are the collaborators of the bridge.
type Deps struct {
	// Secrets provides the account credentials.
	Secrets secrets.Provider
	// Client talks to the PDS.
	Client bluesky.Client
	// Storage holds the delivery log and the job queue. It may be nil when
	// only ProcessBatch is used and TrackDeliveries is off.
	Storage storage.Storage
	// Metrics records batch instruments. Nil disables metrics.
	Metrics *metrics.Bridge
}

// bridge is the concrete implementation of the Bridge interface.
type bridge struct {
	options Options
	deps    Deps
	tracer  trace.Tracer
	now     func() time.Time
}

// New creates a new Bridge backed by deps and configured with options.
func New(deps Deps, options Options) Bridge {
	return &bridge{
		options: options,
		deps:    deps,
		tracer:  otel.Tracer(tracerName),
		now:     time.Now,
	}
}

func (b *bridge) tracking() bool {
	return b.options.TrackDeliveries && b.deps.Storage != nil
}

// ProcessBatch implements Processor.
func (b *bridge) ProcessBatch(ctx context.Context, messages []domain.Message) (Result, error) {
	ctx, span := b.tracer.Start(ctx, "bridge.ProcessBatch",
		trace.WithAttributes(attribute.Int("bridge.batch.size", len(messages))))
	defer span.End()

	res := Result{Total: len(messages)}
	logger.Info(ctx, "processing batch", zap.Int("messages", len(messages)))

	creds, err := b.deps.Secrets.Credentials(ctx)
	if err != nil {
		return res, failSpan(span, fmt.Errorf("could not get credentials: %w", err))
	}

	session, err := b.deps.Client.CreateSession(ctx, creds.Handle, creds.Password)
	if err != nil {
		return res, failSpan(span, fmt.Errorf("could not authenticate as %s: %w", creds.Handle, err))
	}
	logger.Debug(ctx, "authenticated", zap.String("did", session.DID))

	for i, msg := range messages {
		mctx := logger.WithFields(ctx,
			zap.String("messageID", msg.MessageID()),
			zap.String("progress", fmt.Sprintf("%d/%d", i+1, len(messages))))

		delivered, err := b.delivered(mctx, msg)
		if err != nil {
			return res, failSpan(span, fmt.Errorf("could not check delivery of message %s: %w", msg.MessageID(), err))
		}
		if delivered {
			logger.Info(mctx, "message already delivered, skipping")
			res.Skipped++
			if b.deps.Metrics != nil {
				b.deps.Metrics.Skipped.Add(mctx, 1)
			}

			continue
		}

		if err := b.post(mctx, session, msg); err != nil {
			logger.Error(mctx, "could not post message, aborting batch", zap.Error(err))

			return res, failSpan(span, fmt.Errorf("could not post message %s: %w", msg.MessageID(), err))
		}
		res.Posted++
	}

	logger.Info(ctx, "batch processed",
		zap.Int("posted", res.Posted),
		zap.Int("skipped", res.Skipped))

	return res, nil
}

func (b *bridge) delivered(ctx context.Context, msg domain.Message) (bool, error) {
	if !b.tracking() || msg.ID == "" {
		return false, nil
	}

	d, err := b.deps.Storage.DeliveryByMessageID(ctx, msg.ID)
	if err != nil {
		return false, fmt.Errorf("could not get delivery: %w", err)
	}

	return d != nil, nil
}

// post builds the record for msg, creates it and records the delivery.
func (b *bridge) post(ctx context.Context, session bluesky.Session, msg domain.Message) error {
	ctx, span := b.tracer.Start(ctx, "bridge.CreatePost",
		trace.WithAttributes(attribute.String("bridge.message.id", msg.MessageID())))
	defer span.End()

	logger.Debug(ctx, "message body", zap.String("body", msg.Body))

	post := b.options.Pipeline.Build(msg.Body, b.now().UTC())
	if post.Truncated {
		logger.Warn(ctx, "message truncated to fit post limit",
			zap.Int("originalLength", post.OriginalLength),
			zap.Int("length", b.options.Pipeline.Normalizer.Length(post.Record.Text)),
			zap.Int("limit", b.options.Pipeline.Normalizer.Limit))
	}
	if err := post.Record.Validate(); err != nil {
		return failSpan(span, serrors.Wrap(serrors.ErrInternal, err, "built an invalid post"))
	}

	started := time.Now()
	ref, err := b.deps.Client.CreatePost(ctx, session, post.Record)
	if b.deps.Metrics != nil {
		b.deps.Metrics.PostDuration.Record(ctx, time.Since(started).Seconds())
	}
	if err != nil {
		return failSpan(span, err)
	}

	links := len(post.Record.Facets)
	span.SetAttributes(attribute.String("bridge.post.uri", ref.URI), attribute.Int("bridge.post.links", links))
	logger.Info(ctx, "message posted", zap.String("uri", ref.URI), zap.Int("links", links))
	if b.deps.Metrics != nil {
		b.deps.Metrics.Posted.Add(ctx, 1)
		b.deps.Metrics.Links.Add(ctx, int64(links))
		if post.Truncated {
			b.deps.Metrics.Truncated.Add(ctx, 1)
		}
	}

	b.record(ctx, msg, post, ref)

	return nil
}

// record stores the delivery of msg. The post already exists, so a failure
// here is only logged.
func (b *bridge) record(ctx context.Context, msg domain.Message, post richtext.Post, ref bluesky.RecordRef) {
	if !b.tracking() || msg.ID == "" {
		return
	}

	if _, err := b.deps.Storage.StoreDelivery(ctx, domain.Delivery{
		MessageID: msg.ID,
		PostURI:   ref.URI,
		PostCID:   ref.CID,
		Text:      post.Record.Text,
		Truncated: post.Truncated,
		LinkCount: len(post.Record.Facets),
	}); err != nil {
		logger.Warn(ctx, "could not record delivery", zap.Error(err))
	}
}

// Enqueue implements Bridge.
func (b *bridge) Enqueue(ctx context.Context, messages []domain.Message) (*Enqueued, error) {
	if len(messages) == 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "batch has no messages")
	}
	if b.deps.Storage == nil {
		return nil, serrors.With(serrors.ErrInternal, "no storage configured")
	}

	batch := make([]domain.Message, len(messages))
	seen := make(map[string]bool, len(messages))
	for i, msg := range messages {
		if msg.Body == "" {
			return nil, serrors.With(serrors.ErrBadRequest, "message %d has an empty body", i)
		}
		if msg.ID == "" {
			msg.ID = uuid.NewString()
		}
		if seen[msg.ID] {
			return nil, serrors.With(serrors.ErrBadRequest, "message id %s appears more than once", msg.ID)
		}
		seen[msg.ID] = true
		batch[i] = msg
	}

	res := &Enqueued{}
	if err := b.deps.Storage.WithTx(ctx, func(tx storage.AllStorage) error {
		pending := batch
		if b.options.TrackDeliveries {
			ids := make([]string, len(batch))
			for i, msg := range batch {
				ids[i] = msg.ID
			}
			delivered, err := tx.DeliveredMessageIDs(ctx, ids...)
			if err != nil {
				return fmt.Errorf("could not get delivered messages: %w", err)
			}

			pending = make([]domain.Message, 0, len(batch))
			for _, msg := range batch {
				if delivered[msg.ID] {
					res.AlreadyDelivered = append(res.AlreadyDelivered, msg.ID)

					continue
				}
				pending = append(pending, msg)
			}
		}

		for _, msg := range pending {
			res.MessageIDs = append(res.MessageIDs, msg.ID)
		}
		if len(pending) == 0 {
			return nil
		}

		job, err := tx.AddJob(ctx, PostBatchArgs{
			Messages:        pending,
			maxAttempts:     b.options.MaxAttempts,
			uniqueJobPeriod: b.options.UniquePeriod,
		}, nil)
		if err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}
		res.JobID = job.Job.ID
		res.Duplicate = job.UniqueSkippedAsDuplicate

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not enqueue batch: %w", err)
	}

	logger.Info(ctx, "batch enqueued",
		zap.Int64("jobID", res.JobID),
		zap.Int("messages", len(res.MessageIDs)),
		zap.Int("alreadyDelivered", len(res.AlreadyDelivered)),
		zap.Bool("duplicate", res.Duplicate))

	return res, nil
}

// cursorSep separates the timestamp and the delivery ID of a cursor.
const cursorSep = "_"

// FormatCursor encodes c as "<RFC3339Nano created_at>_<delivery id>".
func FormatCursor(c storage.Cursor) string {
	return c.CreatedAt.UTC().Format(time.RFC3339Nano) + cursorSep + c.ID.String()
}

// ParseCursor decodes a cursor produced by FormatCursor. A bare RFC3339
// timestamp is accepted and positions before everything created at it.
func ParseCursor(cursor string) (*storage.Cursor, error) {
	ts, id, hasID := strings.Cut(cursor, cursorSep)

	createdAt, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
	}

	c := &storage.Cursor{CreatedAt: createdAt}
	if hasID {
		if err := c.ID.UnmarshalText([]byte(id)); err != nil {
			return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
	}

	return c, nil
}

// Deliveries implements Bridge. It supports keyset pagination with cursors
// from FormatCursor and returns the next cursor when more results are
// available.
func (b *bridge) Deliveries(ctx context.Context, cursor string, limit uint) ([]domain.Delivery, string, error) {
	if b.deps.Storage == nil {
		return nil, "", serrors.With(serrors.ErrInternal, "no storage configured")
	}

	var after *storage.Cursor
	if cursor != "" {
		c, err := ParseCursor(cursor)
		if err != nil {
			return nil, "", err
		}
		after = c
	}

	page, err := b.deps.Storage.Deliveries(ctx, after, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get deliveries: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = FormatCursor(*page.NextCursor)
	}

	return page.Deliveries, next, nil
}

func failSpan(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	return err
}

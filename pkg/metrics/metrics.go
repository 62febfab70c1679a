// Package metrics holds the OpenTelemetry instruments shared across the
// bridge. Instruments are created from the global meter provider, which the
// API server backs with a Prometheus exporter; elsewhere they are no-ops.
package metrics

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// meterName is the instrumentation scope of the bridge instruments.
const meterName = "bskybridge/bridge"

// Bridge groups the instruments recorded while processing batches.
type Bridge struct {
	// Posted counts messages published as posts.
	Posted metric.Int64Counter
	// Skipped counts messages skipped because they were already delivered.
	Skipped metric.Int64Counter
	// Truncated counts posts shortened to fit the length limit.
	Truncated metric.Int64Counter
	// Links counts link facets attached to published posts.
	Links metric.Int64Counter
	// PostDuration records how long createRecord calls take, in seconds.
	PostDuration metric.Float64Histogram
}

// NewBridge creates the bridge instruments from meter. A nil meter means the
// global meter provider.
func NewBridge(meter metric.Meter) (*Bridge, error) {
	if meter == nil {
		meter = otel.Meter(meterName)
	}

	var (
		b   Bridge
		err error
	)
	if b.Posted, err = meter.Int64Counter("bridge.messages.posted",
		metric.WithDescription("Messages published as posts")); err != nil {
		return nil, fmt.Errorf("could not create posted counter: %w", err)
	}
	if b.Skipped, err = meter.Int64Counter("bridge.messages.skipped",
		metric.WithDescription("Messages skipped because they were already delivered")); err != nil {
		return nil, fmt.Errorf("could not create skipped counter: %w", err)
	}
	if b.Truncated, err = meter.Int64Counter("bridge.posts.truncated",
		metric.WithDescription("Posts truncated to the length limit")); err != nil {
		return nil, fmt.Errorf("could not create truncated counter: %w", err)
	}
	if b.Links, err = meter.Int64Counter("bridge.facets.links",
		metric.WithDescription("Link facets attached to posts")); err != nil {
		return nil, fmt.Errorf("could not create links counter: %w", err)
	}
	if b.PostDuration, err = meter.Float64Histogram("bridge.post.duration",
		metric.WithDescription("Duration of createRecord calls"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...)); err != nil {
		return nil, fmt.Errorf("could not create post duration histogram: %w", err)
	}

	return &b, nil
}

package metrics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientDisabledOutsideProduction(t *testing.T) {
	client, err := NewClient(context.Background(), "development", "")
	require.NoError(t, err)
	assert.False(t, client.Enabled())
	assert.Equal(t, defaultNamespace, client.namespace)

	// No-ops when disabled.
	client.RecordAPIRequest("/api/chords", 200, time.Millisecond)
	client.RecordGeneration("chords", 306, 0, time.Second)
	client.RecordRegeneration(time.Second, true)
}

func TestNilClientIsDisabled(t *testing.T) {
	var client *Client
	assert.False(t, client.Enabled())
	client.RecordAPIRequest("/health", 200, time.Millisecond)
}

func TestSentryMetricsWithoutClient(t *testing.T) {
	m := NewSentryMetrics()
	ctx := context.Background()

	assert.NotPanics(t, func() {
		m.RecordAPIRequest(ctx, "/api/scales", 404, time.Millisecond)
		m.RecordGeneration(ctx, "scales", 476, 0, time.Second)
		m.RecordCatalogLoad(ctx, "scales", 476, time.Millisecond, nil)
	})
}

// captureSpans runs record inside a sampled transaction and returns the finished child spans
func captureSpans(t *testing.T, record func(ctx context.Context)) []*sentry.Span {
	t.Helper()

	var sent *sentry.Event
	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:              "https://public@example.com/1",
		EnableTracing:    true,
		TracesSampleRate: 1.0,
		BeforeSendTransaction: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			sent = event
			return nil
		},
	})
	require.NoError(t, err)

	hub := sentry.NewHub(client, sentry.NewScope())
	ctx := sentry.SetHubOnContext(context.Background(), hub)
	tx := sentry.StartTransaction(ctx, "test")
	record(tx.Context())
	tx.Finish()

	require.NotNil(t, sent, "transaction was not captured")
	return sent.Spans
}

func spanByOp(spans []*sentry.Span, op string) *sentry.Span {
	for _, s := range spans {
		if s.Op == op {
			return s
		}
	}
	return nil
}

func TestSentrySpanStatuses(t *testing.T) {
	m := NewSentryMetrics()
	spans := captureSpans(t, func(ctx context.Context) {
		m.RecordCatalogLoad(ctx, "chords", 0, time.Millisecond, errors.New("catalog store not found"))
		m.RecordGeneration(ctx, "scales", 470, 6, time.Second)
		m.RecordAPIRequest(ctx, "/api/chords/:symbol", 404, time.Millisecond)
	})

	load := spanByOp(spans, "catalog.load")
	require.NotNil(t, load)
	assert.Equal(t, sentry.SpanStatusUnavailable, load.Status)
	assert.Equal(t, "chords", load.Tags["catalog"])

	build := spanByOp(spans, "catalog.build")
	require.NotNil(t, build)
	assert.Equal(t, sentry.SpanStatusDataLoss, build.Status)

	request := spanByOp(spans, "api.request")
	require.NotNil(t, request)
	assert.Equal(t, sentry.SpanStatusNotFound, request.Status)
	assert.Equal(t, "404", request.Tags["status_code"])
}

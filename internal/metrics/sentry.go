package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
)

// SentryMetrics records catalog activity as Sentry performance spans.
// Without sentry.Init every call is a cheap no-op.
type SentryMetrics struct{}

func NewSentryMetrics() *SentryMetrics {
	return &SentryMetrics{}
}

// RecordAPIRequest adds a span for one served request, keyed by route template
func (m *SentryMetrics) RecordAPIRequest(ctx context.Context, endpoint string, statusCode int, duration time.Duration) {
	status := sentry.SpanStatusOK
	if statusCode >= http.StatusBadRequest {
		status = sentry.SpanStatusInternalError
		if statusCode == http.StatusNotFound {
			status = sentry.SpanStatusNotFound
		}
	}

	span := startSpan(ctx, "api.request", "GET "+endpoint)
	span.SetTag("endpoint", endpoint)
	span.SetTag("status_code", strconv.Itoa(statusCode))
	finish(span, status, duration)
}

// RecordGeneration adds a span for one catalog build. A build that skipped entries
// or produced none is marked as data loss.
func (m *SentryMetrics) RecordGeneration(ctx context.Context, catalog string, generated, skipped int, duration time.Duration) {
	if transaction := sentry.TransactionFromContext(ctx); transaction != nil {
		transaction.SetData("catalog."+catalog+".generated", generated)
		transaction.SetData("catalog."+catalog+".skipped", skipped)
	}

	status := sentry.SpanStatusOK
	if generated == 0 || skipped > 0 {
		status = sentry.SpanStatusDataLoss
	}

	span := startSpan(ctx, "catalog.build", "build "+catalog)
	span.SetTag("catalog", catalog)
	span.SetData("generated", generated)
	span.SetData("skipped", skipped)
	finish(span, status, duration)
}

// RecordCatalogLoad adds a span for one read of a catalog file
func (m *SentryMetrics) RecordCatalogLoad(ctx context.Context, catalog string, entries int, duration time.Duration, err error) {
	status := sentry.SpanStatusOK
	if err != nil {
		status = sentry.SpanStatusUnavailable
	}

	span := startSpan(ctx, "catalog.load", "load "+catalog)
	span.SetTag("catalog", catalog)
	span.SetData("entries", entries)
	if err != nil {
		span.SetData("error", err.Error())
	}
	finish(span, status, duration)
}

func startSpan(ctx context.Context, op, description string) *sentry.Span {
	span := sentry.StartSpan(ctx, op)
	span.Description = description
	return span
}

func finish(span *sentry.Span, status sentry.SpanStatus, duration time.Duration) {
	span.Status = status
	span.SetData("duration_ms", duration.Milliseconds())
	span.Finish()
}

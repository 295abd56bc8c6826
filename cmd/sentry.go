package cmd

import (
	"log"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/Conceptual-Machines/piano-chords/internal/config"
)

const sentryFlushTimeout = 2 * time.Second

// initSentry sets up the global Sentry client when SENTRY_DSN is configured.
// The returned flush func is always safe to defer.
func initSentry(cfg *config.Config) (flush func()) {
	if cfg.SentryDSN == "" {
		log.Println("⚠️  Sentry not configured (SENTRY_DSN not set)")
		return func() {}
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.Environment,
		Release:          "piano-chords@" + releaseVersion,
		EnableTracing:    true,
		TracesSampleRate: 1.0,
		Debug:            !cfg.IsProduction(),
		BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			if event.Request != nil {
				event.Request.Headers = filterSensitiveHeaders(event.Request.Headers)
			}
			return event
		},
	})
	if err != nil {
		log.Printf("Failed to initialize Sentry: %v", err)
		return func() {}
	}

	log.Printf("✅ Sentry initialized (environment: %s, release: %s)", cfg.Environment, releaseVersion)
	return func() { sentry.Flush(sentryFlushTimeout) }
}

func filterSensitiveHeaders(headers map[string]string) map[string]string {
	filtered := make(map[string]string)
	sensitiveKeys := map[string]bool{
		"authorization": true,
		"cookie":        true,
		"x-api-key":     true,
	}

	for k, v := range headers {
		if sensitiveKeys[k] {
			filtered[k] = "[REDACTED]"
		} else {
			filtered[k] = v
		}
	}
	return filtered
}

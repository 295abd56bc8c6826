package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Conceptual-Machines/piano-chords/internal/catalog"
	"github.com/Conceptual-Machines/piano-chords/internal/config"
	"github.com/Conceptual-Machines/piano-chords/internal/store"
)

func TestRunCheck(t *testing.T) {
	dir := t.TempDir()
	p := &catalog.Pipeline{DataDir: dir, Version: "test"}
	_, err := p.Run(context.Background(), catalog.Kinds(), io.Discard)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, runCheck(&out, dir))
	assert.Contains(t, out.String(), "Total chords: 306")
	assert.Contains(t, out.String(), "Total scales: 476")
	assert.Contains(t, out.String(), "✓ chords.json")
	assert.Contains(t, out.String(), "version test")
}

func TestRunCheckMissingStore(t *testing.T) {
	var out bytes.Buffer
	err := runCheck(&out, t.TempDir())
	assert.ErrorIs(t, err, errCheckFailed)
	assert.Contains(t, out.String(), "✗ chords.json")
	assert.Contains(t, out.String(), "✓ chord patterns")
}

func TestRunCheckMalformedStore(t *testing.T) {
	dir := t.TempDir()
	p := &catalog.Pipeline{DataDir: dir, Version: "test"}
	_, err := p.Run(context.Background(), catalog.Kinds(), io.Discard)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, store.ScalesFile), []byte("{}"), 0o644))

	var out bytes.Buffer
	assert.ErrorIs(t, runCheck(&out, dir), errCheckFailed)
	assert.Contains(t, out.String(), "✗ scales.json")
}

func TestFilterSensitiveHeaders(t *testing.T) {
	got := filterSensitiveHeaders(map[string]string{"authorization": "Bearer x", "accept": "text/html"})
	assert.Equal(t, "[REDACTED]", got["authorization"])
	assert.Equal(t, "text/html", got["accept"])
}

func TestInitSentry(t *testing.T) {
	prev := sentry.CurrentHub().Client()
	t.Cleanup(func() { sentry.CurrentHub().BindClient(prev) })

	sentry.CurrentHub().BindClient(nil)
	flush := initSentry(&config.Config{Environment: "test"})
	require.NotNil(t, flush)
	flush()
	assert.Nil(t, sentry.CurrentHub().Client(), "no client without a DSN")

	initSentry(&config.Config{Environment: "test", SentryDSN: "https://public@example.com/1"})
	client := sentry.CurrentHub().Client()
	require.NotNil(t, client)
	assert.Equal(t, "test", client.Options().Environment)
	assert.Equal(t, "piano-chords@"+releaseVersion, client.Options().Release)
}

package regen

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Conceptual-Machines/piano-chords/internal/catalog"
	"github.com/Conceptual-Machines/piano-chords/internal/store"
)

// blockingGenerator waits until released or cancelled
type blockingGenerator struct {
	started chan struct{}
	release chan struct{}
}

func (g *blockingGenerator) Run(ctx context.Context, _ []catalog.Kind, out io.Writer) ([]catalog.Report, error) {
	io.WriteString(out, "working\n")
	close(g.started)
	select {
	case <-g.release:
		return []catalog.Report{{Kind: catalog.Chords, Generated: 1}}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

type failingGenerator struct{}

func (failingGenerator) Run(context.Context, []catalog.Kind, io.Writer) ([]catalog.Report, error) {
	return nil, errors.New("disk full")
}

func TestRunWritesCatalogs(t *testing.T) {
	dir := t.TempDir()
	runner := NewRunner(&catalog.Pipeline{DataDir: dir, Version: "test"}, time.Minute, nil)

	outcome, err := runner.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, outcome.Success, outcome.Error)
	assert.Equal(t, "Regenerated 306 chords and 476 scales", outcome.Message)
	assert.Contains(t, outcome.Output, "Generated 306 chords")
	assert.Len(t, outcome.Reports, 2)

	for _, name := range []string{store.ChordsFile, store.ScalesFile, store.ManifestFile} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestRunRejectsConcurrentRun(t *testing.T) {
	g := &blockingGenerator{started: make(chan struct{}), release: make(chan struct{})}
	runner := NewRunner(g, time.Minute, nil)

	first := make(chan Outcome, 1)
	go func() {
		outcome, _ := runner.Run(context.Background())
		first <- outcome
	}()
	<-g.started

	_, err := runner.Run(context.Background())
	assert.ErrorIs(t, err, ErrBusy)

	close(g.release)
	outcome := <-first
	assert.True(t, outcome.Success)
	assert.Equal(t, "Regenerated 1 chords", outcome.Message)
}

func TestRunTimesOut(t *testing.T) {
	g := &blockingGenerator{started: make(chan struct{}), release: make(chan struct{})}
	runner := NewRunner(g, 50*time.Millisecond, nil)

	start := time.Now()
	outcome, err := runner.Run(context.Background())
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
	assert.False(t, outcome.Success)
	assert.Equal(t, "Regeneration timed out", outcome.Message)
	assert.Contains(t, outcome.Error, context.DeadlineExceeded.Error())
	assert.Equal(t, "working\n", outcome.Output)
	assert.NotNil(t, outcome.Reports)
}

func TestRunReportsFailure(t *testing.T) {
	outcome, err := NewRunner(failingGenerator{}, 0, nil).Run(context.Background())
	require.NoError(t, err)
	assert.False(t, outcome.Success)
	assert.Equal(t, "Regeneration failed", outcome.Message)
	assert.Equal(t, "disk full", outcome.Error)
}

func TestRunReportsIncompleteCatalog(t *testing.T) {
	dir := t.TempDir()
	runner := NewRunner(&catalog.Pipeline{DataDir: dir, Roots: []string{"C", "H"}}, time.Minute, nil)

	outcome, err := runner.Run(context.Background())
	require.NoError(t, err)
	assert.False(t, outcome.Success)
	assert.Equal(t, "Regeneration incomplete", outcome.Message)
	assert.Contains(t, outcome.Error, "generation incomplete")
}

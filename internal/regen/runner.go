package regen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/Conceptual-Machines/piano-chords/internal/catalog"
	"github.com/Conceptual-Machines/piano-chords/internal/logger"
	"github.com/Conceptual-Machines/piano-chords/internal/metrics"
)

// DefaultTimeout bounds a regeneration run when none is configured
const DefaultTimeout = 30 * time.Second

// ErrBusy is returned while another regeneration is still running
var ErrBusy = errors.New("regeneration already in progress")

// Generator rebuilds catalogs; *catalog.Pipeline satisfies it
type Generator interface {
	Run(ctx context.Context, kinds []catalog.Kind, out io.Writer) ([]catalog.Report, error)
}

// Outcome is the result reported to the caller of a regeneration
type Outcome struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Output  string           `json:"output"`
	Error   string           `json:"error,omitempty"`
	Reports []catalog.Report `json:"reports"`
}

// Runner runs one regeneration at a time under a timeout
type Runner struct {
	Generator Generator
	Timeout   time.Duration
	Metrics   *metrics.Client // optional

	mu sync.Mutex
}

// NewRunner creates a runner; a non-positive timeout means DefaultTimeout
func NewRunner(g Generator, timeout time.Duration, m *metrics.Client) *Runner {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Runner{Generator: g, Timeout: timeout, Metrics: m}
}

// Run regenerates every catalog. It returns ErrBusy if a run is already in flight.
// On timeout it returns promptly with Success false; the lock is held until the
// abandoned run actually finishes.
func (r *Runner) Run(ctx context.Context) (Outcome, error) {
	if !r.mu.TryLock() {
		return Outcome{}, ErrBusy
	}

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		reports []catalog.Report
		err     error
	}
	out := &syncBuffer{}
	done := make(chan result, 1)
	start := time.Now()

	go func() {
		defer r.mu.Unlock()
		reports, err := r.Generator.Run(ctx, catalog.Kinds(), out)
		done <- result{reports: reports, err: err}
	}()

	var res result
	select {
	case res = <-done:
	case <-ctx.Done():
		res = result{err: ctx.Err()}
	}

	outcome := buildOutcome(res.reports, res.err, out.String())
	duration := time.Since(start)
	for _, report := range res.reports {
		r.Metrics.RecordGeneration(string(report.Kind), report.Generated, len(report.Skipped), report.Duration)
	}
	r.Metrics.RecordRegeneration(duration, outcome.Success)

	fields := logger.Fields{"duration_ms": duration.Milliseconds(), "success": outcome.Success}
	if outcome.Success {
		logger.Info("Regeneration finished", fields)
	} else {
		logger.Error("Regeneration failed", res.err, fields)
	}
	return outcome, nil
}

func buildOutcome(reports []catalog.Report, err error, output string) Outcome {
	if reports == nil {
		reports = []catalog.Report{}
	}
	outcome := Outcome{Output: output, Reports: reports}

	if err != nil {
		outcome.Message = "Regeneration failed"
		if errors.Is(err, context.DeadlineExceeded) {
			outcome.Message = "Regeneration timed out"
		}
		outcome.Error = err.Error()
		return outcome
	}

	var problems, parts []string
	for _, report := range reports {
		parts = append(parts, fmt.Sprintf("%d %s", report.Generated, report.Kind))
		if rerr := report.Err(); rerr != nil {
			problems = append(problems, rerr.Error())
		}
	}
	if len(problems) > 0 {
		outcome.Message = "Regeneration incomplete"
		outcome.Error = strings.Join(problems, "; ")
		return outcome
	}

	outcome.Success = true
	outcome.Message = "Regenerated " + strings.Join(parts, " and ")
	return outcome
}

// syncBuffer lets a timed-out caller read output the generator is still writing
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

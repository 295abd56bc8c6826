package catalog

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/Conceptual-Machines/piano-chords/internal/store"
)

// ErrGenerationIncomplete means a run produced no entries or skipped some
var ErrGenerationIncomplete = errors.New("generation incomplete")

// Kind names a catalog
type Kind string

const (
	Chords Kind = "chords"
	Scales Kind = "scales"
)

// Kinds lists every catalog in generation order
func Kinds() []Kind {
	return []Kind{Chords, Scales}
}

// ParseKinds turns a CLI argument into the catalogs it selects
func ParseKinds(arg string) ([]Kind, error) {
	switch arg {
	case "", "all":
		return Kinds(), nil
	case string(Chords):
		return []Kind{Chords}, nil
	case string(Scales):
		return []Kind{Scales}, nil
	}
	return nil, fmt.Errorf("unknown catalog %q (want chords, scales or all)", arg)
}

// File is the catalog's file name inside the data directory
func (k Kind) File() string {
	if k == Scales {
		return store.ScalesFile
	}
	return store.ChordsFile
}

// Report summarizes the generation of one catalog
type Report struct {
	Kind       Kind           `json:"kind"`
	File       string         `json:"file"`
	Attempted  int            `json:"attempted"`
	Generated  int            `json:"generated"`
	Skipped    []Skip         `json:"skipped"`
	Duplicates int            `json:"duplicates"`
	Duration   time.Duration  `json:"durationNs"`
	ByRoot     map[string]int `json:"byRoot"`
	ByType     map[string]int `json:"byType"`
}

func newReport[T Entry](kind Kind, result Result[T], root, code func(T) string, duration time.Duration) Report {
	r := Report{
		Kind:       kind,
		File:       kind.File(),
		Attempted:  result.Attempted,
		Generated:  len(result.Entries),
		Skipped:    result.Skipped,
		Duplicates: result.Duplicates,
		Duration:   duration,
		ByRoot:     make(map[string]int),
		ByType:     make(map[string]int),
	}
	for _, e := range result.Entries {
		r.ByRoot[root(e)]++
		r.ByType[code(e)]++
	}
	return r
}

// Err returns ErrGenerationIncomplete when the run was degraded
func (r Report) Err() error {
	if r.Generated == 0 {
		return fmt.Errorf("%w: no %s generated", ErrGenerationIncomplete, r.Kind)
	}
	if len(r.Skipped) > 0 {
		return fmt.Errorf("%w: %d %s skipped", ErrGenerationIncomplete, len(r.Skipped), r.Kind)
	}
	return nil
}

// Stats converts the report into its manifest form
func (r Report) Stats() store.CatalogStats {
	return store.CatalogStats{
		File:       r.File,
		Attempted:  r.Attempted,
		Generated:  r.Generated,
		Skipped:    len(r.Skipped),
		Duplicates: r.Duplicates,
		Complete:   r.Err() == nil,
	}
}

// WriteSummary prints a human readable summary of the report
func (r Report) WriteSummary(w io.Writer, roots, codes []string) {
	fmt.Fprintf(w, "Generated %d %s (%d attempted, %d skipped, %d duplicates) -> %s\n",
		r.Generated, r.Kind, r.Attempted, len(r.Skipped), r.Duplicates, r.File)

	fmt.Fprintln(w, "  by root:")
	for _, root := range roots {
		fmt.Fprintf(w, "    %-3s %d\n", root, r.ByRoot[root])
	}
	fmt.Fprintln(w, "  by type:")
	for _, code := range codes {
		fmt.Fprintf(w, "    %-36s %d\n", code, r.ByType[code])
	}
	for _, s := range r.Skipped {
		fmt.Fprintf(w, "  skipped %s %s: %s\n", s.Root, s.Type, s.Err)
	}
}

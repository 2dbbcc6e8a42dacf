// Package results persists sweep rows durably and analyzes a completed
// results file for the operator.
package results

import (
	"fmt"
	"os"
	"strconv"
)

// Header is line 1 of every results file. Downstream parsers key on it.
const Header = "RequestedResolutionMs,DeltaMs,STDEV"

// Row is one appended result line: the requested resolution and the
// measured sleep-delay statistics at that resolution.
type Row struct {
	RequestedResolutionMs float64
	DeltaMs               float64
	StdDev                float64
}

// Sink writes sweep rows to a plain-text results file. Every append
// opens, writes, syncs and closes the file on its own, so killing the
// process mid-sweep loses at most the in-flight row, never prior rows.
type Sink struct {
	Path string
}

func NewSink(path string) *Sink {
	return &Sink{Path: path}
}

// Initialize truncates (or creates) the results file and writes the
// header. Rows from an earlier run are discarded.
func (s *Sink) Initialize() error {
	f, err := os.Create(s.Path)
	if err != nil {
		return fmt.Errorf("failed to create results file %q: %v", s.Path, err)
	}
	defer f.Close()
	if _, err := fmt.Fprintln(f, Header); err != nil {
		return fmt.Errorf("failed to write results header: %v", err)
	}
	return f.Sync()
}

// Append durably writes one row. No buffering is held across calls.
func (s *Sink) Append(r Row) error {
	f, err := os.OpenFile(s.Path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open results file %q: %v", s.Path, err)
	}
	defer f.Close()
	_, err = fmt.Fprintf(f, "%s, %.4f, %s\n",
		strconv.FormatFloat(r.RequestedResolutionMs, 'f', -1, 64),
		r.DeltaMs,
		strconv.FormatFloat(r.StdDev, 'f', -1, 64))
	if err != nil {
		return fmt.Errorf("failed to append result row: %v", err)
	}
	return f.Sync()
}

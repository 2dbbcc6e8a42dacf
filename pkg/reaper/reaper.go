// Package reaper terminates stray instances of the resolution setter so
// every measurement cycle starts from a clean process table.
package reaper

import (
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v3/process"

	log "github.com/perfkit/timersweep/pkg/logging"
)

// ProcessReaper kills every running process matching an executable name.
// Killing by name is an ambient, global side effect (any process sharing
// the name dies, not only ones this run started), so it stays behind an
// interface that tests can replace.
type ProcessReaper interface {
	KillAllNamed(name string)
}

// Host reaps against the real OS process table.
type Host struct{}

// KillAllNamed forcibly terminates every process whose image name matches,
// case-insensitively. An empty match is success. Individual kill failures
// are racy by nature (the target may already be exiting) and are logged at
// debug rather than propagated.
func (Host) KillAllNamed(name string) {
	procs, err := process.Processes()
	if err != nil {
		log.Debugf("process enumeration failed: %v", err)
		return
	}
	for _, p := range procs {
		pn, err := p.Name()
		if err != nil {
			continue
		}
		if !strings.EqualFold(filepath.Base(pn), name) {
			continue
		}
		if err := p.Kill(); err != nil {
			log.Debugf("kill %s (pid %d): %v", name, p.Pid, err)
		}
	}
}

// Recorder is a ProcessReaper for tests. It records each requested name
// instead of touching the process table.
type Recorder struct {
	Calls []string
}

func (r *Recorder) KillAllNamed(name string) {
	r.Calls = append(r.Calls, name)
}

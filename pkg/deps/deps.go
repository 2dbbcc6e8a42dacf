// Package deps verifies the external collaborator tools are present
// before the sweep is allowed to touch the results file.
package deps

import (
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// Missing checks each required file under dir and returns every name
// that does not exist, so the operator sees all problems in one pass.
// Probes run concurrently; each reports its absence over a channel and
// the results are joined afterward, so there is no shared mutable state
// to guard.
func Missing(dir string, names []string) []string {
	absent := make(chan string, len(names))
	var wg sync.WaitGroup
	for _, name := range names {
		wg.Add(1)
		go func(n string) {
			defer wg.Done()
			if _, err := os.Stat(filepath.Join(dir, n)); err != nil {
				absent <- n
			}
		}(name)
	}
	wg.Wait()
	close(absent)

	var missing []string
	for n := range absent {
		missing = append(missing, n)
	}
	// Completion order is nondeterministic; sort for stable reporting.
	sort.Strings(missing)
	return missing
}

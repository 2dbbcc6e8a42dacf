// Package elevation reports whether the process holds the elevated
// privileges the external timer tools need to change global timer state.
package elevation

import "sync"

var (
	once     sync.Once
	elevated bool
)

// IsElevated returns true when the current process runs with
// administrator-equivalent privileges. The platform is probed once;
// privilege level cannot change for the life of the process. A failed
// probe reads as not elevated.
func IsElevated() bool {
	once.Do(func() {
		elevated = probe()
	})
	return elevated
}

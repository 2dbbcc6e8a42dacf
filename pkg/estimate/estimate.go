// Package estimate computes the operator-facing worst-case duration of a
// sweep before it starts.
package estimate

import (
	"math"
	"time"

	"github.com/perfkit/timersweep/pkg/config"
)

// assumedPerSample is the assumed worst-case cost of one coarse sleep
// call under a 1 ms timer resolution. The estimate built on it is a
// heuristic upper bound, not a measured value.
const assumedPerSample = 2 * time.Millisecond

// Estimate returns the worst-case duration of a full sweep over p. The
// iteration count is the continuous quotient (end-start)/increment; the
// display simply reports the continuous estimate.
func Estimate(p config.Parameters) time.Duration {
	if p.IncrementValue == 0 {
		// Unreachable after config validation, but never divide by zero.
		return 0
	}
	iterations := (p.EndValue - p.StartValue) / p.IncrementValue
	return time.Duration(iterations * float64(p.SampleValue) * float64(assumedPerSample))
}

// Minutes renders d as minutes rounded to 2 decimal places for the ETA
// line.
func Minutes(d time.Duration) float64 {
	return math.Round(d.Minutes()*100) / 100
}

// Package sweep drives the iteration over resolution values: for each
// point it reaps stray setter instances, applies the resolution, measures
// sleep delay and forwards one row to the results sink.
package sweep

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/perfkit/timersweep/pkg/config"
	log "github.com/perfkit/timersweep/pkg/logging"
	"github.com/perfkit/timersweep/pkg/reaper"
	"github.com/perfkit/timersweep/pkg/results"
)

type state int

const (
	stateIdle state = iota
	stateInitializing
	stateIterating
	stateCompleted
)

// defaultSettle is how long the OS gets to apply a new resolution before
// measurement starts. Skipping the settle window yields unreliable
// samples.
const defaultSettle = time.Millisecond

// endSlack tolerates floating-point drift when deciding whether an
// index-derived point still falls inside the swept range.
const endSlack = 1e-9

// Controller runs one full sweep. Iterations are strictly sequential;
// both external tools are singleton, name-addressed OS processes, so no
// two measurement cycles may ever overlap.
type Controller struct {
	Params      config.Parameters
	Runner      ToolRunner
	Reaper      reaper.ProcessReaper
	Sink        *results.Sink
	SetterPath  string
	SetterName  string
	MeasurePath string
	// Settle overrides the per-iteration settle delay; zero means the
	// 1 ms default.
	Settle time.Duration

	state state
}

// Points returns every resolution the sweep will visit, in increasing
// order, each rounded to 4 decimals. The iteration count is computed
// upfront and points are derived by index, so repeated float addition
// cannot drift the endpoint in or out of the range.
func Points(p config.Parameters) []float64 {
	n := int(math.Ceil((p.EndValue - p.StartValue) / p.IncrementValue))
	if n < 0 {
		n = 0
	}
	pts := make([]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		v := config.Round4(p.StartValue + float64(i)*p.IncrementValue)
		if v > p.EndValue+endSlack {
			break
		}
		pts = append(pts, v)
	}
	return pts
}

// Run executes the sweep. A failure at any point aborts the run with the
// point identified in the error; rows already appended stay on disk. The
// run is not resumable, the operator reruns instead.
func (c *Controller) Run() error {
	if c.state != stateIdle {
		return fmt.Errorf("sweep controller cannot be reused, create a new one")
	}
	c.state = stateInitializing
	settle := c.Settle
	if settle == 0 {
		settle = defaultSettle
	}
	pts := Points(c.Params)
	c.state = stateIterating
	for i, pt := range pts {
		if err := c.iterate(pt, settle); err != nil {
			return fmt.Errorf("sweep point %d of %d (%.4f ms): %w", i+1, len(pts), pt, err)
		}
	}
	c.state = stateCompleted
	return nil
}

func (c *Controller) iterate(pt float64, settle time.Duration) error {
	native := config.NativeUnit(pt)
	log.Infof("⏱️  Benchmarking %.4f ms (native unit %d)", pt, native)

	c.Reaper.KillAllNamed(c.SetterName)

	// Fire and forget: the setter persists its effect on its own, there
	// is no completion signal to wait for beyond process start.
	err := c.Runner.Start(c.SetterPath, "--resolution", strconv.Itoa(native), "--no-console")
	if err != nil {
		log.Errorf("failed to set timer resolution: %v", err)
	}

	time.Sleep(settle)

	out, err := c.Runner.CaptureOutput(c.MeasurePath, "--samples", strconv.Itoa(c.Params.SampleValue))
	if err != nil {
		return fmt.Errorf("measurement tool: %w", err)
	}
	s := ParseMeasurement(out)
	if s.AvgMs == 0 && s.StdDevMs == 0 {
		log.Warnf("no usable Avg/STDEV in measurement output at %.4f ms, recording zeros", pt)
	}
	if err := c.Sink.Append(results.Row{RequestedResolutionMs: pt, DeltaMs: s.AvgMs, StdDev: s.StdDevMs}); err != nil {
		return err
	}

	c.Reaper.KillAllNamed(c.SetterName)
	return nil
}

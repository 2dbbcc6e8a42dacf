package estimate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/perfkit/timersweep/pkg/config"
)

func TestEstimate(t *testing.T) {
	p := config.Parameters{StartValue: 0, EndValue: 10, IncrementValue: 1, SampleValue: 100}
	// (10/1) iterations * 100 samples * 2 ms
	assert.Equal(t, 2*time.Second, Estimate(p))
}

func TestEstimateFractionalIterations(t *testing.T) {
	p := config.Parameters{StartValue: 0.5, EndValue: 0.6, IncrementValue: 0.04, SampleValue: 10}
	// The continuous quotient is reported, not a rounded iteration count.
	got := Estimate(p)
	want := time.Duration((0.1 / 0.04) * 10 * float64(2*time.Millisecond))
	assert.InDelta(t, float64(want), float64(got), float64(time.Microsecond))
}

func TestEstimateZeroIncrementGuard(t *testing.T) {
	p := config.Parameters{StartValue: 0, EndValue: 10, IncrementValue: 0, SampleValue: 100}
	assert.Equal(t, time.Duration(0), Estimate(p))
}

func TestMinutes(t *testing.T) {
	assert.Equal(t, 0.03, Minutes(2*time.Second))
	assert.Equal(t, 2.5, Minutes(150*time.Second))
	assert.Equal(t, 0.0, Minutes(0))
}

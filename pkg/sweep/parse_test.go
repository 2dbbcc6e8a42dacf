package sweep

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMeasurement(t *testing.T) {
	s := ParseMeasurement("Avg: 1.2345\nSTDEV: 0.0102\n")
	assert.Equal(t, 1.2345, s.AvgMs)
	assert.Equal(t, 0.0102, s.StdDevMs)
}

func TestParseMeasurementCRLF(t *testing.T) {
	s := ParseMeasurement("Resolution: 5070\r\nAvg: 0.5123\r\nSTDEV: 0.0456\r\n")
	assert.Equal(t, 0.5123, s.AvgMs)
	assert.Equal(t, 0.0456, s.StdDevMs)
}

// TestParseMeasurementNoPrefixes Unrecognizable output is a defined (0,0)
// fallback, not an error.
func TestParseMeasurementNoPrefixes(t *testing.T) {
	s := ParseMeasurement("something went wrong\nno numbers here\n")
	assert.Equal(t, 0.0, s.AvgMs)
	assert.Equal(t, 0.0, s.StdDevMs)
}

func TestParseMeasurementEmpty(t *testing.T) {
	s := ParseMeasurement("")
	assert.Equal(t, 0.0, s.AvgMs)
	assert.Equal(t, 0.0, s.StdDevMs)
}

// TestParseMeasurementPartialGarbage A garbled field keeps its zero
// default while the other still parses.
func TestParseMeasurementPartialGarbage(t *testing.T) {
	s := ParseMeasurement("Avg: not-a-number\nSTDEV: 0.05\n")
	assert.Equal(t, 0.0, s.AvgMs)
	assert.Equal(t, 0.05, s.StdDevMs)
}

func TestParseMeasurementIgnoresUnknownLines(t *testing.T) {
	s := ParseMeasurement("warmup done\nAvg: 0.9\ntrailer\nSTDEV: 0.1\n")
	assert.Equal(t, 0.9, s.AvgMs)
	assert.Equal(t, 0.1, s.StdDevMs)
}

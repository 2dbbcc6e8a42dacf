package sweep

import (
	"strconv"
	"strings"

	"github.com/perfkit/timersweep/pkg/sample"
)

const (
	avgPrefix   = "Avg: "
	stdevPrefix = "STDEV: "
)

// ParseMeasurement extracts the mean and standard deviation from the
// measurement tool's stdout. Lines without a known prefix are ignored; a
// value that fails to parse keeps its zero default. Garbled output
// therefore degrades to an obviously-wrong zero row in the results file
// instead of aborting the sweep.
func ParseMeasurement(text string) sample.Sample {
	var s sample.Sample
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if v, ok := strings.CutPrefix(line, avgPrefix); ok {
			s.AvgMs, _ = strconv.ParseFloat(strings.TrimSpace(v), 64)
		} else if v, ok := strings.CutPrefix(line, stdevPrefix); ok {
			s.StdDevMs, _ = strconv.ParseFloat(strings.TrimSpace(v), 64)
		}
	}
	return s
}

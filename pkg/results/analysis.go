package results

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	moremath "github.com/aclements/go-moremath/stats"
	stats "github.com/montanaflynn/stats"
)

// Summary aggregates a completed sweep's rows.
type Summary struct {
	Rows    []Row
	Suspect int // all-zero rows, the parser's fallback for garbled tool output
	Optimal Row

	MeanDelta   float64
	MedianDelta float64
	P95Delta    float64
	// 95% confidence interval over DeltaMs, zero when fewer than 2 valid rows.
	CILow  float64
	CIHigh float64
}

// Analyze reads a results file back and locates the resolution with the
// smallest sleep delta, ties broken by the smaller standard deviation.
// All-zero rows are excluded from the pick (they would otherwise always
// win the minimum scan) and reported as suspect instead.
func Analyze(path string) (Summary, error) {
	var sum Summary
	f, err := os.Open(path)
	if err != nil {
		return sum, fmt.Errorf("failed to open results file %q: %v", path, err)
	}
	defer f.Close()

	rd := csv.NewReader(f)
	rd.TrimLeadingSpace = true
	records, err := rd.ReadAll()
	if err != nil {
		return sum, fmt.Errorf("failed to read results file %q: %v", path, err)
	}
	if len(records) < 2 {
		return sum, fmt.Errorf("no result rows in %q", path)
	}

	var deltas []float64
	found := false
	for _, rec := range records[1:] {
		if len(rec) < 3 {
			return sum, fmt.Errorf("malformed row %v in %q", rec, path)
		}
		res, err1 := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		delta, err2 := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		stdev, err3 := strconv.ParseFloat(strings.TrimSpace(rec[2]), 64)
		if err1 != nil || err2 != nil || err3 != nil {
			return sum, fmt.Errorf("malformed row %v in %q", rec, path)
		}
		row := Row{RequestedResolutionMs: res, DeltaMs: delta, StdDev: stdev}
		sum.Rows = append(sum.Rows, row)
		if delta == 0 && stdev == 0 {
			sum.Suspect++
			continue
		}
		deltas = append(deltas, delta)
		if !found || delta < sum.Optimal.DeltaMs ||
			(delta == sum.Optimal.DeltaMs && stdev < sum.Optimal.StdDev) {
			sum.Optimal = row
			found = true
		}
	}
	if !found {
		return sum, fmt.Errorf("no valid data found in %q", path)
	}

	sum.MeanDelta, _ = stats.Mean(deltas)
	sum.MedianDelta, _ = stats.Median(deltas)
	sum.P95Delta, _ = stats.Percentile(deltas, 95)
	if len(deltas) > 1 {
		_, sum.CILow, sum.CIHigh = moremath.MeanCI(deltas, 0.95)
	}
	return sum, nil
}

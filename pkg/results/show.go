package results

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	log "github.com/perfkit/timersweep/pkg/logging"
)

// Specify Language specific case wrapper as global variable
var caser = cases.Title(language.English)

// Method to init common table structure.
func initTable(header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	return table
}

// ShowSummary renders the per-point rows and the aggregate statistics to
// the operator via stdout.
func ShowSummary(sum Summary) {
	table := initTable([]string{"Result Type", "Requested Resolution (ms)", "Avg Delta (ms)", "STDEV"})
	for _, r := range sum.Rows {
		table.Append([]string{
			fmt.Sprintf("📊 %s", caser.String("sleep delta")),
			fmt.Sprintf("%.4f", r.RequestedResolutionMs),
			fmt.Sprintf("%.4f", r.DeltaMs),
			fmt.Sprintf("%.4f", r.StdDev),
		})
	}
	table.Render()

	log.Infof("Delta mean %.4f ms, median %.4f ms, p95 %.4f ms", sum.MeanDelta, sum.MedianDelta, sum.P95Delta)
	if sum.CIHigh > sum.CILow {
		log.Infof("95%% confidence interval for delta: %.4f-%.4f ms", sum.CILow, sum.CIHigh)
	}
	if sum.Suspect > 0 {
		log.Warnf("%d row(s) carried no usable measurement output and were excluded", sum.Suspect)
	}
	log.Infof("✅ Optimal timer resolution: %.4f ms (delta %.4f ms, stdev %.4f)",
		sum.Optimal.RequestedResolutionMs, sum.Optimal.DeltaMs, sum.Optimal.StdDev)
}

package main

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/perfkit/timersweep/pkg/config"
	"github.com/perfkit/timersweep/pkg/deps"
	"github.com/perfkit/timersweep/pkg/elevation"
	"github.com/perfkit/timersweep/pkg/estimate"
	"github.com/perfkit/timersweep/pkg/hpet"
	log "github.com/perfkit/timersweep/pkg/logging"
	"github.com/perfkit/timersweep/pkg/reaper"
	"github.com/perfkit/timersweep/pkg/results"
	"github.com/perfkit/timersweep/pkg/sweep"
)

// Collaborator tool contract: both live in the working directory and the
// setter is also addressed by image name for reaping.
const (
	setterName  = "SetTimerResolution.exe"
	measureName = "MeasureSleep.exe"
)

var (
	cfgfile    string
	resultsOut string
	debug      bool
	start      float64
	increment  float64
	end        float64
	samples    int
)

var rootCmd = &cobra.Command{
	Use:   "timersweep",
	Short: "A tool to sweep OS timer resolutions and benchmark sleep delay at each point",
	Run: func(cmd *cobra.Command, args []string) {
		if debug {
			log.SetDebug()
		}
		uid := uuid.New()
		log.Infof("🚀 Timer resolution benchmark, run %s", uid.String())

		params, err := config.Load(cfgfile)
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}
		// Flags beat the config file for one-off runs.
		if cmd.Flags().Changed("start") {
			params.StartValue = start
		}
		if cmd.Flags().Changed("increment") {
			params.IncrementValue = increment
		}
		if cmd.Flags().Changed("end") {
			params.EndValue = end
		}
		if cmd.Flags().Changed("samples") {
			params.SampleValue = samples
		}
		if err := config.Validate(params); err != nil {
			log.Error(err)
			os.Exit(1)
		}
		config.Show(params)

		if !elevation.IsElevated() {
			log.Error("administrator privileges are required to change the global timer resolution")
			os.Exit(1)
		}

		runner := sweep.ExecRunner{}
		if runtime.GOOS == "windows" {
			status, err := hpet.Probe(runner)
			if err != nil {
				log.Warnf("😥 HPET status unavailable: %v", err)
			} else {
				log.Infof("HPET status: %s", status)
				if status == hpet.Enabled {
					log.Warn("⚠️  HPET is enabled; disable it for the most stable results")
				}
			}
		}

		eta := estimate.Estimate(params)
		log.Infof("⏳ Estimated worst-case duration: %.2f minutes (heuristic upper bound)", estimate.Minutes(eta))

		rp := reaper.Host{}
		rp.KillAllNamed(setterName)

		wd, err := os.Getwd()
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}
		// Abort before the results sink truncates anything.
		if missing := deps.Missing(wd, []string{setterName, measureName}); len(missing) > 0 {
			for _, m := range missing {
				log.Errorf("missing dependency: %s", m)
			}
			os.Exit(1)
		}

		sink := results.NewSink(resultsOut)
		if err := sink.Initialize(); err != nil {
			log.Error(err)
			os.Exit(1)
		}

		ctl := &sweep.Controller{
			Params:      params,
			Runner:      runner,
			Reaper:      rp,
			Sink:        sink,
			SetterPath:  filepath.Join(wd, setterName),
			SetterName:  setterName,
			MeasurePath: filepath.Join(wd, measureName),
		}
		if err := ctl.Run(); err != nil {
			log.Error(err)
			os.Exit(1)
		}
		log.Infof("✅ Benchmark complete, results saved to %s", resultsOut)

		sum, err := results.Analyze(resultsOut)
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}
		results.ShowSummary(sum)
	},
}

func main() {
	rootCmd.Flags().StringVarP(&cfgfile, "config", "c", "appsettings.json", "benchmark parameters file")
	rootCmd.Flags().StringVar(&resultsOut, "results", "results.txt", "results output file")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable debug log")
	rootCmd.Flags().Float64Var(&start, "start", 0, "override StartValue (ms)")
	rootCmd.Flags().Float64Var(&increment, "increment", 0, "override IncrementValue (ms)")
	rootCmd.Flags().Float64Var(&end, "end", 0, "override EndValue (ms)")
	rootCmd.Flags().IntVar(&samples, "samples", 0, "override SampleValue")
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

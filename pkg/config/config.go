package config

import (
	"fmt"
	"math"

	"github.com/spf13/viper"

	log "github.com/perfkit/timersweep/pkg/logging"
)

// Parameters describes the sweep benchmark. Field names follow the
// appsettings.json contract shared with the external tools.
type Parameters struct {
	StartValue     float64 `mapstructure:"StartValue"`
	IncrementValue float64 `mapstructure:"IncrementValue"`
	EndValue       float64 `mapstructure:"EndValue"`
	SampleValue    int     `mapstructure:"SampleValue"`
}

// Load will read in the benchmark parameters file.
// Returns a Parameters struct
func Load(fn string) (Parameters, error) {
	var p Parameters
	v := viper.New()
	v.SetConfigFile(fn)
	if err := v.ReadInConfig(); err != nil {
		return p, fmt.Errorf("in file %q: %v", fn, err)
	}
	if err := v.Unmarshal(&p); err != nil {
		return p, fmt.Errorf("in file %q: %v", fn, err)
	}
	return p, nil
}

// Validate rejects parameter sets the sweep loop cannot terminate on.
func Validate(p Parameters) error {
	if p.IncrementValue <= 0 {
		return fmt.Errorf("IncrementValue must be > 0")
	}
	if p.EndValue < p.StartValue {
		return fmt.Errorf("EndValue must be >= StartValue")
	}
	if p.SampleValue < 1 {
		return fmt.Errorf("SampleValue must be > 0")
	}
	return nil
}

// Round4 rounds a resolution to 4 decimal places, half away from zero.
// Resolutions carry at most 4 decimal digits of meaning everywhere:
// console display, the results file and the native unit conversion.
func Round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// NativeUnit converts a requested resolution in milliseconds into the
// integer unit the resolution setter consumes (requested ms x 10000,
// i.e. hundreds of nanoseconds).
func NativeUnit(ms float64) int {
	return int(math.Round(Round4(ms) * 10000))
}

// Show - Display the sweep parameters
func Show(p Parameters) {
	log.Infof("🗒️  Sweeping %.4f ms to %.4f ms in %.4f ms steps, %d samples per point",
		p.StartValue, p.EndValue, p.IncrementValue, p.SampleValue)
}

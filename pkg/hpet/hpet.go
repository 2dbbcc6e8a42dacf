// Package hpet probes the boot configuration for HPET status. The result
// is an operator hint only; the sweep does not consume it.
package hpet

import (
	"fmt"
	"strings"
)

// Status of the platform tick configuration.
type Status string

const (
	Enabled  Status = "enabled"
	Disabled Status = "disabled"
)

// outputRunner is the slice of the tool runner the probe needs.
type outputRunner interface {
	CaptureOutput(path string, args ...string) (string, error)
}

// Probe asks bcdedit for the current boot entry and reports whether HPET
// is in play. Only meaningful on Windows; callers gate on the platform.
func Probe(r outputRunner) (Status, error) {
	out, err := r.CaptureOutput("bcdedit", "/enum", "{current}")
	if err != nil {
		return Enabled, fmt.Errorf("failed to query boot configuration: %v", err)
	}
	return ParseBCDEdit(out), nil
}

// ParseBCDEdit extracts the useplatformtick and disabledynamictick values
// from bcdedit output. HPET counts as disabled only when the platform
// tick is off and the dynamic tick is disabled.
func ParseBCDEdit(text string) Status {
	var useplatformtick, disabledynamictick string
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		switch fields[0] {
		case "useplatformtick":
			useplatformtick = strings.ToLower(fields[1])
		case "disabledynamictick":
			disabledynamictick = strings.ToLower(fields[1])
		}
	}
	if useplatformtick == "no" && disabledynamictick == "yes" {
		return Disabled
	}
	return Enabled
}

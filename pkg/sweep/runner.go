package sweep

import (
	"bytes"
	"os/exec"
)

// ToolRunner abstracts launching the external collaborator tools so the
// controller's iteration logic can be driven by scripted output in tests.
type ToolRunner interface {
	// Start launches a tool without waiting for it beyond process start.
	// Stdout is discarded.
	Start(path string, args ...string) error
	// CaptureOutput runs a tool to completion and returns everything it
	// wrote to stdout.
	CaptureOutput(path string, args ...string) (string, error)
}

// ExecRunner runs tools as real OS processes.
type ExecRunner struct{}

func (ExecRunner) Start(path string, args ...string) error {
	return exec.Command(path, args...).Start()
}

// CaptureOutput drains stdout into a buffer while the process runs and
// only then observes its exit, so a tool emitting more than a pipe buffer
// holds cannot deadlock the sweep.
func (ExecRunner) CaptureOutput(path string, args ...string) (string, error) {
	var stdout bytes.Buffer
	cmd := exec.Command(path, args...)
	cmd.Stdout = &stdout
	err := cmd.Run()
	return stdout.String(), err
}

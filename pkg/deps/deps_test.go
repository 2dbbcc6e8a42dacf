package deps

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingReportsEveryAbsentName(t *testing.T) {
	dir := t.TempDir()
	got := Missing(dir, []string{"SetTimerResolution.exe", "MeasureSleep.exe"})
	assert.Equal(t, []string{"MeasureSleep.exe", "SetTimerResolution.exe"}, got)
}

func TestMissingIgnoresPresentNames(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "MeasureSleep.exe"), []byte("x"), 0o755))
	got := Missing(dir, []string{"SetTimerResolution.exe", "MeasureSleep.exe"})
	assert.Equal(t, []string{"SetTimerResolution.exe"}, got)
}

func TestMissingAllPresent(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"SetTimerResolution.exe", "MeasureSleep.exe"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte("x"), 0o755))
	}
	assert.Empty(t, Missing(dir, []string{"SetTimerResolution.exe", "MeasureSleep.exe"}))
}

func TestMissingNoNames(t *testing.T) {
	assert.Empty(t, Missing(t.TempDir(), nil))
}

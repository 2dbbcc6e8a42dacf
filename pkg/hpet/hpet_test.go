package hpet

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBCDEdit(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Status
	}{
		{
			"disabled",
			"Windows Boot Loader\n-------------------\nuseplatformtick         No\ndisabledynamictick      Yes\n",
			Disabled,
		},
		{
			"platform tick on",
			"useplatformtick         Yes\ndisabledynamictick      Yes\n",
			Enabled,
		},
		{
			"dynamic tick on",
			"useplatformtick         No\ndisabledynamictick      No\n",
			Enabled,
		},
		{"neither key present", "identifier   {current}\npath   \\WINDOWS\\system32\n", Enabled},
		{"empty", "", Enabled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseBCDEdit(tt.text))
		})
	}
}

type fakeRunner struct {
	out string
	err error
}

func (r fakeRunner) CaptureOutput(path string, args ...string) (string, error) {
	return r.out, r.err
}

func TestProbe(t *testing.T) {
	st, err := Probe(fakeRunner{out: "useplatformtick         No\ndisabledynamictick      Yes\n"})
	require.NoError(t, err)
	assert.Equal(t, Disabled, st)
}

func TestProbeFailure(t *testing.T) {
	_, err := Probe(fakeRunner{err: fmt.Errorf("bcdedit not found")})
	assert.Error(t, err)
}

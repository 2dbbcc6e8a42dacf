package elevation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestIsElevatedStable The cached probe must report the same answer for
// the life of the process.
func TestIsElevatedStable(t *testing.T) {
	first := IsElevated()
	assert.Equal(t, first, IsElevated())
}

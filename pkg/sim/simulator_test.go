package sim

import (
	"testing"

	"github.com/consensys/karamul/pkg/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	tr := &trace.Trace{
		X:      []uint16{1234, 3647, 3647, 0},
		Y:      []uint16{5678, 6738, 6738, 0},
		Enable: []bool{true, false, true, false},
	}
	//
	out := Run(tr)
	require.Len(t, out, 4)
	assert.Equal(t, uint32(7006652), out[0])
	assert.Equal(t, uint32(7006652), out[1])
	assert.Equal(t, uint32(3647*6738), out[2])
	assert.Equal(t, uint32(3647*6738), out[3])
}

func TestRunEmptyTrace(t *testing.T) {
	out := Run(&trace.Trace{})
	assert.Empty(t, out)
}

func TestRunStartsDisabled(t *testing.T) {
	// The register reads zero until the first enabled tick.
	tr := &trace.Trace{
		X:      []uint16{9999, 9999},
		Y:      []uint16{9999, 9999},
		Enable: []bool{false, true},
	}
	//
	out := Run(tr)
	assert.Equal(t, uint32(0), out[0])
	assert.Equal(t, uint32(9999*9999), out[1])
}

func TestRecord(t *testing.T) {
	tr := &trace.Trace{
		X:      []uint16{100, 200},
		Y:      []uint16{300, 400},
		Enable: []bool{true, true},
	}
	//
	recorded := Record(tr)
	require.True(t, recorded.HasOut())
	assert.Equal(t, []uint32{30000, 80000}, recorded.Out)
	// Stimulus columns are shared, not copied.
	assert.Equal(t, tr.X, recorded.X)
}

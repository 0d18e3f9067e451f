package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromJsonBytes(t *testing.T) {
	tr, err := FromJsonBytes([]byte(`{"X": [1234, 3647], "Y": [5678, 6738], "EN": [1, 0]}`))
	require.NoError(t, err)
	//
	assert.Equal(t, 2, tr.Height())
	assert.Equal(t, []uint16{1234, 3647}, tr.X)
	assert.Equal(t, []uint16{5678, 6738}, tr.Y)
	assert.Equal(t, []bool{true, false}, tr.Enable)
	assert.False(t, tr.HasOut())
}

func TestFromJsonBytesRecorded(t *testing.T) {
	tr, err := FromJsonBytes([]byte(`{"X": [1234], "Y": [5678], "EN": [1], "OUT": [7006652]}`))
	require.NoError(t, err)
	//
	require.True(t, tr.HasOut())
	assert.Equal(t, []uint32{7006652}, tr.Out)
}

func TestFromJsonBytesOutOfBounds(t *testing.T) {
	_, err := FromJsonBytes([]byte(`{"X": [0, 70000], "Y": [0, 0], "EN": [0, 0]}`))
	require.ErrorContains(t, err, "column X out-of-bounds (row 1, value 70000)")
}

func TestFromJsonBytesNonBinaryEnable(t *testing.T) {
	_, err := FromJsonBytes([]byte(`{"X": [0], "Y": [0], "EN": [2]}`))
	require.ErrorContains(t, err, "column EN out-of-bounds")
}

func TestFromJsonBytesMissingColumn(t *testing.T) {
	_, err := FromJsonBytes([]byte(`{"X": [0], "EN": [0]}`))
	require.ErrorContains(t, err, "missing column Y")
}

func TestFromJsonBytesUnknownColumn(t *testing.T) {
	_, err := FromJsonBytes([]byte(`{"X": [0], "Y": [0], "EN": [0], "Z": [0]}`))
	require.ErrorContains(t, err, "unknown column Z")
}

func TestFromJsonBytesRagged(t *testing.T) {
	_, err := FromJsonBytes([]byte(`{"X": [0, 1], "Y": [0], "EN": [0, 0]}`))
	require.ErrorContains(t, err, "ragged trace")
}

func TestFromJsonBytesMalformed(t *testing.T) {
	_, err := FromJsonBytes([]byte(`{"X": [0]`))
	require.Error(t, err)
}

func TestJsonRoundTrip(t *testing.T) {
	tr := &Trace{
		X:      []uint16{0, 65535, 4660},
		Y:      []uint16{65535, 0, 22136},
		Enable: []bool{true, false, true},
		Out:    []uint32{4294836225, 4294836225, 103153760},
	}
	//
	bytes, err := ToJsonBytes(tr)
	require.NoError(t, err)
	//
	back, err := FromJsonBytes(bytes)
	require.NoError(t, err)
	assert.Equal(t, tr, back)
}

func TestCborRoundTrip(t *testing.T) {
	tr := &Trace{
		X:      []uint16{1, 2, 3},
		Y:      []uint16{4, 5, 6},
		Enable: []bool{false, true, false},
	}
	//
	bytes, err := ToCborBytes(tr)
	require.NoError(t, err)
	//
	back, err := FromCborBytes(bytes)
	require.NoError(t, err)
	assert.Equal(t, tr, back)
}

func TestCborMalformed(t *testing.T) {
	_, err := FromCborBytes([]byte{0xFF})
	require.Error(t, err)
}

func TestSlice(t *testing.T) {
	tr := &Trace{
		X:      []uint16{1, 2, 3, 4},
		Y:      []uint16{5, 6, 7, 8},
		Enable: []bool{true, true, false, false},
		Out:    []uint32{9, 10, 11, 12},
	}
	//
	sub := tr.Slice(1, 3)
	assert.Equal(t, 2, sub.Height())
	assert.Equal(t, []uint16{2, 3}, sub.X)
	assert.Equal(t, []uint32{10, 11}, sub.Out)
}

func TestWithOutHeightMismatch(t *testing.T) {
	tr := &Trace{X: []uint16{1}, Y: []uint16{2}, Enable: []bool{true}}
	assert.Panics(t, func() { tr.WithOut([]uint32{1, 2}) })
}

package mr

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTime(t *testing.T) {
	tests := map[float64]string{
		3:            "3.0",
		1.2:          "1.2",
		0.000123:     "0.000123",
		1e-5:         "1e-05",
		1e16:         "1e+16",
		123456789.5:  "123456789.5",
		1.0 / 3.0:    "0.333333333333",
		-2:           "-2.0",
		math.Inf(1):  "inf",
		math.Inf(-1): "-inf",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatTime(in), "FormatTime(%v)", in)
	}
	assert.Equal(t, "nan", FormatTime(math.NaN()))
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	err := WriteReport(&buf, []Result{
		{BitSize: 8, Time: 1.2, File: "B"},
		{BitSize: 16, Time: 3.0, File: "B"},
	})
	require.NoError(t, err)
	assert.Equal(t, "8 1.2 B\n16 3.0 B\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteReport(&buf, nil))
	assert.Empty(t, buf.String())
}

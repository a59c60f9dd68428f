package mr

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"
)

// FormatTime renders t with 12 significant digits, adding ".0" when the
// result would otherwise read as an integer.
func FormatTime(t float64) string {
	switch {
	case math.IsNaN(t):
		return "nan"
	case math.IsInf(t, 1):
		return "inf"
	case math.IsInf(t, -1):
		return "-inf"
	}

	s := strconv.FormatFloat(t, 'g', 12, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// WriteReport writes "<bitSize> <bestTime> <bestFileName>" per result.
func WriteReport(out io.Writer, results []Result) error {
	w := bufio.NewWriter(out)
	for _, r := range results {
		w.WriteString(strconv.Itoa(r.BitSize))
		w.WriteByte(' ')
		w.WriteString(FormatTime(r.Time))
		w.WriteByte(' ')
		w.WriteString(r.File)
		if _, err := w.WriteString("\n"); err != nil {
			return err
		}
	}
	return w.Flush()
}

package mr

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	csvDelim = ','

	bitSizeField = "bit size"
	timeField    = "time"
)

// ParseRow reads the bit size from fields[0] and the time from fields[1].
// The returned *ParseError has no File or Line set.
func ParseRow(fields []string) (Row, error) {
	if len(fields) < 1 {
		return Row{}, &ParseError{Field: bitSizeField, Err: ErrMissingField}
	}
	raw := strings.TrimSpace(fields[0])
	bits, err := strconv.Atoi(raw)
	if err != nil {
		return Row{}, &ParseError{Field: bitSizeField, Value: fields[0], Err: numError(err)}
	}

	if len(fields) < 2 {
		return Row{}, &ParseError{Field: timeField, Err: ErrMissingField}
	}
	raw = strings.TrimSpace(fields[1])
	t, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Row{}, &ParseError{Field: timeField, Value: fields[1], Err: numError(err)}
	}

	return Row{BitSize: bits, Time: t}, nil
}

// numError drops the strconv wrapper, ParseError already names the value.
func numError(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return ne.Err
	}
	return err
}

// RowReader reads rows from one comma-delimited file, one line per row.
// A blank line is a row with no fields.
type RowReader struct {
	name    string
	scanner *bufio.Scanner
	line    int
}

func NewRowReader(name string, r io.Reader) *RowReader {
	return &RowReader{name: name, scanner: bufio.NewScanner(r)}
}

// Next returns the next row, or io.EOF once the input is exhausted.
func (rr *RowReader) Next() (Row, error) {
	if !rr.scanner.Scan() {
		if err := rr.scanner.Err(); err != nil {
			return Row{}, fmt.Errorf("reading %s: %w", rr.name, err)
		}
		return Row{}, io.EOF
	}
	rr.line++

	fields, err := splitLine(rr.scanner.Text())
	if err != nil {
		return Row{}, fmt.Errorf("reading %s:%d: %w", rr.name, rr.line, err)
	}

	row, err := ParseRow(fields)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.File = rr.name
			pe.Line = rr.line
		}
		return Row{}, err
	}
	return row, nil
}

// splitLine applies CSV quoting to a single line. An empty line has no fields.
func splitLine(line string) ([]string, error) {
	if line == "" {
		return nil, nil
	}
	cr := csv.NewReader(strings.NewReader(line))
	cr.Comma = csvDelim
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	fields, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	return fields, err
}

// ReadRows is the default Mapfn: it opens file.Path and emits every row.
func ReadRows(file FileInfo, emit func(Row)) error {
	f, err := openFile(file.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	rr := NewRowReader(file.Filename, f)
	for {
		row, err := rr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		emit(row)
	}
}

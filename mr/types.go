package mr

// Row is one parsed line of a timing file. Columns after the time are ignored.
type Row struct {
	BitSize int
	Time    float64
}

type FileInfo struct {
	Filename string
	Path     string
}

// Result is one line of the final report.
type Result struct {
	BitSize int
	Time    float64
	File    string
}

// Mapfn turns one file into rows, calling emit for each. Returning a non-nil
// error aborts the run.
type Mapfn = func(file FileInfo, emit func(Row)) error

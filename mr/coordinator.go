package mr

import (
	"fmt"
	"log"
	"maps"
	"slices"
)

// Coordinator maps every workload into rows and reduces them to the fastest
// time per bit size. Files are processed one at a time in workload order.
type Coordinator struct {
	mapfn    Mapfn
	workload []FileInfo
	logger   *log.Logger

	bestTime map[int]float64
	bestFile map[int]string
}

func NewCoordinator() *Coordinator {
	return &Coordinator{
		mapfn:    ReadRows,
		workload: make([]FileInfo, 0),
		bestTime: make(map[int]float64),
		bestFile: make(map[int]string),
	}
}

func (c *Coordinator) RegisterMapFn(fn Mapfn) *Coordinator {
	c.mapfn = fn
	return c
}

func (c *Coordinator) LoadWorkloads(workloads []FileInfo) *Coordinator {
	c.workload = workloads
	return c
}

// WithLogger enables per-file progress logging.
func (c *Coordinator) WithLogger(l *log.Logger) *Coordinator {
	c.logger = l
	return c
}

// Run scans every workload. On error the collected state is discarded so no
// partial report can be produced.
func (c *Coordinator) Run() error {
	if c.mapfn == nil {
		return ErrNoMapFn
	}

	for id, fileInfo := range c.workload {
		c.logf("Map Worker -> task %d for file: %s", id, fileInfo.Filename)
		rows := 0
		err := c.mapfn(fileInfo, func(row Row) {
			rows++
			c.observe(row, fileInfo.Filename)
		})
		if err != nil {
			clear(c.bestTime)
			clear(c.bestFile)
			return fmt.Errorf("file %s: %w", fileInfo.Filename, err)
		}
		c.logf("Map Worker -> %d rows from file: %s", rows, fileInfo.Filename)
	}

	c.logf("Done with all jobs, %d bit sizes", len(c.bestTime))
	return nil
}

// observe keeps the first file to reach the minimum; equal times do not
// replace it.
func (c *Coordinator) observe(row Row, file string) {
	best, ok := c.bestTime[row.BitSize]
	if ok && !(row.Time < best) {
		return
	}
	c.bestTime[row.BitSize] = row.Time
	c.bestFile[row.BitSize] = file
}

// Results returns one entry per bit size in ascending order.
func (c *Coordinator) Results() []Result {
	keys := slices.Sorted(maps.Keys(c.bestTime))
	results := make([]Result, 0, len(keys))
	for _, b := range keys {
		results = append(results, Result{
			BitSize: b,
			Time:    c.bestTime[b],
			File:    c.bestFile[b],
		})
	}
	return results
}

func (c *Coordinator) logf(format string, v ...any) {
	if c.logger != nil {
		c.logger.Printf(format, v...)
	}
}

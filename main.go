package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/caleberi/findbest/mr"
)

func main() {
	dir := flag.String("dir", ".", "directory holding the timing files")
	pattern := flag.String("pattern", mr.DefaultPattern, "glob pattern for timing file names")
	verbose := flag.Bool("v", false, "log progress to stderr")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("findbest: ")

	if err := run(*dir, *pattern, *verbose, os.Stdout); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(dir, pattern string, verbose bool, out io.Writer) error {
	workloads, err := mr.Discover(dir, pattern)
	if err != nil {
		return err
	}

	coordinator := mr.NewCoordinator().
		RegisterMapFn(mr.ReadRows).
		LoadWorkloads(workloads)
	if verbose {
		coordinator.WithLogger(log.Default())
		log.Printf("scanning %d files matching %s in %s", len(workloads), pattern, dir)
	}

	if err := coordinator.Run(); err != nil {
		return err
	}
	return mr.WriteReport(out, coordinator.Results())
}

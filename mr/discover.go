package mr

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const DefaultPattern = "*.dat"

// Discover lists the regular files directly inside dir whose base name
// matches pattern. Hidden files are skipped unless the pattern itself starts
// with a dot. The result is sorted by file name.
func Discover(dir, pattern string) ([]FileInfo, error) {
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	workloads := []FileInfo{}
	for _, d := range entries {
		name := d.Name()
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(pattern, ".") {
			continue
		}
		matches, _ := filepath.Match(pattern, name)
		if !matches {
			continue
		}

		path := filepath.Join(dir, name)
		regular, err := isRegular(path, d)
		if err != nil {
			return nil, err
		}
		if !regular {
			continue
		}
		workloads = append(workloads, FileInfo{Filename: name, Path: path})
	}

	// os.ReadDir already sorts by name.
	return workloads, nil
}

// isRegular follows symlinks. A dangling link still counts so that opening
// it fails the run instead of dropping the file.
func isRegular(path string, d fs.DirEntry) (bool, error) {
	if d.Type()&fs.ModeSymlink == 0 {
		return d.Type().IsRegular(), nil
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	return info.Mode().IsRegular(), nil
}

func openFile(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return f, nil
}

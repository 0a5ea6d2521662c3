// Package batch runs the codec across a directory of sample save files,
// reporting per-file pass/fail results as a reusable library so both the
// test suite and the terra-save CLI/watch server can drive it.
package batch

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/terra-rs/save-codec/internal/catalog"
	"github.com/terra-rs/save-codec/internal/codec"
)

// Result is the outcome of round-tripping one sample file.
type Result struct {
	Path     string
	Version  int32
	Passed   bool
	Err      error
	Duration time.Duration
}

// Run round-trips every ".dplr" (plaintext) file under dir through
// codec.Load/codec.Save and reports byte-identity. A fresh correlation ID
// tags the whole run for log correlation.
func Run(dir string, cat codec.Catalog) (runID uuid.UUID, results []Result, err error) {
	runID = uuid.New()

	paths, err := findDplrFiles(dir)
	if err != nil {
		return runID, nil, err
	}

	for _, path := range paths {
		results = append(results, roundTripOne(path, cat))
	}
	return runID, results, nil
}

// findDplrFiles returns every plaintext ".dplr" sample under dir, sorted
// for deterministic run order.
func findDplrFiles(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		if strings.HasSuffix(strings.ToLower(d.Name()), ".dplr") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "walking %s", dir)
	}
	sort.Strings(paths)
	return paths, nil
}

func roundTripOne(path string, cat codec.Catalog) Result {
	start := time.Now()
	original, err := os.ReadFile(path)
	if err != nil {
		return Result{Path: path, Err: errors.Wrapf(err, "reading %s", path)}
	}

	player, err := codec.Load(original, cat)
	if err != nil {
		return Result{Path: path, Err: err, Duration: time.Since(start)}
	}

	roundTripped, err := codec.Save(player, cat)
	if err != nil {
		return Result{Path: path, Version: player.Version, Err: err, Duration: time.Since(start)}
	}

	passed := string(roundTripped) == string(original)
	var resultErr error
	if !passed {
		resultErr = errors.Newf("round-trip mismatch: %d bytes in, %d bytes out", len(original), len(roundTripped))
	}

	return Result{
		Path:     path,
		Version:  player.Version,
		Passed:   passed,
		Err:      resultErr,
		Duration: time.Since(start),
	}
}

// ensure catalog.Store satisfies codec.Catalog at compile time.
var _ codec.Catalog = (*catalog.Store)(nil)

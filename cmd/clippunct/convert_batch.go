package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	clippunct "github.com/alnah/go-clippunct"
	"github.com/alnah/go-clippunct/internal/fileutil"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for batch operations.
var (
	ErrNoInput         = errors.New("no input specified")
	ErrReadInput       = errors.New("failed to read input")
	ErrWriteOutput     = errors.New("failed to write output")
	ErrCreateOutputDir = errors.New("failed to create output directory")
)

// FormatConverter is the interface for the conversion service.
type FormatConverter interface {
	Format(ctx context.Context, format clippunct.Format, content string) (string, bool, error)
}

// Compile-time interface implementation check.
var _ FormatConverter = (*clippunct.Converter)(nil)

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Format     clippunct.Format
	Unchanged  bool // no full-width punctuation found
	Err        error
	Duration   time.Duration
}

// batchParams groups parameters shared across batch/file conversion.
type batchParams struct {
	format  clippunct.Format // ignored when auto is set
	auto    bool             // detect the format per file
	workers int
}

// convertBatch processes files concurrently with a bounded set of workers.
// Results keep the order of files.
func convertBatch(ctx context.Context, conv FormatConverter, files []FileToConvert, params batchParams) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := params.workers
	if concurrency < 1 {
		concurrency = 1
	}
	if concurrency > len(files) {
		concurrency = len(files)
	}

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, conv, files[idx], params)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single file and returns the result.
// In-place files are only rewritten when something changed; other outputs
// always receive a copy so the output tree is complete.
func convertFile(ctx context.Context, conv FormatConverter, f FileToConvert, params batchParams) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	finish := func(err error) ConversionResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return finish(fmt.Errorf("%w: %v", ErrReadInput, err))
	}

	format := params.format
	if params.auto {
		format = clippunct.DetectFormat(f.InputPath, string(content))
	}
	result.Format = format

	out, changed, err := conv.Format(ctx, format, string(content))
	if err != nil {
		return finish(err)
	}
	result.Unchanged = !changed

	if !changed {
		if f.InPlace() {
			return finish(nil)
		}
		out = string(content)
	}

	if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
		return finish(fmt.Errorf("%w: %v", ErrCreateOutputDir, err))
	}

	if err := fileutil.WriteFileAtomic(f.OutputPath, []byte(out), filePermissions); err != nil {
		return finish(fmt.Errorf("%w: %v", ErrWriteOutput, err))
	}

	return finish(nil)
}

// resolvePoolSize determines the worker count.
// Priority: explicit setting > GOMAXPROCS-based calculation.
func resolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	// GOMAXPROCS is container-aware once automaxprocs has run.
	n := runtime.GOMAXPROCS(0) / 2

	// Minimum 1, maximum 8
	if n < 1 {
		return 1
	}
	if n > 8 {
		return 8
	}
	return n
}

// ResultSummary holds the count of converted, unchanged and failed files.
type ResultSummary struct {
	Converted int
	Unchanged int
	Failed    int
}

// countResults tallies conversion outcomes.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		switch {
		case r.Err != nil:
			summary.Failed++
		case r.Unchanged:
			summary.Unchanged++
		default:
			summary.Converted++
		}
	}
	return summary
}

// printResultsWithWriter outputs conversion results and returns the failure count.
func printResultsWithWriter(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if quiet {
			continue
		}

		switch {
		case verbose:
			status := "converted"
			if r.Unchanged {
				status = "unchanged"
			}
			fmt.Fprintf(env.Stdout, "%s -> %s [%s, %s] (%v)\n",
				r.InputPath, r.OutputPath, r.Format, status, r.Duration.Round(time.Millisecond))
		case r.Unchanged:
			fmt.Fprintf(env.Stdout, "Unchanged %s\n", r.InputPath)
		default:
			fmt.Fprintf(env.Stdout, "Converted %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d converted, %d unchanged, %d failed\n",
			summary.Converted, summary.Unchanged, summary.Failed)
	}

	return summary.Failed
}

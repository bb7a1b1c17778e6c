package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	clippunct "github.com/alnah/go-clippunct"
	"github.com/alnah/go-clippunct/internal/config"
	"github.com/alnah/go-clippunct/internal/fileutil"
	"github.com/alnah/go-clippunct/internal/logging"
)

// ErrNoOutput is returned when several inputs have nowhere to go.
var ErrNoOutput = errors.New("no output specified")

// stdinName stands for standard input in paths and results.
const stdinName = "-"

// runConvert orchestrates file and stream conversion.
func runConvert(ctx context.Context, args []string, env *Environment) error {
	flags, paths, err := parseConvertFlags(args)
	if err != nil {
		return err
	}

	// Validate worker count early
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}
	if flags.inPlace && flags.output != "" {
		return fmt.Errorf("%w: --in-place cannot be combined with --output", ErrOutputConflict)
	}

	cfg, err := loadConfig(flags.common, env)
	if err != nil {
		return err
	}
	mergeConvertFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	params, err := resolveFormat(flags.format)
	if err != nil {
		return err
	}
	params.workers = resolvePoolSize(cfg.Convert.Workers)

	logger := logging.New(env.Stderr, cfg.Log.Level, cfg.Log.Format)
	conv := clippunct.NewConverter(
		clippunct.WithSkipTags(cfg.HTML.SkipTags...),
		clippunct.WithLogger(logger),
	)

	// Stream mode: stdin to stdout or to a single output file
	if len(paths) == 0 || (len(paths) == 1 && paths[0] == stdinName) {
		return convertStream(ctx, conv, env.Stdin, stdinName, flags.output, params, flags.common, env)
	}

	inPlace := cfg.Convert.InPlace && flags.output == ""

	// A lone file without a destination is a filter: print to stdout
	if !inPlace && flags.output == "" {
		if len(paths) != 1 {
			return fmt.Errorf("%w: use --output or --in-place for multiple files", ErrNoOutput)
		}
		info, err := os.Stat(paths[0])
		if err != nil {
			return err
		}
		if info.IsDir() {
			return fmt.Errorf("%w: use --output or --in-place for directories", ErrNoOutput)
		}
		return convertFileToStdout(ctx, conv, paths[0], params, flags.common, env)
	}

	files, err := discoverFiles(paths, flags.output, inPlace)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no supported files found in %s", ErrNoInput, strings.Join(paths, ", "))
	}

	logger.Debug("converting files", slog.Int("files", len(files)), slog.Int("workers", params.workers))

	results := convertBatch(ctx, conv, files, params)

	failedCount := printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, env)
	if failedCount > 0 {
		return fmt.Errorf("%d conversion(s) failed", failedCount)
	}
	return nil
}

// mergeConvertFlags merges CLI flags into config. CLI values override config values.
func mergeConvertFlags(flags *convertFlags, cfg *config.Config) {
	if flags.workers > 0 {
		cfg.Convert.Workers = flags.workers
	}
	if flags.inPlace {
		cfg.Convert.InPlace = true
	}
}

// resolveFormat maps the --format value to batch parameters.
// "auto" (or empty) detects the format of each input.
func resolveFormat(name string) (batchParams, error) {
	if name == "" || strings.EqualFold(name, "auto") {
		return batchParams{auto: true}, nil
	}
	format, err := clippunct.ParseFormat(name)
	if err != nil {
		return batchParams{}, err
	}
	return batchParams{format: format}, nil
}

// convertFileToStdout converts one file and prints the result.
func convertFileToStdout(ctx context.Context, conv FormatConverter, path string, params batchParams, common commonFlags, env *Environment) error {
	f, err := os.Open(path) // #nosec G304 -- user-provided input path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	defer func() { _ = f.Close() }()

	return convertStream(ctx, conv, f, path, "", params, common, env)
}

// convertStream converts everything readable from r.
// Without output the result goes to stdout; unchanged input is echoed as is.
func convertStream(ctx context.Context, conv FormatConverter, r io.Reader, name, output string, params batchParams, common commonFlags, env *Environment) error {
	start := time.Now()

	// One byte over the limit lets the converter report the size error.
	content, err := io.ReadAll(io.LimitReader(r, clippunct.DefaultMaxInputSize+1))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	format := params.format
	if params.auto {
		detectName := name
		if name == stdinName {
			detectName = output
		}
		format = clippunct.DetectFormat(detectName, string(content))
	}

	out, changed, err := conv.Format(ctx, format, string(content))
	if err != nil {
		return err
	}
	if !changed {
		out = string(content)
	}

	if output == "" {
		if _, err := io.WriteString(env.Stdout, out); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(output), dirPermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrCreateOutputDir, err)
	}
	if err := fileutil.WriteFileAtomic(output, []byte(out), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	printResultsWithWriter([]ConversionResult{{
		InputPath:  name,
		OutputPath: output,
		Format:     format,
		Unchanged:  !changed,
		Duration:   time.Since(start),
	}}, common.quiet, common.verbose, env)
	return nil
}

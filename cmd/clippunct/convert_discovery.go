package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-clippunct/internal/config"
)

// Sentinel errors for file discovery.
var (
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrOutputConflict     = errors.New("conflicting output options")
)

// supportedExtensions lists the file types picked up when walking directories.
var supportedExtensions = map[string]bool{
	".txt":      true,
	".text":     true,
	".html":     true,
	".htm":      true,
	".md":       true,
	".markdown": true,
}

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// InPlace reports whether the file is rewritten where it is.
func (f FileToConvert) InPlace() bool {
	return f.OutputPath == f.InputPath
}

// discoverFiles expands inputs into the files to convert.
// Explicit files are taken whatever their extension; directories are walked
// for supported extensions. With inPlace set, every output is its input.
func discoverFiles(inputs []string, outputDir string, inPlace bool) ([]FileToConvert, error) {
	var files []FileToConvert
	seen := make(map[string]string)

	add := func(inputPath, baseInputDir string) error {
		outPath := inputPath
		if !inPlace {
			outPath = resolveOutputPath(inputPath, outputDir, baseInputDir)
		}
		if prev, ok := seen[outPath]; ok {
			return fmt.Errorf("%w: %s and %s both write %s", ErrOutputConflict, prev, inputPath, outPath)
		}
		seen[outPath] = inputPath
		files = append(files, FileToConvert{InputPath: inputPath, OutputPath: outPath})
		return nil
	}

	for _, inputPath := range inputs {
		info, err := os.Stat(inputPath)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			if err := add(inputPath, ""); err != nil {
				return nil, err
			}
			continue
		}

		err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return fmt.Errorf("scanning %s: %w", path, err)
			}
			if d.IsDir() || !isSupportedExtension(path) {
				return nil
			}
			return add(path, inputPath)
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

// resolveOutputPath determines where the converted copy of inputPath goes.
// An outputDir with a supported extension names the output file itself.
func resolveOutputPath(inputPath, outputDir, baseInputDir string) string {
	if baseInputDir == "" && isSupportedExtension(outputDir) {
		return outputDir
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			return filepath.Join(outputDir, relPath)
		}
	}

	return filepath.Join(outputDir, filepath.Base(inputPath))
}

// isSupportedExtension reports whether path ends in a known text extension.
func isSupportedExtension(path string) bool {
	return supportedExtensions[strings.ToLower(filepath.Ext(path))]
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > config.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, config.MaxWorkers)
	}
	return nil
}

package clippunct

import (
	"errors"

	"github.com/alnah/go-clippunct/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	// ErrParse is returned when HTML input cannot be parsed (including invalid UTF-8).
	ErrParse = pipeline.ErrParse

	ErrEmptyInput    = errors.New("input cannot be empty")
	ErrInputTooLarge = errors.New("input exceeds maximum size")
	ErrUnknownFormat = errors.New("unknown format")
)

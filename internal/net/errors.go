package net

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies which phase of a training run failed.
type Kind int

const (
	// Unknown is a filesystem or parse failure not otherwise classified.
	Unknown Kind = iota
	// WriteFailed means persisting a model did not complete.
	WriteFailed
	// ReadFailed means a persisted model could not be read or was malformed.
	ReadFailed
	// RemoveFailed means a stale distinguishing checkpoint could not be deleted.
	RemoveFailed
	// NestedTrainingFailed means the nested distinguishing training call failed.
	NestedTrainingFailed
	// ConversionFailed means a numeric output could not be converted to a label.
	ConversionFailed
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case WriteFailed:
		return "write failed"
	case ReadFailed:
		return "read failed"
	case RemoveFailed:
		return "remove failed"
	case NestedTrainingFailed:
		return "nested training failed"
	case ConversionFailed:
		return "conversion failed"
	}
	return "unknown"
}

// Error is the typed error surfaced by the training and persistence paths.
// The first Error encountered aborts the whole run; there is no
// partial-success recovery.
type Error struct {
	Kind Kind
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("net: %s %s: %s: %v", e.Op, e.Path, e.Kind, e.Err)
	}
	return fmt.Sprintf("net: %s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf classifies any error for callers; errors from outside this
// package report Unknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

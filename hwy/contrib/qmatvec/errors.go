package qmatvec

import (
	"errors"
	"fmt"
)

// Sentinel errors reported inside a *ShapeError. Match them with errors.Is.
var (
	// ErrDimension reports a non-positive row or column count.
	ErrDimension = errors.New("dimensions must be positive")

	// ErrLaneMultiple reports a column-major row count that is not a multiple of Lanes.
	ErrLaneMultiple = fmt.Errorf("rows must be a multiple of %d", Lanes)

	// ErrShortBuffer reports a matrix, input or output slice shorter than the dimensions need.
	ErrShortBuffer = errors.New("buffer too short")

	// ErrLayout reports an unknown Layout value.
	ErrLayout = errors.New("unknown layout")

	// ErrRounding reports an unknown Rounding value.
	ErrRounding = errors.New("unknown rounding")
)

// ShapeError describes a precondition violation of a kernel call.
type ShapeError struct {
	Op     string // entry point that was called
	Layout Layout
	Rows   int
	Cols   int
	Detail string // which buffer, and its length, for ErrShortBuffer
	Err    error
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	msg := fmt.Sprintf("qmatvec: %s %dx%d %s: %v", e.Op, e.Rows, e.Cols, e.Layout, e.Err)
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

// Unwrap returns the sentinel error.
func (e *ShapeError) Unwrap() error {
	return e.Err
}

// Validate checks the preconditions of a kernel call over a matrix stored in
// the given layout. It returns nil or a *ShapeError.
func Validate(layout Layout, m []int8, rows, cols int, v, result []int16) error {
	return validate("Validate", layout, m, rows, cols, v, result)
}

func validate(op string, layout Layout, m []int8, rows, cols int, v, result []int16) error {
	fail := func(err error, detail string) error {
		return &ShapeError{Op: op, Layout: layout, Rows: rows, Cols: cols, Detail: detail, Err: err}
	}
	switch {
	case !layout.valid():
		return fail(ErrLayout, "")
	case rows <= 0 || cols <= 0:
		return fail(ErrDimension, "")
	case layout == ColMajor && rows%Lanes != 0:
		return fail(ErrLaneMultiple, "")
	case len(m) < rows*cols:
		return fail(ErrShortBuffer, fmt.Sprintf("matrix has %d elements, need %d", len(m), rows*cols))
	case len(v) < cols:
		return fail(ErrShortBuffer, fmt.Sprintf("input has %d elements, need %d", len(v), cols))
	case len(result) < rows:
		return fail(ErrShortBuffer, fmt.Sprintf("output has %d elements, need %d", len(result), rows))
	}
	return nil
}

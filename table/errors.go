package table

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch is returned when a row's cell count differs from the
	// column count.
	ErrShapeMismatch = errors.New("table: row shape mismatch")

	// ErrInvalidWidthHint is returned for a negative fixed width or weight.
	ErrInvalidWidthHint = errors.New("table: invalid width hint")
)

// ShapeError reports which row failed the shape check.
type ShapeError struct {
	Row     int
	Cells   int
	Columns int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%v: row %d has %d cells, expected %d", ErrShapeMismatch, e.Row, e.Cells, e.Columns)
}

func (e *ShapeError) Unwrap() error { return ErrShapeMismatch }

// HintError reports which column carries an invalid hint.
type HintError struct {
	Column int
	Hint   WidthHint
}

func (e *HintError) Error() string {
	return fmt.Sprintf("%v: column %d has %s", ErrInvalidWidthHint, e.Column, e.Hint)
}

func (e *HintError) Unwrap() error { return ErrInvalidWidthHint }

func validate(columns []Column, rows []Row) error {
	for i, c := range columns {
		if !c.Hint.validate() {
			return &HintError{Column: i, Hint: c.Hint}
		}
	}
	for i, r := range rows {
		if len(r) != len(columns) {
			return &ShapeError{Row: i, Cells: len(r), Columns: len(columns)}
		}
	}
	return nil
}

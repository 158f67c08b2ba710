package fasta

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidWidth is matched by every *WidthError.
	ErrInvalidWidth = errors.New("line width must be > 0 or -1")

	// ErrInvalidText is returned when input is not valid UTF-8 text.
	ErrInvalidText = errors.New("input is not valid UTF-8 text")
)

// A WidthError reports a line width that is neither Unwrapped nor positive.
type WidthError struct {
	Width int
}

func (e *WidthError) Error() string {
	return fmt.Sprintf("invalid line width %d: %s", e.Width, ErrInvalidWidth)
}

func (e *WidthError) Is(target error) bool {
	return target == ErrInvalidWidth
}

// A FileError records a failure to open, read, create or write a FASTA file.
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("couldn't %s %s: %s", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

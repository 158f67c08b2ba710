package fasta

import (
	"os"
)

// ReadFile reads every record in the FASTA file at path. The file is closed
// before ReadFile returns.
//
// Any failure is returned as a *FileError and no records are returned with it.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	records, err := NewReader(f).ReadAll()
	if err != nil {
		return nil, &FileError{Op: "read", Path: path, Err: err}
	}
	return records, nil
}

// WriteFile writes records to the file at path, creating or truncating it.
// Sequences are wrapped at width columns, or not at all if width is
// Unwrapped.
//
// An invalid width is reported as a *WidthError before the file is created.
// Other failures are returned as a *FileError. A partially written file is
// left in place.
func WriteFile(path string, records []Record, width int) (err error) {
	if err := CheckWidth(width); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return &FileError{Op: "create", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &FileError{Op: "close", Path: path, Err: cerr}
		}
	}()

	w := NewWriter(f)
	w.Columns = width
	if err := w.WriteAll(records); err != nil {
		return &FileError{Op: "write", Path: path, Err: err}
	}
	return nil
}

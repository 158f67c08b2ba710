package fasta

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Unwrapped is the line width that writes every sequence on a single line.
const Unwrapped = -1

// DefaultColumns is the line width used by NewWriter and Record.String.
const DefaultColumns = 60

// A Record corresponds to a single entry in a FASTA file. That is, an
// identifier and description taken from the header line and a sequence
// concatenated from every body line that follows it.
//
// None of the fields contain newlines.
type Record struct {
	ID          string
	Description string
	Sequence    string
}

// Header returns the header text of the record without the leading '>'.
func (rec Record) Header() string {
	if len(rec.Description) == 0 {
		return rec.ID
	}
	return rec.ID + " " + rec.Description
}

// String returns the record in FASTA format, with the sequence wrapped at 60
// columns.
func (rec Record) String() string {
	return rec.StringCols(DefaultColumns)
}

// StringCols returns the FASTA string corresponding to this record with the
// sequence wrapped at the number of columns given.
//
// If cols is <= 0, then no wrapping is done.
func (rec Record) StringCols(cols int) string {
	if cols <= 0 {
		cols = Unwrapped
	}
	return strings.Join(rec.lines(cols), "\n")
}

// lines returns the header line followed by the sequence lines. cols must
// already be validated.
func (rec Record) lines(cols int) []string {
	lines := []string{">" + rec.Header()}
	if cols == Unwrapped {
		return append(lines, rec.Sequence)
	}
	return append(lines, wrap(rec.Sequence, cols)...)
}

// wrap splits s into chunks of cols characters. The last chunk may be
// shorter. Chunk boundaries always fall between runes.
func wrap(s string, cols int) []string {
	chunks := make([]string, 0, 1+utf8.RuneCountInString(s)/cols)
	start, n := 0, 0
	for i := range s {
		if n == cols {
			chunks = append(chunks, s[start:i])
			start, n = i, 0
		}
		n++
	}
	if start < len(s) {
		chunks = append(chunks, s[start:])
	}
	return chunks
}

// A Reader reads records from FASTA encoded input.
//
// Body lines that appear before the first header do not belong to any record
// and are skipped.
type Reader struct {
	buf  *bufio.Reader
	line int
	eof  bool

	// The header of the next record to be returned, once one has been seen.
	header     string
	seenHeader bool
}

func NewReader(r io.Reader) *Reader {
	return &Reader{
		buf:  bufio.NewReader(r),
		line: 0,
	}
}

// ReadAll will read all records in the FASTA input and return them as a
// slice, in input order.
// If an error is encountered, processing is stopped, and the error is
// returned. Empty input yields an empty slice.
func (r *Reader) ReadAll() ([]Record, error) {
	records := make([]Record, 0, 100)
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// Read will read the next record in the FASTA input. io.EOF is returned once
// all records have been read.
//
// Trailing whitespace (including '\r' from CRLF line endings) is stripped from
// every line. The header is split on its first run of whitespace: the part
// before it is the ID and the rest is the description. Body lines are
// concatenated without separators. A header followed directly by another
// header, or by the end of input, yields a record with an empty sequence.
//
// It is NOT safe to call this function from multiple goroutines.
func (r *Reader) Read() (Record, error) {
	var body []string
	for !r.eof {
		line, err := r.buf.ReadString('\n')
		if err == io.EOF {
			r.eof = true
			if len(line) == 0 {
				break
			}
		} else if err != nil {
			return Record{}, err
		}
		r.line++
		if !utf8.ValidString(line) {
			return Record{}, fmt.Errorf("line %d: %w", r.line, ErrInvalidText)
		}
		line = strings.TrimRightFunc(line, unicode.IsSpace)

		if strings.HasPrefix(line, ">") {
			// This means we've begun reading the next record. Keep its
			// header and return the current one, if there is one.
			prev, had := r.header, r.seenHeader
			r.header, r.seenHeader = line[1:], true
			if had {
				return newRecord(prev, body), nil
			}
			continue
		}
		if r.seenHeader {
			body = append(body, line)
		}
	}
	if !r.seenHeader {
		return Record{}, io.EOF
	}
	r.seenHeader = false
	return newRecord(r.header, body), nil
}

func newRecord(header string, body []string) Record {
	id, desc := splitHeader(header)
	return Record{
		ID:          id,
		Description: desc,
		Sequence:    strings.Join(body, ""),
	}
}

// splitHeader splits header text (without '>') on its first whitespace run.
func splitHeader(header string) (id, desc string) {
	i := strings.IndexFunc(header, unicode.IsSpace)
	if i < 0 {
		return header, ""
	}
	return header[:i], strings.TrimLeftFunc(header[i:], unicode.IsSpace)
}

// A Writer writes records to a FASTA encoded file.
//
// Lines are separated by a single '\n'. No line break follows the last line
// written.
//
// The header text is never wrapped.
type Writer struct {
	// The number of columns to wrap a sequence at. By default, this
	// is set to 60. Unwrapped (-1) writes every sequence on one line.
	// Any other value <= 0 is invalid and makes Write fail.
	Columns int
	buf     *bufio.Writer
	started bool
}

// NewWriter creates a new FASTA writer that can write FASTA records to
// an io.Writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		Columns: DefaultColumns,
		buf:     bufio.NewWriter(w),
	}
}

// Flush writes any buffered data to the underlying io.Writer.
func (w *Writer) Flush() error {
	return w.buf.Flush()
}

// Write writes a single FASTA record to the underlying io.Writer.
//
// An invalid Columns value is reported before anything is written.
//
// You may need to call Flush in order for the changes to be written.
func (w *Writer) Write(rec Record) error {
	if err := CheckWidth(w.Columns); err != nil {
		return err
	}
	for _, line := range rec.lines(w.Columns) {
		if w.started {
			if err := w.buf.WriteByte('\n'); err != nil {
				return err
			}
		}
		if _, err := w.buf.WriteString(line); err != nil {
			return err
		}
		w.started = true
	}
	return nil
}

// WriteAll writes a slice of FASTA records to the underlying io.Writer, and
// calls Flush.
func (w *Writer) WriteAll(records []Record) error {
	if err := CheckWidth(w.Columns); err != nil {
		return err
	}
	for _, rec := range records {
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return w.Flush()
}

// CheckWidth returns a *WidthError if width is not a valid line width. Valid
// widths are Unwrapped and any positive number.
func CheckWidth(width int) error {
	if width == Unwrapped || width > 0 {
		return nil
	}
	return &WidthError{Width: width}
}

package fields

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ugorji/go/codec"

	"github.com/kentwait/fastrust/fasta"
)

// ErrUnknownFormat is returned by ParseFormat for names it doesn't know.
var ErrUnknownFormat = errors.New("unknown record format")

// Format selects the encoding of a record list.
type Format int

const (
	JSON Format = iota
	Msgpack
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case Msgpack:
		return "msgpack"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat returns the format with the given name. Names are case
// insensitive; "mp" is accepted for MessagePack.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "json":
		return JSON, nil
	case "msgpack", "mp":
		return Msgpack, nil
	}
	return 0, fmt.Errorf("%w: '%s'", ErrUnknownFormat, name)
}

func (f Format) handle() (codec.Handle, error) {
	switch f {
	case JSON:
		var jh codec.JsonHandle
		jh.Indent = 2
		return &jh, nil
	case Msgpack:
		var mh codec.MsgpackHandle
		mh.WriteExt = true
		return &mh, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
}

// Encode writes records to w as a list of field mappings.
func Encode(w io.Writer, f Format, records []fasta.Record) error {
	h, err := f.handle()
	if err != nil {
		return err
	}
	list := make([]map[string]interface{}, len(records))
	for i, rec := range records {
		list[i] = ToFields(rec)
	}
	if err := codec.NewEncoder(w, h).Encode(list); err != nil {
		return fmt.Errorf("encode %s: %w", f, err)
	}
	return nil
}

// Decode reads a list of field mappings from r and converts each one to a
// record. The first malformed mapping stops decoding and its error is
// returned.
func Decode(r io.Reader, f Format) ([]fasta.Record, error) {
	h, err := f.handle()
	if err != nil {
		return nil, err
	}
	var list []map[string]interface{}
	if err := codec.NewDecoder(r, h).Decode(&list); err != nil {
		return nil, fmt.Errorf("decode %s: %w", f, err)
	}
	records := make([]fasta.Record, 0, len(list))
	for i, m := range list {
		rec, err := fromFields(i, m)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

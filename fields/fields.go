package fields

import (
	"fmt"

	"github.com/kentwait/fastrust/fasta"
)

// Names of the fields of a record mapping.
const (
	KeyID          = "seq_id"
	KeyDescription = "description"
	KeySequence    = "sequence"
)

// A MissingFieldError reports a required key absent from a record mapping.
type MissingFieldError struct {
	Index int // position in the decoded list, or -1
	Field string
}

func (e *MissingFieldError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s key not found", e.Field)
	}
	return fmt.Sprintf("record %d: %s key not found", e.Index, e.Field)
}

// A FieldTypeError reports a field whose value is not text.
type FieldTypeError struct {
	Index int
	Field string
	Value interface{}
}

func (e *FieldTypeError) Error() string {
	msg := fmt.Sprintf("%s must be text, got %T", e.Field, e.Value)
	if e.Index < 0 {
		return msg
	}
	return fmt.Sprintf("record %d: %s", e.Index, msg)
}

// ToFields returns the mapping form of rec.
func ToFields(rec fasta.Record) map[string]interface{} {
	return map[string]interface{}{
		KeyID:          rec.ID,
		KeyDescription: rec.Description,
		KeySequence:    rec.Sequence,
	}
}

// FromFields builds a record from its mapping form. Every key is required, and
// values must be strings or byte slices. Unknown keys are ignored.
func FromFields(m map[string]interface{}) (fasta.Record, error) {
	return fromFields(-1, m)
}

func fromFields(index int, m map[string]interface{}) (fasta.Record, error) {
	var vals [3]string
	for i, key := range []string{KeyID, KeyDescription, KeySequence} {
		v, ok := m[key]
		if !ok {
			return fasta.Record{}, &MissingFieldError{Index: index, Field: key}
		}
		switch v := v.(type) {
		case string:
			vals[i] = v
		case []byte:
			vals[i] = string(v)
		default:
			return fasta.Record{},
				&FieldTypeError{Index: index, Field: key, Value: v}
		}
	}
	return fasta.Record{ID: vals[0], Description: vals[1], Sequence: vals[2]}, nil
}

package quant

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Field names a form attribute that can carry errors
type Field string

const (
	FieldSwipecardCode   Field = "swipecard_code"
	FieldQuantType       Field = "quant_type"
	FieldAssayBarcode    Field = "assay_barcode"
	FieldStandardBarcode Field = "standard_barcode"
	FieldInputBarcode    Field = "input_barcode"
	// FieldQuant carries errors raised while saving the quant itself
	FieldQuant Field = "quant"
)

// Kind identifies why a field failed
type Kind string

const (
	KindBlank      Kind = "blank"
	KindNotFound   Kind = "not_found"
	KindUsed       Kind = "used"
	KindUnsuitable Kind = "unsuitable"
	KindExpired    Kind = "expired"
	KindInvalid    Kind = "invalid"
)

// Errors is an ordered mapping of field to messages. Fields keep the order in which
// they first received an error. The zero value is ready to use and means valid.
type Errors struct {
	order    []Field
	messages map[Field][]string
}

// Add appends message to field
func (e *Errors) Add(field Field, message string) {
	if e.messages == nil {
		e.messages = make(map[Field][]string)
	}
	if _, ok := e.messages[field]; !ok {
		e.order = append(e.order, field)
	}
	e.messages[field] = append(e.messages[field], message)
}

// Merge appends every message of other, keeping its field order
func (e *Errors) Merge(other Errors) {
	for _, field := range other.order {
		for _, message := range other.messages[field] {
			e.Add(field, message)
		}
	}
}

// Empty reports whether no error was recorded
func (e Errors) Empty() bool {
	return len(e.order) == 0
}

// Len returns the total number of messages
func (e Errors) Len() int {
	n := 0
	for _, messages := range e.messages {
		n += len(messages)
	}
	return n
}

// Fields returns the fields with errors, in order
func (e Errors) Fields() []Field {
	return append([]Field(nil), e.order...)
}

// On returns the messages recorded for field
func (e Errors) On(field Field) []string {
	return append([]string(nil), e.messages[field]...)
}

// FullMessages prefixes every message with its attribute name, using humanize to name fields
func (e Errors) FullMessages(humanize func(Field) string) []string {
	var out []string
	for _, field := range e.order {
		for _, message := range e.messages[field] {
			out = append(out, humanize(field)+" "+message)
		}
	}
	return out
}

// Error implements error so a failed validation can be returned where one is expected
func (e Errors) Error() string {
	var parts []string
	for _, field := range e.order {
		parts = append(parts, fmt.Sprintf("%s %s", field, strings.Join(e.messages[field], ", ")))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// MarshalJSON renders the errors as an object whose keys follow field order
func (e Errors) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range e.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(field))
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(e.messages[field])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// RecordInvalidError is returned by a Store when the quant fails its own persistence
// checks, such as the assay uniqueness constraint
type RecordInvalidError struct {
	Messages []string
}

func (e *RecordInvalidError) Error() string {
	return "record invalid: " + strings.Join(e.Messages, ", ")
}

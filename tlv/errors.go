package tlv

import (
	"fmt"
)

// ValueTooLongError is returned when a value does not fit the 16-bit length
// field of the TLV header.
type ValueTooLongError struct {
	Length int
	Max    int
}

func (e *ValueTooLongError) Error() string {
	return fmt.Sprintf("value too long: %d bytes (max %d)", e.Length, e.Max)
}

// TruncatedRecordError describes a record whose declared length runs past the
// end of the buffer. Offset is the position of the record's header.
type TruncatedRecordError struct {
	Offset int
	Need   int
	Have   int
}

func (e *TruncatedRecordError) Error() string {
	return fmt.Sprintf("insufficient bytes for TLV value at offset %d (need %d, have %d)", e.Offset, e.Need, e.Have)
}

// UnknownFieldError is returned by Validate when no rule is registered for
// the extension/field pair.
type UnknownFieldError struct {
	ExtensionType uint16
	FieldType     uint8
	// ExtensionName is set when the extension itself is known but defines no
	// such field.
	ExtensionName string
}

func (e *UnknownFieldError) Error() string {
	if e.ExtensionName == "" {
		return fmt.Sprintf("unknown extension type 0x%04x", e.ExtensionType)
	}
	return fmt.Sprintf("unknown field type 0x%02x for %s extension", e.FieldType, e.ExtensionName)
}

const (
	ConstraintMaxLength = "max_length"
	ConstraintEncoding  = "encoding"
)

// ConstraintViolationError is returned by Validate when a value breaks a
// registered rule.
type ConstraintViolationError struct {
	Field      string
	Constraint string
	Limit      int
	Length     int
	Encoding   string
}

func (e *ConstraintViolationError) Error() string {
	if e.Constraint == ConstraintEncoding {
		return fmt.Sprintf("%s must be valid %s", e.Field, e.Encoding)
	}
	return fmt.Sprintf("%s must be %d bytes or less (got %d)", e.Field, e.Limit, e.Length)
}

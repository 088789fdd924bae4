package tlv

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/pkg/errors"
)

const (
	// HeaderLen is the size of the fixed record header.
	HeaderLen = 5
	// MaxValueLen is the largest value the 16-bit length field can describe.
	MaxValueLen = math.MaxUint16
)

// Field is a single TLV record. Fields are immutable; use NewField or Decode
// to obtain one.
type Field struct {
	extensionType uint16
	fieldType     uint8
	value         []byte
}

// NewField constructs a Field from a copy of value.
func NewField(extensionType uint16, fieldType uint8, value []byte) (Field, error) {
	if len(value) > MaxValueLen {
		return Field{}, &ValueTooLongError{
			Length: len(value),
			Max:    MaxValueLen,
		}
	}
	return Field{
		extensionType: extensionType,
		fieldType:     fieldType,
		value:         cloneBytes(value),
	}, nil
}

func (f Field) ExtensionType() uint16 {
	return f.extensionType
}

func (f Field) FieldType() uint8 {
	return f.fieldType
}

// Length returns the TLV length, which always equals len(f.Value()).
func (f Field) Length() uint16 {
	return uint16(len(f.value))
}

// Value returns a copy of the field's value.
func (f Field) Value() []byte {
	return cloneBytes(f.value)
}

// Size returns the encoded size of the field.
func (f Field) Size() int {
	return HeaderLen + len(f.value)
}

func (f Field) Equals(other Field) bool {
	return f.extensionType == other.extensionType &&
		f.fieldType == other.fieldType &&
		bytes.Equal(f.value, other.value)
}

func (f Field) String() string {
	return fmt.Sprintf("TLV(ext=0x%04x, field=0x%02x, len=%d)", f.extensionType, f.fieldType, len(f.value))
}

// Encode writes the field's wire representation to w.
func (f Field) Encode(w io.Writer) error {
	if _, err := w.Write(f.header()); err != nil {
		return errors.Wrap(err, "error writing TLV header")
	}
	if _, err := w.Write(f.value); err != nil {
		return errors.Wrap(err, "error writing TLV value")
	}
	return nil
}

// Bytes returns the field's wire representation.
func (f Field) Bytes() []byte {
	buf := make([]byte, f.Size())
	copy(buf, f.header())
	copy(buf[HeaderLen:], f.value)
	return buf
}

func (f Field) header() []byte {
	var hdr [HeaderLen]byte
	binary.LittleEndian.PutUint16(hdr[0:2], f.extensionType)
	hdr[2] = f.fieldType
	binary.LittleEndian.PutUint16(hdr[3:5], uint16(len(f.value)))
	return hdr[:]
}

// Encode returns the wire representation of a single record. It fails with a
// *ValueTooLongError if value exceeds MaxValueLen bytes.
func Encode(extensionType uint16, fieldType uint8, value []byte) ([]byte, error) {
	f, err := NewField(extensionType, fieldType, value)
	if err != nil {
		return nil, err
	}
	return f.Bytes(), nil
}

// EncodeFields concatenates the wire representation of each field.
func EncodeFields(fields []Field) []byte {
	var size int
	for _, f := range fields {
		size += f.Size()
	}
	out := make([]byte, 0, size)
	for _, f := range fields {
		out = append(out, f.Bytes()...)
	}
	return out
}

// ParseOutcome is the result of decoding a buffer.
type ParseOutcome struct {
	// Fields holds every record decoded before the first failure, in buffer
	// order.
	Fields []Field
	// Errors holds a *TruncatedRecordError for the record that stopped
	// decoding, if any.
	Errors []error
	// TrailingBytes counts bytes at the end of the buffer that were too short
	// to hold a header. They are ignored and do not count as errors.
	TrailingBytes int
}

// FullyParsed reports whether decoding finished without errors.
func (p *ParseOutcome) FullyParsed() bool {
	return len(p.Errors) == 0
}

// ErrorStrings returns the human-readable description of each error.
func (p *ParseOutcome) ErrorStrings() []string {
	out := make([]string, len(p.Errors))
	for i, err := range p.Errors {
		out[i] = err.Error()
	}
	return out
}

// Decode parses buf as a sequence of consecutive records. Decoding stops at
// the first record whose value runs past the end of buf; the records before
// it are returned along with the error. A tail shorter than HeaderLen is
// ignored.
func Decode(buf []byte) *ParseOutcome {
	res := &ParseOutcome{
		Fields: make([]Field, 0),
		Errors: make([]error, 0),
	}

	offset := 0
	for len(buf)-offset >= HeaderLen {
		extensionType := binary.LittleEndian.Uint16(buf[offset : offset+2])
		fieldType := buf[offset+2]
		length := int(binary.LittleEndian.Uint16(buf[offset+3 : offset+5]))

		start := offset + HeaderLen
		if start+length > len(buf) {
			res.Errors = append(res.Errors, &TruncatedRecordError{
				Offset: offset,
				Need:   length,
				Have:   len(buf) - start,
			})
			return res
		}

		res.Fields = append(res.Fields, Field{
			extensionType: extensionType,
			fieldType:     fieldType,
			value:         cloneBytes(buf[start : start+length]),
		})
		offset = start + length
	}

	res.TrailingBytes = len(buf) - offset
	return res
}

func cloneBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

package tlv

import (
	"bytes"
	"encoding/hex"
	"io/ioutil"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func readFixture(t *testing.T, name string) []byte {
	data, err := ioutil.ReadFile("testdata/" + name)
	require.NoError(t, err)
	return data
}

func TestEncode_Worker1(t *testing.T) {
	b, err := Encode(ExtensionWorkerHashrate, FieldUserIdentity, []byte("worker1"))
	require.NoError(t, err)
	require.Equal(t, "0200010700776f726b657231", hex.EncodeToString(b))
	require.EqualValues(t, readFixture(t, "worker1"), b)

	res := Decode(b)
	require.True(t, res.FullyParsed())
	require.Len(t, res.Fields, 1)
	require.EqualValues(t, 0x0002, res.Fields[0].ExtensionType())
	require.EqualValues(t, 0x01, res.Fields[0].FieldType())
	require.EqualValues(t, 7, res.Fields[0].Length())
	require.Equal(t, "worker1", string(res.Fields[0].Value()))
}

func TestEncode_ValueLengthBoundary(t *testing.T) {
	b, err := Encode(0xffff, 0xff, make([]byte, MaxValueLen))
	require.NoError(t, err)
	require.Len(t, b, HeaderLen+MaxValueLen)
	require.Equal(t, []byte{0xff, 0xff, 0xff, 0xff, 0xff}, b[:HeaderLen])

	b, err = Encode(0xffff, 0xff, make([]byte, MaxValueLen+1))
	require.Nil(t, b)
	var tooLong *ValueTooLongError
	require.True(t, errors.As(err, &tooLong))
	require.Equal(t, MaxValueLen+1, tooLong.Length)
	require.Equal(t, MaxValueLen, tooLong.Max)
	require.Equal(t, "value too long: 65536 bytes (max 65535)", err.Error())
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		ext   uint16
		field uint8
		value []byte
	}{
		{"empty value", 0x0000, 0x00, []byte{}},
		{"nil value", 0x1234, 0x02, nil},
		{"text", ExtensionWorkerHashrate, FieldUserIdentity, []byte("rig-07.bay-3")},
		{"binary", 0xbeef, 0x7f, []byte{0x00, 0xff, 0x10, 0x00}},
		{"max length", 0xffff, 0xff, bytes.Repeat([]byte{0xab}, MaxValueLen)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Encode(tt.ext, tt.field, tt.value)
			require.NoError(t, err)
			require.Len(t, b, HeaderLen+len(tt.value))

			res := Decode(b)
			require.True(t, res.FullyParsed())
			require.Empty(t, res.Errors)
			require.Equal(t, 0, res.TrailingBytes)
			require.Len(t, res.Fields, 1)

			f := res.Fields[0]
			require.Equal(t, tt.ext, f.ExtensionType())
			require.Equal(t, tt.field, f.FieldType())
			require.EqualValues(t, len(tt.value), f.Length())
			require.EqualValues(t, len(f.Value()), f.Length())
			require.True(t, bytes.Equal(tt.value, f.Value()))
		})
	}
}

func TestDecode_MultipleRecords(t *testing.T) {
	data := readFixture(t, "two_fields")
	res := Decode(data)
	require.True(t, res.FullyParsed())
	require.Len(t, res.Fields, 2)

	first, err := NewField(ExtensionWorkerHashrate, FieldUserIdentity, []byte("worker1"))
	require.NoError(t, err)
	second, err := NewField(ExtensionNegotiation, 0x05, []byte{0xaa, 0xbb})
	require.NoError(t, err)
	require.True(t, first.Equals(res.Fields[0]))
	require.True(t, second.Equals(res.Fields[1]))

	require.EqualValues(t, data, EncodeFields(res.Fields))
}

func TestDecode_Empty(t *testing.T) {
	for _, in := range [][]byte{nil, {}} {
		res := Decode(in)
		require.True(t, res.FullyParsed())
		require.Empty(t, res.Fields)
		require.Empty(t, res.Errors)
		require.Equal(t, 0, res.TrailingBytes)
	}
}

func TestDecode_ShortTailIgnored(t *testing.T) {
	for n := 1; n < HeaderLen; n++ {
		res := Decode(bytes.Repeat([]byte{0xee}, n))
		require.True(t, res.FullyParsed())
		require.Empty(t, res.Fields)
		require.Equal(t, n, res.TrailingBytes)
	}

	data := append(readFixture(t, "worker1"), 0x01, 0x02)
	res := Decode(data)
	require.True(t, res.FullyParsed())
	require.Len(t, res.Fields, 1)
	require.Equal(t, 2, res.TrailingBytes)
}

func TestDecode_TruncatedFirstRecord(t *testing.T) {
	data := readFixture(t, "worker1")
	res := Decode(data[:len(data)-1])
	require.False(t, res.FullyParsed())
	require.Empty(t, res.Fields)
	require.Len(t, res.Errors, 1)

	var truncated *TruncatedRecordError
	require.True(t, errors.As(res.Errors[0], &truncated))
	require.Equal(t, 0, truncated.Offset)
	require.Equal(t, 7, truncated.Need)
	require.Equal(t, 6, truncated.Have)
	require.Equal(t, []string{"insufficient bytes for TLV value at offset 0 (need 7, have 6)"}, res.ErrorStrings())
}

func TestDecode_TruncatedLaterRecordKeepsPrior(t *testing.T) {
	data := readFixture(t, "two_fields")
	res := Decode(data[:len(data)-1])
	require.False(t, res.FullyParsed())
	require.Len(t, res.Fields, 1)
	require.Equal(t, "worker1", string(res.Fields[0].Value()))
	require.Len(t, res.Errors, 1)

	var truncated *TruncatedRecordError
	require.True(t, errors.As(res.Errors[0], &truncated))
	require.Equal(t, 12, truncated.Offset)
	require.Equal(t, 2, truncated.Need)
	require.Equal(t, 1, truncated.Have)
}

func TestDecode_DoesNotAliasInput(t *testing.T) {
	data := readFixture(t, "worker1")
	res := Decode(data)
	require.Len(t, res.Fields, 1)
	data[HeaderLen] = 'W'
	require.Equal(t, "worker1", string(res.Fields[0].Value()))

	v := res.Fields[0].Value()
	v[0] = 'X'
	require.Equal(t, "worker1", string(res.Fields[0].Value()))
}

func TestField_Encode(t *testing.T) {
	f, err := NewField(ExtensionWorkerHashrate, FieldUserIdentity, []byte("worker1"))
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, f.Encode(&buf))
	require.EqualValues(t, readFixture(t, "worker1"), buf.Bytes())
	require.EqualValues(t, buf.Bytes(), f.Bytes())
	require.Equal(t, "TLV(ext=0x0002, field=0x01, len=7)", f.String())
}

package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	b, err := ParseHex("02 00 01 07 00\n776f726b657231")
	require.NoError(t, err)
	require.Equal(t, []byte{0x02, 0x00, 0x01, 0x07, 0x00, 'w', 'o', 'r', 'k', 'e', 'r', '1'}, b)

	b, err = ParseHex("0xAABB")
	require.NoError(t, err)
	require.Equal(t, []byte{0xaa, 0xbb}, b)

	b, err = ParseHex("")
	require.NoError(t, err)
	require.Empty(t, b)

	_, err = ParseHex("abc")
	require.Error(t, err)
	_, err = ParseHex("zz")
	require.Error(t, err)
}

func TestParseInts(t *testing.T) {
	v16, err := ParseUint16("0x0002")
	require.NoError(t, err)
	require.EqualValues(t, 2, v16)
	v16, err = ParseUint16("65535")
	require.NoError(t, err)
	require.EqualValues(t, 65535, v16)
	_, err = ParseUint16("65536")
	require.Error(t, err)

	v8, err := ParseUint8("0x01")
	require.NoError(t, err)
	require.EqualValues(t, 1, v8)
	_, err = ParseUint8("0x100")
	require.Error(t, err)
	_, err = ParseUint8("-1")
	require.Error(t, err)
}

func TestGetFormat(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.Flags().String(FlagFormat, FormatText, "")
	format, err := GetFormat(cmd)
	require.NoError(t, err)
	require.Equal(t, FormatText, format)

	require.NoError(t, cmd.Flags().Set(FlagFormat, "yaml"))
	_, err = GetFormat(cmd)
	require.Error(t, err)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, map[string]int{"a": 1}))
	require.Equal(t, "{\n  \"a\": 1\n}\n", buf.String())
}

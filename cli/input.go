package cli

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

// ParseUint16 accepts decimal or 0x-prefixed hex.
func ParseUint16(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid 16-bit value %q", s)
	}
	return uint16(v), nil
}

// ParseUint8 accepts decimal or 0x-prefixed hex.
func ParseUint8(s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid 8-bit value %q", s)
	}
	return uint8(v), nil
}

// ParseHex decodes s, ignoring whitespace and an optional 0x prefix.
func ParseHex(s string) ([]byte, error) {
	clean := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	clean = strings.TrimPrefix(strings.TrimPrefix(clean, "0x"), "0X")
	b, err := hex.DecodeString(clean)
	if err != nil {
		return nil, errors.Wrap(err, "invalid hex input")
	}
	return b, nil
}

// ReadHexArg returns the hex-decoded args[idx]. When the arg is absent the
// input is read from stdin, prompting first if stdin is a terminal.
func ReadHexArg(args []string, idx int) ([]byte, error) {
	if len(args) > idx {
		return ParseHex(args[idx])
	}

	var in []byte
	if isatty.IsTerminal(os.Stdin.Fd()) {
		in = readInputTTY(os.Stdin)
	} else {
		b, err := ioutil.ReadAll(os.Stdin)
		if err != nil {
			return nil, errors.Wrap(err, "error reading stdin")
		}
		in = b
	}
	return ParseHex(string(in))
}

func readInputTTY(r io.Reader) []byte {
	fmt.Println("Paste or type the hex bytes below.")
	fmt.Println("When you are finished, press Ctrl+D.")

	var buf bytes.Buffer
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		buf.WriteString(scanner.Text())
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

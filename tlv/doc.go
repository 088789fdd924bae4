/*
Package tlv implements the Stratum V2 extension TLV field encoding along with
extension-specific validation of field values.

Each record consists of a fixed five-byte little-endian header followed by the
raw value:

	- extension_type: uint16, little-endian.
	- field_type: uint8, scoped to the owning extension.
	- length: uint16, little-endian. Always equal to len(value).
	- value: length raw bytes.

A buffer holds zero or more consecutive records with no overall length prefix.
To encode a record:

	b, err := tlv.Encode(0x0002, 0x01, []byte("worker1"))

To decode every record in a buffer:

	res := tlv.Decode(b)
	for _, f := range res.Fields {
		fmt.Println(f.ExtensionType(), f.FieldType(), string(f.Value()))
	}

Decode never fails outright. A record whose declared length runs past the end
of the buffer stops decoding and is reported in ParseOutcome.Errors, while the
records parsed before it are kept.

Validate checks a candidate value against the registered rule for its
(extension_type, field_type) pair before it is encoded. It is independent of
the codec's own length checks.
*/
package tlv

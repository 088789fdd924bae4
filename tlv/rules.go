package tlv

import (
	"sort"
)

const (
	ExtensionNegotiation    uint16 = 0x0001
	ExtensionWorkerHashrate uint16 = 0x0002

	FieldUserIdentity uint8 = 0x01
)

type Encoding string

const (
	EncodingUTF8   Encoding = "UTF-8"
	EncodingBinary Encoding = "binary"
)

// Rule describes the structural constraints on a single extension field.
type Rule struct {
	ExtensionType uint16
	FieldType     uint8
	FieldName     string
	DataType      string
	MaxLength     int
	Encoding      Encoding
	Description   string
}

type ruleKey struct {
	ext   uint16
	field uint8
}

var extensionNames = map[uint16]string{
	ExtensionNegotiation:    "Extensions Negotiation",
	ExtensionWorkerHashrate: "Worker-Specific Hashrate Tracking",
}

var rules = map[ruleKey]Rule{
	{ExtensionWorkerHashrate, FieldUserIdentity}: {
		ExtensionType: ExtensionWorkerHashrate,
		FieldType:     FieldUserIdentity,
		FieldName:     "user_identity",
		DataType:      "UTF-8 string",
		MaxLength:     32,
		Encoding:      EncodingUTF8,
		Description:   "Worker name/identifier for hashrate tracking",
	},
}

// LookupRule returns the rule registered for the extension/field pair.
func LookupRule(extensionType uint16, fieldType uint8) (Rule, bool) {
	r, ok := rules[ruleKey{extensionType, fieldType}]
	return r, ok
}

// Rules returns every registered rule ordered by extension, then field type.
func Rules() []Rule {
	out := make([]Rule, 0, len(rules))
	for _, r := range rules {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ExtensionType != out[j].ExtensionType {
			return out[i].ExtensionType < out[j].ExtensionType
		}
		return out[i].FieldType < out[j].FieldType
	})
	return out
}

// ExtensionRules returns the rules registered for a single extension.
func ExtensionRules(extensionType uint16) []Rule {
	var out []Rule
	for _, r := range Rules() {
		if r.ExtensionType == extensionType {
			out = append(out, r)
		}
	}
	return out
}

// ExtensionName returns the display name of a known extension.
func ExtensionName(extensionType uint16) (string, bool) {
	name, ok := extensionNames[extensionType]
	return name, ok
}

package catalog

import (
	"fmt"
	"sv2/tlv"
)

type ExtensionInfo struct {
	ExtensionType       uint16         `json:"extension_type"`
	Name                string         `json:"name"`
	Description         string         `json:"description"`
	Detail              string         `json:"detail,omitempty"`
	NegotiationRequired bool           `json:"negotiation_required"`
	Messages            []string       `json:"messages"`
	TLVFields           []TLVFieldInfo `json:"tlv_fields"`
}

type TLVFieldInfo struct {
	FieldType   uint8  `json:"field_type"`
	Name        string `json:"name"`
	DataType    string `json:"data_type"`
	MaxLength   int    `json:"max_length,omitempty"`
	Description string `json:"description"`
}

type UnknownExtensionError struct {
	ExtensionType uint16
}

func (e *UnknownExtensionError) Error() string {
	return fmt.Sprintf("unknown extension type 0x%04x", e.ExtensionType)
}

type extensionDef struct {
	ext         uint16
	description string
	detail      string
	messages    []string
}

var extensionDefs = []extensionDef{
	{
		ext:         tlv.ExtensionNegotiation,
		description: "Negotiates support for other protocol extensions between clients and servers",
		detail:      "This extension defines the basic protocol for requesting and negotiating support for other protocol extensions between clients and servers.",
		messages:    []string{"RequestExtensions", "RequestExtensions.Success", "RequestExtensions.Error"},
	},
	{
		ext:         tlv.ExtensionWorkerHashrate,
		description: "Enables mining pools to track individual workers within extended channels",
		detail:      "This extension modifies the existing SubmitSharesExtended message by introducing a new TLV field that contains the user_identity (worker name).",
		messages:    []string{},
	},
}

func (d extensionDef) info(withDetail bool) ExtensionInfo {
	name, _ := tlv.ExtensionName(d.ext)
	info := ExtensionInfo{
		ExtensionType:       d.ext,
		Name:                name,
		Description:         d.description,
		NegotiationRequired: true,
		Messages:            append([]string{}, d.messages...),
		TLVFields:           []TLVFieldInfo{},
	}
	if withDetail {
		info.Detail = d.detail
	}
	for _, r := range tlv.ExtensionRules(d.ext) {
		info.TLVFields = append(info.TLVFields, TLVFieldInfo{
			FieldType:   r.FieldType,
			Name:        r.FieldName,
			DataType:    r.DataType,
			MaxLength:   r.MaxLength,
			Description: r.Description,
		})
	}
	return info
}

// Extensions returns a summary of every known extension.
func Extensions() []ExtensionInfo {
	out := make([]ExtensionInfo, 0, len(extensionDefs))
	for _, d := range extensionDefs {
		out = append(out, d.info(false))
	}
	return out
}

// Extension returns the detailed description of a single extension.
func Extension(extensionType uint16) (ExtensionInfo, error) {
	for _, d := range extensionDefs {
		if d.ext == extensionType {
			return d.info(true), nil
		}
	}
	return ExtensionInfo{}, &UnknownExtensionError{ExtensionType: extensionType}
}

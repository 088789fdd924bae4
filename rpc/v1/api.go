// Package apiv1 defines the sv2d RPC API: message types, the JSON wire codec,
// the gRPC service description and a client.
package apiv1

import (
	"sv2/catalog"
	"sv2/tlv"
)

type Empty struct{}

type GetStatusRes struct {
	Version         string `json:"version"`
	ProtocolVersion string `json:"protocol_version"`
	UptimeMS        int64  `json:"uptime_ms"`
	RequestCount    uint64 `json:"request_count"`
	CaptureCount    uint32 `json:"capture_count"`
}

type AnalyzeProtocolRes struct {
	Spec catalog.ProtocolSpec `json:"spec"`
}

type ListMessageTypesRes struct {
	MessageTypes []string `json:"message_types"`
}

type ListExtensionsRes struct {
	Extensions []catalog.ExtensionInfo `json:"extensions"`
}

type GetExtensionInfoReq struct {
	ExtensionType uint16 `json:"extension_type"`
}

type GetExtensionInfoRes struct {
	ExtensionInfo *catalog.ExtensionInfo `json:"extension_info"`
	Error         string                 `json:"error,omitempty"`
}

type TLVField struct {
	ExtensionType uint16 `json:"extension_type"`
	FieldType     uint8  `json:"field_type"`
	Length        uint16 `json:"length"`
	Value         []byte `json:"value"`
}

type TLVFieldReq struct {
	ExtensionType uint16 `json:"extension_type"`
	FieldType     uint8  `json:"field_type"`
	Value         []byte `json:"value"`
}

type CreateTLVFieldRes struct {
	TLVField     *TLVField `json:"tlv_field"`
	EncodedBytes []byte    `json:"encoded_bytes"`
	Error        string    `json:"error,omitempty"`
}

type ParseTLVFieldsReq struct {
	Data []byte `json:"data"`
}

type ParseTLVFieldsRes struct {
	TLVFields          []*TLVField `json:"tlv_fields"`
	Errors             []string    `json:"errors"`
	ParsedSuccessfully bool        `json:"parsed_successfully"`
	TrailingBytes      uint32      `json:"trailing_bytes"`
}

type ValidateTLVFieldRes struct {
	Valid     bool           `json:"valid"`
	Error     string         `json:"error,omitempty"`
	FieldInfo *tlv.FieldInfo `json:"field_info,omitempty"`
}

type GenerateTestMessageReq struct {
	MessageType string `json:"message_type"`
}

type GenerateTestMessageRes struct {
	Message *catalog.SampleMessage `json:"message"`
	Error   string                 `json:"error,omitempty"`
}

type DescribeTopicReq struct {
	Name string `json:"name"`
}

type DescribeTopicRes struct {
	Topic     *catalog.Topic `json:"topic"`
	Available []string       `json:"available"`
	Error     string         `json:"error,omitempty"`
}

type Capture struct {
	Name        string `json:"name"`
	ID          string `json:"id"`
	Data        []byte `json:"data"`
	CreatedAt   int64  `json:"created_at"`
	FieldCount  uint32 `json:"field_count"`
	FullyParsed bool   `json:"fully_parsed"`
}

type SaveCaptureReq struct {
	Name string `json:"name"`
	Data []byte `json:"data"`
}

type SaveCaptureRes struct {
	Capture *Capture `json:"capture"`
}

type CaptureReq struct {
	Name string `json:"name"`
}

type GetCaptureRes struct {
	Capture *Capture           `json:"capture"`
	Parse   *ParseTLVFieldsRes `json:"parse"`
}

type ListCapturesReq struct {
	Start string `json:"start"`
}

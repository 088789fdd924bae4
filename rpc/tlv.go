package rpc

import (
	"context"

	apiv1 "sv2/rpc/v1"
	"sv2/tlv"

	"github.com/pkg/errors"
)

type ParseResult struct {
	Fields             []tlv.Field
	Errors             []string
	ParsedSuccessfully bool
	TrailingBytes      int
}

type Validation struct {
	Valid bool           `json:"valid"`
	Error string         `json:"error,omitempty"`
	Info  *tlv.FieldInfo `json:"field_info,omitempty"`
}

// CreateTLVField asks the daemon to encode a field and returns it along with
// its wire bytes.
func CreateTLVField(client apiv1.SV2v1Client, extensionType uint16, fieldType uint8, value []byte) (tlv.Field, []byte, error) {
	return CreateTLVFieldContext(context.Background(), client, extensionType, fieldType, value)
}

func CreateTLVFieldContext(ctx context.Context, client apiv1.SV2v1Client, extensionType uint16, fieldType uint8, value []byte) (tlv.Field, []byte, error) {
	res, err := client.CreateTLVField(ctx, &apiv1.TLVFieldReq{
		ExtensionType: extensionType,
		FieldType:     fieldType,
		Value:         value,
	})
	if err != nil {
		return tlv.Field{}, nil, err
	}
	if res.Error != "" {
		return tlv.Field{}, nil, errors.New(res.Error)
	}
	f, err := fromAPIField(res.TLVField)
	if err != nil {
		return tlv.Field{}, nil, err
	}
	return f, res.EncodedBytes, nil
}

func ParseTLVFields(client apiv1.SV2v1Client, data []byte) (*ParseResult, error) {
	return ParseTLVFieldsContext(context.Background(), client, data)
}

func ParseTLVFieldsContext(ctx context.Context, client apiv1.SV2v1Client, data []byte) (*ParseResult, error) {
	res, err := client.ParseTLVFields(ctx, &apiv1.ParseTLVFieldsReq{
		Data: data,
	})
	if err != nil {
		return nil, err
	}
	return fromAPIParse(res)
}

// ValidateTLVField reports rule violations in the returned Validation rather
// than as an error. The error return is reserved for transport failures.
func ValidateTLVField(client apiv1.SV2v1Client, extensionType uint16, fieldType uint8, value []byte) (*Validation, error) {
	return ValidateTLVFieldContext(context.Background(), client, extensionType, fieldType, value)
}

func ValidateTLVFieldContext(ctx context.Context, client apiv1.SV2v1Client, extensionType uint16, fieldType uint8, value []byte) (*Validation, error) {
	res, err := client.ValidateTLVField(ctx, &apiv1.TLVFieldReq{
		ExtensionType: extensionType,
		FieldType:     fieldType,
		Value:         value,
	})
	if err != nil {
		return nil, err
	}
	return &Validation{
		Valid: res.Valid,
		Error: res.Error,
		Info:  res.FieldInfo,
	}, nil
}

func fromAPIField(f *apiv1.TLVField) (tlv.Field, error) {
	if f == nil {
		return tlv.Field{}, errors.New("missing TLV field in response")
	}
	field, err := tlv.NewField(f.ExtensionType, f.FieldType, f.Value)
	if err != nil {
		return tlv.Field{}, errors.Wrap(err, "invalid TLV field in response")
	}
	return field, nil
}

func fromAPIParse(res *apiv1.ParseTLVFieldsRes) (*ParseResult, error) {
	if res == nil {
		return nil, errors.New("missing parse result in response")
	}
	fields := make([]tlv.Field, 0, len(res.TLVFields))
	for _, f := range res.TLVFields {
		field, err := fromAPIField(f)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
	return &ParseResult{
		Fields:             fields,
		Errors:             res.Errors,
		ParsedSuccessfully: res.ParsedSuccessfully,
		TrailingBytes:      int(res.TrailingBytes),
	}, nil
}

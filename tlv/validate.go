package tlv

import (
	"unicode/utf8"
)

// FieldInfo is the descriptive metadata returned for a valid field.
type FieldInfo struct {
	FieldName     string   `json:"field_name"`
	MaxLength     int      `json:"max_length"`
	CurrentLength int      `json:"current_length"`
	Encoding      Encoding `json:"encoding"`
}

// ValidationOutcome is the result of Validate. Exactly one of Err and Info is
// set.
type ValidationOutcome struct {
	Valid bool
	Err   error
	Info  *FieldInfo
}

// Validate checks value against the rule registered for the extension/field
// pair. Unregistered pairs fail with *UnknownFieldError and rule violations
// fail with *ConstraintViolationError.
func Validate(extensionType uint16, fieldType uint8, value []byte) ValidationOutcome {
	rule, ok := LookupRule(extensionType, fieldType)
	if !ok {
		name, _ := ExtensionName(extensionType)
		return invalid(&UnknownFieldError{
			ExtensionType: extensionType,
			FieldType:     fieldType,
			ExtensionName: name,
		})
	}

	if len(value) > rule.MaxLength {
		return invalid(&ConstraintViolationError{
			Field:      rule.FieldName,
			Constraint: ConstraintMaxLength,
			Limit:      rule.MaxLength,
			Length:     len(value),
			Encoding:   string(rule.Encoding),
		})
	}
	if rule.Encoding == EncodingUTF8 && !utf8.Valid(value) {
		return invalid(&ConstraintViolationError{
			Field:      rule.FieldName,
			Constraint: ConstraintEncoding,
			Limit:      rule.MaxLength,
			Length:     len(value),
			Encoding:   string(rule.Encoding),
		})
	}

	return ValidationOutcome{
		Valid: true,
		Info: &FieldInfo{
			FieldName:     rule.FieldName,
			MaxLength:     rule.MaxLength,
			CurrentLength: len(value),
			Encoding:      rule.Encoding,
		},
	}
}

func invalid(err error) ValidationOutcome {
	return ValidationOutcome{
		Valid: false,
		Err:   err,
	}
}

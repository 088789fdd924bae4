package tlv

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestValidate_UserIdentity(t *testing.T) {
	res := Validate(0x0002, 0x01, []byte("workerName"))
	require.True(t, res.Valid)
	require.NoError(t, res.Err)
	require.Equal(t, &FieldInfo{
		FieldName:     "user_identity",
		MaxLength:     32,
		CurrentLength: 10,
		Encoding:      EncodingUTF8,
	}, res.Info)

	res = Validate(0x0002, 0x01, []byte(strings.Repeat("w", 32)))
	require.True(t, res.Valid)
	require.Equal(t, 32, res.Info.CurrentLength)
}

func TestValidate_TooLong(t *testing.T) {
	res := Validate(0x0002, 0x01, []byte(strings.Repeat("w", 33)))
	require.False(t, res.Valid)
	require.Nil(t, res.Info)

	var violation *ConstraintViolationError
	require.True(t, errors.As(res.Err, &violation))
	require.Equal(t, ConstraintMaxLength, violation.Constraint)
	require.Equal(t, 32, violation.Limit)
	require.Equal(t, 33, violation.Length)
	require.Equal(t, "user_identity must be 32 bytes or less (got 33)", res.Err.Error())
}

func TestValidate_MultiByteRunesCountBytes(t *testing.T) {
	// 11 runes, 33 bytes
	res := Validate(0x0002, 0x01, []byte(strings.Repeat("⛏", 11)))
	require.False(t, res.Valid)
	var violation *ConstraintViolationError
	require.True(t, errors.As(res.Err, &violation))
	require.Equal(t, 33, violation.Length)
}

func TestValidate_InvalidUTF8(t *testing.T) {
	res := Validate(0x0002, 0x01, []byte{'w', 0xff, 0xfe})
	require.False(t, res.Valid)
	var violation *ConstraintViolationError
	require.True(t, errors.As(res.Err, &violation))
	require.Equal(t, ConstraintEncoding, violation.Constraint)
	require.Equal(t, "user_identity must be valid UTF-8", res.Err.Error())
}

func TestValidate_Unknown(t *testing.T) {
	res := Validate(0x0099, 0x01, []byte("x"))
	require.False(t, res.Valid)
	require.Nil(t, res.Info)
	var unknown *UnknownFieldError
	require.True(t, errors.As(res.Err, &unknown))
	require.EqualValues(t, 0x0099, unknown.ExtensionType)
	require.Equal(t, "unknown extension type 0x0099", res.Err.Error())

	res = Validate(0x0002, 0x02, []byte("x"))
	require.False(t, res.Valid)
	require.True(t, errors.As(res.Err, &unknown))
	require.Equal(t, "unknown field type 0x02 for Worker-Specific Hashrate Tracking extension", res.Err.Error())

	res = Validate(0x0001, 0x01, nil)
	require.False(t, res.Valid)
	require.True(t, errors.As(res.Err, &unknown))
	require.Equal(t, "Extensions Negotiation", unknown.ExtensionName)
}

func TestRules(t *testing.T) {
	all := Rules()
	require.Len(t, all, 1)
	require.Equal(t, "user_identity", all[0].FieldName)

	all[0].MaxLength = 1
	r, ok := LookupRule(0x0002, 0x01)
	require.True(t, ok)
	require.Equal(t, 32, r.MaxLength)

	require.Len(t, ExtensionRules(ExtensionWorkerHashrate), 1)
	require.Empty(t, ExtensionRules(ExtensionNegotiation))
}

package catalog

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestSpec(t *testing.T) {
	spec := Spec()
	require.Equal(t, "2.0.0", spec.Version)
	require.Len(t, spec.MessageTypes, 3)
	require.Equal(t, "SetupConnection", spec.MessageTypes[0].Name)
	require.Len(t, spec.MessageTypes[0].Fields, 10)
	require.Len(t, spec.Extensions, 2)
	require.Len(t, spec.SecurityFeatures, 7)

	spec.SecurityFeatures[0] = "changed"
	spec.MessageTypes[0].Fields[0].Name = "changed"
	require.NotEqual(t, "changed", Spec().SecurityFeatures[0])
	require.Equal(t, "protocol", Spec().MessageTypes[0].Fields[0].Name)
}

func TestMessageTypes(t *testing.T) {
	names := MessageTypes()
	require.Len(t, names, 22)
	require.Equal(t, "SetupConnection", names[0])
	require.Equal(t, "CloseChannel", names[21])
}

func TestExtension(t *testing.T) {
	info, err := Extension(0x0002)
	require.NoError(t, err)
	require.Equal(t, "Worker-Specific Hashrate Tracking", info.Name)
	require.NotEmpty(t, info.Detail)
	require.Len(t, info.TLVFields, 1)
	require.Equal(t, TLVFieldInfo{
		FieldType:   0x01,
		Name:        "user_identity",
		DataType:    "UTF-8 string",
		MaxLength:   32,
		Description: "Worker name/identifier for hashrate tracking",
	}, info.TLVFields[0])

	info, err = Extension(0x0001)
	require.NoError(t, err)
	require.Equal(t, []string{"RequestExtensions", "RequestExtensions.Success", "RequestExtensions.Error"}, info.Messages)
	require.Empty(t, info.TLVFields)

	_, err = Extension(0x0099)
	var unknown *UnknownExtensionError
	require.True(t, errors.As(err, &unknown))
	require.Equal(t, "unknown extension type 0x0099", err.Error())
}

func TestExtensions(t *testing.T) {
	exts := Extensions()
	require.Len(t, exts, 2)
	for _, e := range exts {
		require.Empty(t, e.Detail)
		require.True(t, e.NegotiationRequired)
	}
}

func TestSample(t *testing.T) {
	msg, err := Sample("SubmitSharesStandard")
	require.NoError(t, err)
	require.Equal(t, "mining", msg.Subprotocol)
	require.Equal(t, SampleField{"nonce", "0x12345678"}, msg.Fields[3])

	_, err = Sample("Bogus")
	var unknown *UnknownMessageError
	require.True(t, errors.As(err, &unknown))
	require.Equal(t, "unknown message type: Bogus. Available types: SubmitSharesStandard, SetupConnection, NewTemplate, DeclareTransaction", err.Error())
}

func TestLookupTopic(t *testing.T) {
	require.Equal(t, []string{"features", "roles", "noise", "buffers"}, TopicNames())
	topic, err := LookupTopic("roles")
	require.NoError(t, err)
	require.Len(t, topic.Items, 4)

	_, err = LookupTopic("quantum")
	var unknown *UnknownTopicError
	require.True(t, errors.As(err, &unknown))
}

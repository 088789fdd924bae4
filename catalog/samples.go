package catalog

import (
	"fmt"
	"strings"
)

// SampleField is one named value of a sample message. Values are rendered the
// way they would be typed by a user: decimal, 0x-prefixed hex or plain text.
type SampleField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type SampleMessage struct {
	MessageType string        `json:"message_type"`
	Subprotocol string        `json:"subprotocol"`
	Description string        `json:"description"`
	Fields      []SampleField `json:"fields"`
}

type UnknownMessageError struct {
	MessageType string
}

func (e *UnknownMessageError) Error() string {
	return fmt.Sprintf("unknown message type: %s. Available types: %s", e.MessageType, strings.Join(SampleMessageTypes(), ", "))
}

var samples = []SampleMessage{
	{
		MessageType: "SubmitSharesStandard",
		Subprotocol: "mining",
		Description: "Standard share submission using mining_sv2 crate format",
		Fields: []SampleField{
			{"channel_id", "1"},
			{"sequence_number", "1"},
			{"job_id", "12345"},
			{"nonce", "0x12345678"},
			{"ntime", "0x5a123456"},
			{"version", "0x20000000"},
		},
	},
	{
		MessageType: "SetupConnection",
		Subprotocol: "common",
		Description: "Connection setup using common_messages_sv2 format",
		Fields: []SampleField{
			{"protocol", "Stratum/2.0.0"},
			{"min_version", "2"},
			{"max_version", "2"},
			{"flags", "0"},
			{"endpoint_host", "pool.example.com"},
			{"endpoint_port", "3333"},
			{"vendor", "TestMiner"},
			{"hardware_version", "1.0"},
			{"firmware", "1.0.0"},
			{"device_id", "test-device-001"},
		},
	},
	{
		MessageType: "NewTemplate",
		Subprotocol: "template_distribution",
		Description: "Template distribution using template_distribution_sv2 format",
		Fields: []SampleField{
			{"template_id", "12345"},
			{"future_template", "false"},
			{"version", "0x20000000"},
			{"coinbase_tx_version", "1"},
			{"coinbase_prefix", "01000000010000000000000000000000000000000000000000000000000000000000000000ffffffff"},
			{"coinbase_tx_suffix", "ffffffff0100f2052a01000000434104678afdb0fe5548271967f1a67130b7105cd6a828e03909a67962e0ea1f61deb649f6bc3f4cef38c4f35504e51ec112de5c384df7ba0b8d578a4c702b6bf11d5fac00000000"},
		},
	},
	{
		MessageType: "DeclareTransaction",
		Subprotocol: "job_declaration",
		Description: "Job declaration using job_declaration_sv2 format",
		Fields: []SampleField{
			{"version", "1"},
			{"input_data_max_size", "1000"},
			{"tx_data", "0100000001a1b2c3d4e5f6..."},
		},
	},
}

// SampleMessageTypes lists the message types SampleMessage knows about.
func SampleMessageTypes() []string {
	out := make([]string, len(samples))
	for i, s := range samples {
		out[i] = s.MessageType
	}
	return out
}

// Sample returns an example instance of the named message type.
func Sample(messageType string) (SampleMessage, error) {
	for _, s := range samples {
		if s.MessageType == messageType {
			out := s
			out.Fields = append([]SampleField(nil), s.Fields...)
			return out, nil
		}
	}
	return SampleMessage{}, &UnknownMessageError{MessageType: messageType}
}

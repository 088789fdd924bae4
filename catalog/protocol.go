package catalog

const ProtocolVersion = "2.0.0"

type ProtocolSpec struct {
	Version          string          `json:"version"`
	Description      string          `json:"description"`
	MessageTypes     []MessageType   `json:"message_types"`
	Extensions       []ExtensionInfo `json:"extensions"`
	SecurityFeatures []string        `json:"security_features"`
}

type MessageType struct {
	Name        string         `json:"name"`
	Direction   string         `json:"direction"`
	Fields      []MessageField `json:"fields"`
	Description string         `json:"description"`
}

type MessageField struct {
	Name        string `json:"name"`
	FieldType   string `json:"field_type"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

const (
	DirectionUpstream   = "Client -> Server"
	DirectionDownstream = "Server -> Client"
)

var messageTypeNames = [...]string{
	"SetupConnection",
	"SetupConnectionSuccess",
	"SetupConnectionError",
	"OpenStandardMiningChannel",
	"OpenStandardMiningChannelSuccess",
	"OpenStandardMiningChannelError",
	"OpenExtendedMiningChannel",
	"OpenExtendedMiningChannelSuccess",
	"OpenExtendedMiningChannelError",
	"UpdateChannel",
	"UpdateChannelError",
	"SubmitSharesStandard",
	"SubmitSharesSuccess",
	"SubmitSharesError",
	"SubmitSharesExtended",
	"SetNewPrevHash",
	"SetTarget",
	"SetCustomMiningJob",
	"NewTemplate",
	"DeclareTransaction",
	"Reconnect",
	"CloseChannel",
}

var securityFeatures = [...]string{
	"Noise protocol encryption for secure communication",
	"Binary protocol with efficient message encoding",
	"TLV (Type-Length-Value) extension support",
	"Role-based architecture (Pool, Proxy, Miner, Job Declarator)",
	"Multiple subprotocols (Mining, Job Declaration, Template Distribution)",
	"Channel-based communication with sequence numbers",
	"Backward compatibility with Stratum V1 via translator",
}

func required(name, fieldType, description string) MessageField {
	return MessageField{
		Name:        name,
		FieldType:   fieldType,
		Description: description,
		Required:    true,
	}
}

func detailedMessageTypes() []MessageType {
	return []MessageType{
		{
			Name:      "SetupConnection",
			Direction: DirectionUpstream,
			Fields: []MessageField{
				required("protocol", "STR0_255", "Protocol identifier"),
				required("min_version", "U16", "Minimum supported protocol version"),
				required("max_version", "U16", "Maximum supported protocol version"),
				required("flags", "U32", "Connection flags"),
				required("endpoint_host", "STR0_255", "Host endpoint"),
				required("endpoint_port", "U16", "Port endpoint"),
				required("vendor", "STR0_255", "Vendor identifier"),
				required("hardware_version", "STR0_255", "Hardware version"),
				required("firmware", "STR0_255", "Firmware version"),
				required("device_id", "STR0_255", "Device identifier"),
			},
			Description: "Initial connection setup message with noise handshake support",
		},
		{
			Name:      "SubmitSharesStandard",
			Direction: DirectionUpstream,
			Fields: []MessageField{
				required("channel_id", "U32", "Mining channel identifier"),
				required("sequence_number", "U32", "Sequence number for ordering"),
				required("job_id", "U32", "Job identifier"),
				required("nonce", "U32", "Nonce value"),
				required("ntime", "U32", "Block time"),
				required("version", "U32", "Block version"),
			},
			Description: "Standard share submission with binary encoding",
		},
		{
			Name:      "NewTemplate",
			Direction: DirectionDownstream,
			Fields: []MessageField{
				required("template_id", "U64", "Template identifier"),
				required("future_template", "BOOL", "Whether this is a future template"),
				required("version", "U32", "Template version"),
				required("coinbase_tx_version", "U32", "Coinbase transaction version"),
				required("coinbase_prefix", "B0_64K", "Coinbase prefix"),
				required("coinbase_tx_suffix", "B0_64K", "Coinbase suffix"),
			},
			Description: "Template distribution protocol message",
		},
	}
}

// Spec returns the protocol overview. Every call returns a fresh copy.
func Spec() ProtocolSpec {
	return ProtocolSpec{
		Version:          ProtocolVersion,
		Description:      "Stratum V2 is a comprehensive mining protocol suite with multiple subprotocols, binary message format, noise encryption, and role-based architecture.",
		MessageTypes:     detailedMessageTypes(),
		Extensions:       Extensions(),
		SecurityFeatures: append([]string(nil), securityFeatures[:]...),
	}
}

// MessageTypes returns the names of every known message type.
func MessageTypes() []string {
	return append([]string(nil), messageTypeNames[:]...)
}

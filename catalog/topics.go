package catalog

import (
	"fmt"
	"strings"
)

// Topic is a narrative description of one area of the protocol suite.
type Topic struct {
	Name        string      `json:"name"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Items       []TopicItem `json:"items"`
}

type TopicItem struct {
	Name   string `json:"name"`
	Detail string `json:"detail"`
}

type UnknownTopicError struct {
	Name string
}

func (e *UnknownTopicError) Error() string {
	return fmt.Sprintf("unknown topic %q (available: %s)", e.Name, strings.Join(TopicNames(), ", "))
}

var topics = []Topic{
	{
		Name:        "features",
		Title:       "Stratum V2 Features",
		Description: "Overview of the building blocks shared by every Stratum V2 role.",
		Items: []TopicItem{
			{"Binary types", "Specialized binary types such as U24, U256 and B0_32 for compact mining data"},
			{"TLV extension fields", "Type-Length-Value fields enable protocol extensibility, e.g. ext 0x0002 field 0x01 len 0x0007 \"worker1\""},
			{"Noise protocol security", "Cryptographic handshake and encryption for secure mining communication"},
			{"Role-based architecture", "Pool, proxy, mining device and job declarator roles with distinct responsibilities"},
			{"Mining subprotocol", "Core mining protocol for share submission and job distribution"},
			{"Job declaration subprotocol", "Custom transaction selection and block template construction"},
			{"Template distribution subprotocol", "Distribution of block templates to pools"},
			{"Message framing", "Extension type (2 bytes), message type (1 byte), message length (3 bytes), payload, optional TLV fields"},
		},
	},
	{
		Name:        "roles",
		Title:       "Stratum V2 Roles",
		Description: "The mining roles defined by the protocol and what each is responsible for.",
		Items: []TopicItem{
			{"Pool", "Manages mining channels, distributes work, validates submitted shares and handles payouts"},
			{"Proxy", "Aggregates hashrate from multiple devices, reduces network overhead and provides redundancy"},
			{"Mining device", "Performs proof-of-work, submits valid shares and reports hashrate statistics"},
			{"Job declarator", "Selects transactions, constructs coinbase transactions and distributes templates to pools"},
		},
	},
	{
		Name:        "noise",
		Title:       "Noise Protocol",
		Description: "Secure communication using the Noise Protocol Framework.",
		Items: []TopicItem{
			{"Handshake", "Noise handshake patterns for secure connection establishment"},
			{"Encryption", "ChaCha20-Poly1305 AEAD encryption"},
			{"Key exchange", "X25519 elliptic curve Diffie-Hellman"},
			{"Hashing", "BLAKE2s cryptographic hash function"},
			{"Forward secrecy", "Session keys are not recoverable from long-term keys"},
			{"Mutual authentication", "Resistance to man-in-the-middle attacks"},
		},
	},
	{
		Name:        "buffers",
		Title:       "Buffer Management",
		Description: "Efficient buffer management for encoding and decoding messages.",
		Items: []TopicItem{
			{"Zero-copy parsing", "Messages are parsed in place where possible"},
			{"Allocation strategy", "Buffers are pooled to reduce allocation pressure"},
			{"Streaming", "Messages are processed as they arrive on the connection"},
			{"Codec integration", "Used by the codec and framing layers for high-throughput processing"},
		},
	},
}

func TopicNames() []string {
	out := make([]string, len(topics))
	for i, t := range topics {
		out[i] = t.Name
	}
	return out
}

// LookupTopic returns the named topic.
func LookupTopic(name string) (Topic, error) {
	for _, t := range topics {
		if t.Name == name {
			out := t
			out.Items = append([]TopicItem(nil), t.Items...)
			return out, nil
		}
	}
	return Topic{}, &UnknownTopicError{Name: name}
}

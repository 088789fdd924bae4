package cli

const (
	FlagHome    = "home"
	FlagRPCHost = "rpc-host"
	FlagRPCPort = "rpc-port"
	FlagFormat  = "format"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

package config

import (
	"bytes"
	"io"
	"os"
	"text/template"

	"sv2/log"

	"github.com/pkg/errors"
)

const ConfigFilename = "config.toml"

var DefaultConfig = Config{
	LogLevel:  log.LevelInfo.String(),
	LogFormat: log.FormatText,
	RPC: RPCConfig{
		Host: "127.0.0.1",
		Port: 9198,
	},
	Tuning: TuningConfig{
		RPC: RPCTuningConfig{
			RequestsPerSecond: 50,
			Burst:             100,
		},
		Captures: CapturesConfig{
			MaxCaptureBytes: 1024 * 1024,
			ParseCacheTTLMS: 60000,
		},
		Shutdown: ShutdownTuningConfig{
			GracePeriodMS: 5000,
		},
	},
}

const defaultConfigTemplateText = `# sv2d Config File

# Sets the log level. Can be one of the following values:
# - error
# - warn
# - info
# - debug
# - trace
log_level = "{{.LogLevel}}"

# Sets the log output format. Can be "text" or "json".
log_format = "{{.LogFormat}}"

# Configures the behavior of this daemon's RPC server.
[rpc]
  # Sets the IP the daemon should listen for RPC requests on.
  host = "{{.RPC.Host}}"
  # Sets the port the daemon should listen for RPC requests on.
  port = {{.RPC.Port}}

# Configures various internal tuning parameters. Unless you know what
# you are doing, these values should be left as their defaults.
[tuning]

  # Configures how captured TLV buffers are stored.
  [tuning.captures]
    # Sets the largest buffer, in bytes, that may be saved as a capture.
    max_capture_bytes = {{.Tuning.Captures.MaxCaptureBytes}}
    # Sets how long decoded captures are cached in memory.
    parse_cache_ttl_ms = {{.Tuning.Captures.ParseCacheTTLMS}}

  # Configures RPC request rate limiting.
  [tuning.rpc]
    # Sets the maximum burst of requests accepted at once.
    burst = {{.Tuning.RPC.Burst}}
    # Sets the sustained number of requests accepted per second.
    requests_per_second = {{printf "%.1f" .Tuning.RPC.RequestsPerSecond}}

  # Configures daemon shutdown.
  [tuning.shutdown]
    # Sets how long in-flight RPC calls may run after a shutdown signal.
    grace_period_ms = {{.Tuning.Shutdown.GracePeriodMS}}
`

var defaultConfigTemplate *template.Template

func GenerateDefaultConfigFile() []byte {
	buf := new(bytes.Buffer)
	if err := defaultConfigTemplate.Execute(buf, DefaultConfig); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func ReadConfigFile(homeDir string) (*Config, error) {
	f, err := os.OpenFile(ExpandConfigPath(homeDir), os.O_RDONLY, 0755)
	if err != nil {
		return nil, errors.Wrap(err, "error opening config file for reading")
	}
	defer f.Close()
	cfg, err := ReadConfig(f)
	if err != nil {
		return nil, errors.Wrap(err, "error reading config file")
	}
	return cfg, nil
}

func WriteDefaultConfigFile(homeDir string) error {
	f, err := os.OpenFile(ExpandConfigPath(homeDir), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return errors.Wrap(err, "error opening config file for writing")
	}
	defer f.Close()
	rd := bytes.NewReader(GenerateDefaultConfigFile())
	if _, err := io.Copy(f, rd); err != nil {
		return errors.Wrap(err, "error writing config file")
	}
	return nil
}

func init() {
	tmpl := template.New("defaultConfig")
	t, err := tmpl.Parse(defaultConfigTemplateText)
	if err != nil {
		panic(err)
	}
	defaultConfigTemplate = t
}

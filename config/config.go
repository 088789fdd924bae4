package config

import (
	"io"
	"time"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

type Config struct {
	LogLevel  string       `mapstructure:"log_level"`
	LogFormat string       `mapstructure:"log_format"`
	RPC       RPCConfig    `mapstructure:"rpc"`
	Tuning    TuningConfig `mapstructure:"tuning"`
}

type RPCConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type TuningConfig struct {
	RPC      RPCTuningConfig      `mapstructure:"rpc"`
	Captures CapturesConfig       `mapstructure:"captures"`
	Shutdown ShutdownTuningConfig `mapstructure:"shutdown"`
}

type RPCTuningConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

type CapturesConfig struct {
	MaxCaptureBytes int `mapstructure:"max_capture_bytes"`
	ParseCacheTTLMS int `mapstructure:"parse_cache_ttl_ms"`
}

type ShutdownTuningConfig struct {
	GracePeriodMS int `mapstructure:"grace_period_ms"`
}

func ReadConfig(r io.Reader) (*Config, error) {
	decoder := toml.NewDecoder(r)
	decoder.SetTagName("mapstructure")
	config := &Config{}
	if err := decoder.Decode(config); err != nil {
		return nil, errors.Wrap(err, "error decoding config file")
	}
	return config, nil
}

func ConvertDuration(base int, unit time.Duration) time.Duration {
	return time.Duration(base) * unit
}

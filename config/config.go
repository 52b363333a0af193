package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	EnvPrefix   = "THRUPLOT"
	DefaultCwnd = "CWND.csv"
)

// Keys shared by flags, environment and config files.
const (
	KeyDir             = "dir"
	KeyName            = "name"
	KeyTrace           = "trace"
	KeyCwnd            = "cwnd"
	KeyTraceMinPayload = "trace-min-payload"
	KeyPNG             = "png"
	KeyCSV             = "csv"
	KeyLogLevel        = "log-level"
)

type Config struct {
	Dir             string // output directory, also holds the delivery log
	Name            string // delivery log file name inside Dir
	Trace           string
	Cwnd            string
	TraceMinPayload int
	KeepPNG         bool
	ExportCSV       bool
	LogLevel        string
}

// NewViper returns a viper instance with defaults and THRUPLOT_* environment
// lookup set up. Callers bind flags on top.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault(KeyCwnd, DefaultCwnd)
	v.SetDefault(KeyLogLevel, "info")
	return v
}

// Load reads the optional config file into v and builds a validated Config.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	cfg := &Config{
		Dir:             v.GetString(KeyDir),
		Name:            v.GetString(KeyName),
		Trace:           v.GetString(KeyTrace),
		Cwnd:            v.GetString(KeyCwnd),
		TraceMinPayload: v.GetInt(KeyTraceMinPayload),
		KeepPNG:         v.GetBool(KeyPNG),
		ExportCSV:       v.GetBool(KeyCSV),
		LogLevel:        v.GetString(KeyLogLevel),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	required := []struct{ key, val string }{
		{KeyDir, c.Dir},
		{KeyName, c.Name},
		{KeyTrace, c.Trace},
	}
	for _, r := range required {
		if strings.TrimSpace(r.val) == "" {
			errs = append(errs, fmt.Errorf("missing required --%s", r.key))
		}
	}
	if c.TraceMinPayload < 0 {
		errs = append(errs, fmt.Errorf("--%s must not be negative", KeyTraceMinPayload))
	}
	return errors.Join(errs...)
}

// DeliveryPath is the delivery log location, Name relative to Dir.
func (c *Config) DeliveryPath() string {
	return filepath.Join(c.Dir, c.Name)
}

// Package config loads the layered configuration shared by the tx and
// rx binaries: built-in defaults, an optional YAML file, environment
// variables prefixed LORETT_, then CLI flags, in that precedence
// order, via spf13/viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/Yarik9008/LorettStratoLink/groupplan"
)

// Config holds every value either binary needs at startup.
type Config struct {
	Callsign string `mapstructure:"callsign"`

	RatioNum int `mapstructure:"ratio_num"`
	RatioDen int `mapstructure:"ratio_den"`

	Device string `mapstructure:"device"`
	Baud   int    `mapstructure:"baud"`

	// tx-only
	WatchDir    string `mapstructure:"watch_dir"`
	MaxFileSize int    `mapstructure:"max_file_size"`

	// rx-only
	RingCapacity int    `mapstructure:"ring_capacity"`
	HostAddr     string `mapstructure:"host_addr"`
}

// Ratio returns the configured FEC ratio as a groupplan.Ratio.
func (c Config) Ratio() groupplan.Ratio {
	return groupplan.Ratio{Num: c.RatioNum, Den: c.RatioDen}
}

func defaults(v *viper.Viper) {
	v.SetDefault("callsign", "NOCALL")
	v.SetDefault("ratio_num", 25)
	v.SetDefault("ratio_den", 100)
	v.SetDefault("device", "/dev/ttyUSB0")
	v.SetDefault("baud", 9600)
	v.SetDefault("watch_dir", ".")
	v.SetDefault("max_file_size", 65536)
	v.SetDefault("ring_capacity", 1024)
	v.SetDefault("host_addr", "")
}

// Load builds a Config from (in ascending precedence) built-in
// defaults, file (a YAML path; empty skips this layer), the LORETT_
// environment prefix, and finally overrides.
func Load(file string, overrides map[string]any) (Config, error) {
	v := viper.New()
	defaults(v)

	v.SetEnvPrefix("LORETT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: reading %s: %w", file, err)
		}
	}

	for k, val := range overrides {
		v.Set(k, val)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.RatioNum <= 0 || c.RatioDen <= 0 || c.RatioNum > c.RatioDen {
		return fmt.Errorf("config: invalid ratio %d/%d", c.RatioNum, c.RatioDen)
	}
	if c.Baud <= 0 {
		return fmt.Errorf("config: baud must be positive, got %d", c.Baud)
	}
	if c.MaxFileSize <= 0 {
		return fmt.Errorf("config: max_file_size must be positive, got %d", c.MaxFileSize)
	}
	return nil
}

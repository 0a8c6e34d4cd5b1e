package config

// Package config provides a reusable loader for pool configuration files
// and environment variables. It is versioned so that applications can
// depend on a stable API contract.
//
// Version: v0.1.0

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/ammforge/liquiditycore/pkg/utils"
)

// Version is the semantic version of this configuration package.
const Version = "v0.1.0"

// Config represents the unified configuration for a pool CLI or server
// process, read from a default.yaml file (see Load and WriteDefault).
type Config struct {
	Pool struct {
		FeeBps               int    `mapstructure:"fee_bps" json:"fee_bps" yaml:"fee_bps"`
		SlippageToleranceBps int    `mapstructure:"slippage_tolerance_bps" json:"slippage_tolerance_bps" yaml:"slippage_tolerance_bps"`
		Seed                 string `mapstructure:"seed" json:"seed" yaml:"seed"`
	} `mapstructure:"pool" json:"pool" yaml:"pool"`

	Ledger struct {
		Path string `mapstructure:"path" json:"path" yaml:"path"`
	} `mapstructure:"ledger" json:"ledger" yaml:"ledger"`

	Server struct {
		Addr string `mapstructure:"addr" json:"addr" yaml:"addr"`
	} `mapstructure:"server" json:"server" yaml:"server"`

	Logging struct {
		Level string `mapstructure:"level" json:"level" yaml:"level"`
		File  string `mapstructure:"file" json:"file" yaml:"file"`
	} `mapstructure:"logging" json:"logging" yaml:"logging"`
}

// AppConfig holds the configuration loaded via Load or LoadFromEnv.
var AppConfig Config

// Load reads configuration files and merges any environment specific
// overrides. The resulting configuration is stored in AppConfig and
// returned.
//
// The function uses the provided environment name to merge additional
// config files. If env is empty, only the default configuration is
// loaded.
func Load(env string) (*Config, error) {
	viper.SetConfigName("default")
	viper.AddConfigPath(".")
	viper.AddConfigPath("config")
	viper.SetConfigType("yaml")
	viper.SetDefault("pool.fee_bps", 30)
	viper.SetDefault("pool.slippage_tolerance_bps", 100)
	viper.SetDefault("pool.seed", "liquidity pool")
	viper.SetDefault("server.addr", ":8080")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, utils.Wrap(err, "load config")
		}
	}

	if env != "" {
		viper.SetConfigName(env)
		if err := viper.MergeInConfig(); err != nil {
			return nil, utils.Wrap(err, fmt.Sprintf("merge %s config", env))
		}
	}

	viper.AutomaticEnv() // picks up matching process environment variables

	if err := viper.Unmarshal(&AppConfig); err != nil {
		return nil, utils.Wrap(err, "unmarshal config")
	}
	return &AppConfig, nil
}

// LoadFromEnv loads configuration using the POOL_ENV environment variable.
func LoadFromEnv() (*Config, error) {
	return Load(utils.EnvOrDefault("POOL_ENV", ""))
}

// WriteDefault marshals cfg to YAML and writes it to path, so a fresh
// deployment has a starting default.yaml to edit rather than relying
// purely on the built-in viper defaults.
func WriteDefault(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return utils.Wrap(err, "marshal default config")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return utils.Wrap(err, "write default config")
	}
	return nil
}

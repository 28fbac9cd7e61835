// Package config provides centralized configuration management using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Ledger backends.
const (
	LedgerMemory = "memory" // Embedded JetStream with in-memory storage
	LedgerFile   = "file"   // Embedded JetStream persisted under data_dir
	LedgerOff    = "off"    // Static records only
)

// Config holds all configuration values for zaps.
type Config struct {
	Account       string        `mapstructure:"account" yaml:"account"`
	Username      string        `mapstructure:"username" yaml:"username"`
	MerchantName  string        `mapstructure:"merchant_name" yaml:"merchant_name"`
	DataDir       string        `mapstructure:"data_dir" yaml:"data_dir"`
	Ledger        string        `mapstructure:"ledger" yaml:"ledger"`
	LogLevel      string        `mapstructure:"log_level" yaml:"log_level"`
	LogFile       string        `mapstructure:"log_file" yaml:"log_file"`
	SearchDelay   time.Duration `mapstructure:"search_delay" yaml:"search_delay"`
	TerminalDelay time.Duration `mapstructure:"terminal_delay" yaml:"terminal_delay"`
	WaitingDelay  time.Duration `mapstructure:"waiting_delay" yaml:"waiting_delay"`
	ContactDelay  time.Duration `mapstructure:"contact_delay" yaml:"contact_delay"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Account:       "personal",
		Username:      "",
		MerchantName:  "Ejembiii.zaps",
		DataDir:       ".zaps",
		Ledger:        LedgerMemory,
		LogLevel:      "info",
		LogFile:       "",
		SearchDelay:   2 * time.Second,
		TerminalDelay: 1500 * time.Millisecond,
		WaitingDelay:  20 * time.Second,
		ContactDelay:  5 * time.Second,
	}
}

// keys lists every config key; each is bound to ZAPS_<KEY>.
var keys = []string{
	"account", "username", "merchant_name", "data_dir", "ledger", "log_level", "log_file",
	"search_delay", "terminal_delay", "waiting_delay", "contact_delay",
}

// Load loads configuration with full precedence:
// CLI flags > ENV vars > project config > XDG global config > defaults
// CLI flags are applied by the caller on the returned value.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("zaps")

	def := Default()
	v.SetDefault("account", def.Account)
	v.SetDefault("username", def.Username)
	v.SetDefault("merchant_name", def.MerchantName)
	v.SetDefault("data_dir", def.DataDir)
	v.SetDefault("ledger", def.Ledger)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_file", def.LogFile)
	v.SetDefault("search_delay", def.SearchDelay)
	v.SetDefault("terminal_delay", def.TerminalDelay)
	v.SetDefault("waiting_delay", def.WaitingDelay)
	v.SetDefault("contact_delay", def.ContactDelay)

	v.SetEnvPrefix("ZAPS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for _, key := range keys {
		if err := v.BindEnv(key, "ZAPS_"+strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	projectPath := ProjectPath()
	if fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerated values and delays.
func (c *Config) Validate() error {
	switch c.Account {
	case "personal", "merchant":
	default:
		return fmt.Errorf("invalid account %q: must be personal or merchant", c.Account)
	}
	switch c.Ledger {
	case LedgerMemory, LedgerFile, LedgerOff:
	default:
		return fmt.Errorf("invalid ledger %q: must be memory, file or off", c.Ledger)
	}
	if c.Ledger == LedgerFile && c.DataDir == "" {
		return fmt.Errorf("data_dir is required when ledger is %q", LedgerFile)
	}
	delays := map[string]time.Duration{
		"search_delay":   c.SearchDelay,
		"terminal_delay": c.TerminalDelay,
		"waiting_delay":  c.WaitingDelay,
		"contact_delay":  c.ContactDelay,
	}
	for name, d := range delays {
		if d < 0 {
			return fmt.Errorf("%s must not be negative, got %s", name, d)
		}
	}
	return nil
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/zaps/zaps.yml or $XDG_CONFIG_HOME/zaps/zaps.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "zaps", "zaps.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "zaps", "zaps.yml")
}

// ProjectPath returns the project-local config path.
func ProjectPath() string {
	return "zaps.yml"
}

// fileConfig is the on-disk shape; durations are written as "1.5s" rather
// than nanosecond integers.
type fileConfig struct {
	Account       string `yaml:"account"`
	Username      string `yaml:"username,omitempty"`
	MerchantName  string `yaml:"merchant_name"`
	DataDir       string `yaml:"data_dir"`
	Ledger        string `yaml:"ledger"`
	LogLevel      string `yaml:"log_level"`
	LogFile       string `yaml:"log_file"`
	SearchDelay   string `yaml:"search_delay"`
	TerminalDelay string `yaml:"terminal_delay"`
	WaitingDelay  string `yaml:"waiting_delay"`
	ContactDelay  string `yaml:"contact_delay"`
}

// Marshal renders the config as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(fileConfig{
		Account:       c.Account,
		Username:      c.Username,
		MerchantName:  c.MerchantName,
		DataDir:       c.DataDir,
		Ledger:        c.Ledger,
		LogLevel:      c.LogLevel,
		LogFile:       c.LogFile,
		SearchDelay:   c.SearchDelay.String(),
		TerminalDelay: c.TerminalDelay.String(),
		WaitingDelay:  c.WaitingDelay.String(),
		ContactDelay:  c.ContactDelay.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	return data, nil
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	return write(GlobalPath(), cfg)
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	return write(ProjectPath(), cfg)
}

func write(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

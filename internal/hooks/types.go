package hooks

// Config is the top-level configuration for hooks loaded from .zaps.hooks.yml.
type Config struct {
	Version int         `yaml:"version"`
	Hooks   HooksConfig `yaml:"hooks"`
}

// HooksConfig contains all hook configurations.
type HooksConfig struct {
	// OnRecord runs after every record the wallet appends, in order.
	OnRecord []*HookConfig `yaml:"on_record"`
	// OnReceived and OnTransfer run after OnRecord for records of that kind.
	OnReceived []*HookConfig `yaml:"on_received"`
	OnTransfer []*HookConfig `yaml:"on_transfer"`
}

// HookConfig defines a single hook's configuration.
type HookConfig struct {
	Command string `yaml:"command"`
	Timeout int    `yaml:"timeout"` // seconds, default 30
}

// DefaultTimeout is the default timeout for hook execution in seconds.
const DefaultTimeout = 30

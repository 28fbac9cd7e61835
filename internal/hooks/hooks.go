// Package hooks runs user commands when the wallet records a transaction,
// e.g. to print a receipt or ping a till.
package hooks

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/blinxlabs/zaps/internal/logger"
	"github.com/blinxlabs/zaps/internal/wallet"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the name of the hooks configuration file.
const ConfigFileName = ".zaps.hooks.yml"

// LoadConfig loads the hooks configuration from the working directory.
// Returns nil if the config file doesn't exist (hooks are optional).
// Returns an error only if the file exists but cannot be parsed.
func LoadConfig(workDir string) (*Config, error) {
	configPath := filepath.Join(workDir, ConfigFileName)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("No hooks config found at %s", configPath)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read hooks config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse hooks config: %w", err)
	}

	logger.Debug("Loaded hooks config from %s (version: %d)", configPath, cfg.Version)
	return &cfg, nil
}

// For returns the hooks that apply to tx: OnRecord first, then the hooks of
// its kind.
func (c *Config) For(tx wallet.Transaction) []*HookConfig {
	if c == nil {
		return nil
	}
	out := append([]*HookConfig(nil), c.Hooks.OnRecord...)
	switch tx.Kind {
	case wallet.KindReceived:
		out = append(out, c.Hooks.OnReceived...)
	case wallet.KindTransfer:
		out = append(out, c.Hooks.OnTransfer...)
	}
	return out
}

// Variables holds template variables that can be expanded in hook commands.
type Variables struct {
	ID      string
	Kind    string
	Amount  string
	Token   string
	Address string
	Value   string
}

// VariablesFor builds the template variables of a record.
func VariablesFor(tx wallet.Transaction) Variables {
	return Variables{
		ID:      tx.ID,
		Kind:    string(tx.Kind),
		Amount:  tx.Amount,
		Token:   tx.Token,
		Address: tx.Address,
		Value:   tx.Value,
	}
}

// Execute runs a hook command and returns its output.
// Template variables in the command ({{kind}}, {{amount}}, ...) are expanded before execution.
// On error, returns an error message as output and nil error (graceful degradation).
// Only returns error for context cancellation.
func Execute(ctx context.Context, hook *HookConfig, workDir string, vars Variables) (string, error) {
	if hook == nil || hook.Command == "" {
		return "", nil
	}

	command := expandVariables(hook.Command, vars)
	logger.Debug("Executing hook command: %s", command)

	timeout := hook.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	execCtx, cancel := context.WithTimeout(ctx, time.Duration(timeout)*time.Second)
	defer cancel()

	cmd := exec.CommandContext(execCtx, "sh", "-c", command)
	cmd.Dir = workDir
	cmd.WaitDelay = time.Second

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	if execCtx.Err() == context.DeadlineExceeded {
		logger.Warn("Hook command timed out after %ds: %s", timeout, command)
		return fmt.Sprintf("[Hook timed out after %ds]\nPartial output:\n%s", timeout, stdout.String()), nil
	}

	if err != nil {
		logger.Warn("Hook command failed: %v", err)
		output := stdout.String()
		if stderr.Len() > 0 {
			output += "\n[stderr]\n" + stderr.String()
		}
		return fmt.Sprintf("[Hook command failed: %v]\n%s", err, output), nil
	}

	output := stdout.String()
	if stderr.Len() > 0 {
		logger.Debug("Hook stderr: %s", stderr.String())
		output += "\n[stderr]\n" + stderr.String()
	}

	logger.Debug("Hook executed successfully, output length: %d bytes", len(output))
	return output, nil
}

// ExecuteAll runs hooks in order and joins their non-empty outputs.
// It stops early only when ctx is cancelled.
func ExecuteAll(ctx context.Context, hooks []*HookConfig, workDir string, vars Variables) (string, error) {
	var outputs []string
	for _, hook := range hooks {
		out, err := Execute(ctx, hook, workDir, vars)
		if err != nil {
			return "", err
		}
		if out != "" {
			outputs = append(outputs, out)
		}
	}
	return strings.Join(outputs, "\n"), nil
}

// expandVariables replaces {{variable}} placeholders in the command string.
// Values are shell-quoted so record fields cannot inject commands.
func expandVariables(command string, vars Variables) string {
	replacements := map[string]string{
		"{{id}}":      vars.ID,
		"{{kind}}":    vars.Kind,
		"{{amount}}":  vars.Amount,
		"{{token}}":   vars.Token,
		"{{address}}": vars.Address,
		"{{value}}":   vars.Value,
	}

	result := command
	for placeholder, value := range replacements {
		result = strings.ReplaceAll(result, placeholder, shellQuote(value))
	}
	return result
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

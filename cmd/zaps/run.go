package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/blinxlabs/zaps/internal/config"
	"github.com/blinxlabs/zaps/internal/hooks"
	"github.com/blinxlabs/zaps/internal/ledger"
	"github.com/blinxlabs/zaps/internal/logger"
	"github.com/blinxlabs/zaps/internal/state"
	"github.com/blinxlabs/zaps/internal/tui"
	"github.com/blinxlabs/zaps/internal/wallet"
	"github.com/spf13/cobra"
)

var runFlags struct {
	account string
	ledger  string
	dataDir string
	onboard bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the wallet interface",
	Long: `Open the full-screen wallet interface.

The account type decides the home screen: personal accounts get send,
receive, scan, tap to pay and history; merchant accounts get accept payment,
QR code, history and settings. Use --onboard to walk through account setup
first.`,
	RunE: runApp,
}

func init() {
	addRunFlags(runCmd)
}

// addRunFlags registers the launch flags on cmd. The root command and run
// share the same flag set.
func addRunFlags(cmd *cobra.Command) {
	addStoreFlags(cmd)
	cmd.Flags().BoolVar(&runFlags.onboard, "onboard", false, "Start at the welcome screen and create an account")
}

// addStoreFlags registers the flags that pick the account and its ledger.
func addStoreFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&runFlags.account, "account", "a", "", "Account type: personal or merchant (default: from config)")
	cmd.Flags().StringVarP(&runFlags.ledger, "ledger", "l", "", "Ledger backend: memory, file or off (default: from config)")
	cmd.Flags().StringVar(&runFlags.dataDir, "data-dir", "", "Data directory for the ledger and preferences (default: from config)")
}

// loadConfig loads config and applies the run flags on top.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if runFlags.account != "" {
		cfg.Account = runFlags.account
	}
	if runFlags.ledger != "" {
		cfg.Ledger = runFlags.ledger
	}
	if runFlags.dataDir != "" {
		cfg.DataDir = runFlags.dataDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return nil, fmt.Errorf("failed to configure logging: %w", err)
	}
	return cfg, nil
}

// store is a record source that may also accept records.
type store interface {
	wallet.RecordSource
	wallet.RecordSink
}

// openStore opens the configured ledger for profile. The returned close
// function is always non-nil.
func openStore(ctx context.Context, cfg *config.Config, profile wallet.Profile) (store, func(), error) {
	if cfg.Ledger == config.LedgerOff {
		logger.Debug("Ledger disabled, using static records")
		return wallet.NewStaticSource(), func() {}, nil
	}

	opts := ledger.Options{Account: profile.ZapsID, Seed: true}
	if cfg.Ledger == config.LedgerFile {
		opts.DataDir = cfg.DataDir
	}

	l, err := ledger.Open(ctx, opts)
	if err != nil {
		return nil, func() {}, fmt.Errorf("failed to open ledger: %w", err)
	}
	return l, func() {
		if err := l.Close(); err != nil {
			logger.Warn("Error closing ledger: %v", err)
		}
	}, nil
}

// defaultProfile derives the profile from the configured account and username.
func defaultProfile(cfg *config.Config) (wallet.Profile, error) {
	kind, err := wallet.ParseAccountKind(cfg.Account)
	if err != nil {
		return wallet.Profile{}, err
	}
	return wallet.DefaultProfile(kind, cfg.Username), nil
}

func runApp(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	profile, err := defaultProfile(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	st, closeStore, err := openStore(ctx, cfg, profile)
	if err != nil {
		return err
	}
	defer closeStore()

	hookCfg, err := hooks.LoadConfig(".")
	if err != nil {
		return err
	}

	prefs := state.DefaultPreferences()
	if cfg.DataDir != "" {
		prefs = state.Load(cfg.DataDir)
	}

	logger.Info("Starting zaps (account=%s, ledger=%s)", profile.Kind, cfg.Ledger)
	return tui.Run(ctx, tui.Options{
		Config:  cfg,
		Profile: profile,
		Source:  st,
		Sink:    hooks.NewSink(st, hookCfg, "."),
		Prefs:   prefs,
		Onboard: runFlags.onboard,
	})
}

package main

import (
	"context"
	"os"

	"github.com/blinxlabs/zaps/internal/logger"
	"github.com/blinxlabs/zaps/internal/tui"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "zaps",
	Short: "Terminal wallet for sending, receiving and accepting payments",
	RunE:  runApp,
}

func init() {
	rootCmd.Long = tui.Logo() + `

zaps is a terminal wallet. Personal accounts send, receive and tap to pay;
merchant accounts accept payments and generate payment requests.
History is kept in an embedded NATS JetStream ledger.

Run without a subcommand to open the full-screen interface.`

	addRunFlags(rootCmd)

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(flowsCmd)
}

package main

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/blinxlabs/zaps/internal/tui/theme"
	"github.com/blinxlabs/zaps/internal/wallet"
	"github.com/spf13/cobra"
)

var historyFlags struct {
	filter string
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print transaction history",
	Long: `Print the transaction history of the configured account, newest first.

Records come from the configured ledger; with ledger "off" the built-in
sample history is shown.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&historyFlags.filter, "filter", "all", "Show all, received or transfer records")
	addStoreFlags(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	filter, err := wallet.ParseFilter(historyFlags.filter)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	profile, err := defaultProfile(cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	st, closeStore, err := openStore(ctx, cfg, profile)
	if err != nil {
		return err
	}
	defer closeStore()

	records, err := st.FetchRecords(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch records: %w", err)
	}

	out := cmd.OutOrStdout()
	rows := filter.Apply(records)
	if len(rows) == 0 {
		_, _ = fmt.Fprintf(out, "No %s transactions.\n", strings.ToLower(string(filter)))
		return nil
	}
	for _, tx := range rows {
		_, _ = fmt.Fprintln(out, formatRecord(tx))
	}
	return nil
}

// formatRecord renders one record as a single line.
func formatRecord(tx wallet.Transaction) string {
	st := theme.Current().S()
	label, sign := "Received", "+"
	if tx.Kind == wallet.KindTransfer {
		label, sign = "Transfer", "-"
	}
	amount := sign + tx.Amount
	if tx.Token != "" {
		amount += " " + strings.ToUpper(tx.Token)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		fmt.Sprintf("%-10s", label),
		st.Amount.Render(fmt.Sprintf("%-16s", amount)),
		fmt.Sprintf("%-32s", tx.Address),
		st.Muted.Render(tx.Date()+" "+tx.Time()),
	)
}

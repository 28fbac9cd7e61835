package main

import (
	"fmt"

	"github.com/blinxlabs/zaps/internal/flows"
	"github.com/spf13/cobra"
)

var flowsCmd = &cobra.Command{
	Use:   "flows",
	Short: "List every flow and its steps",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, f := range flows.Describe() {
			_, _ = fmt.Fprintf(out, "%s (%s)\n", f.Title, f.Name)
			for i, s := range f.Steps {
				marks := ""
				if s.Gated {
					marks += " [needs input]"
				}
				if s.Terminal {
					marks += " [terminal]"
				}
				_, _ = fmt.Fprintf(out, "  %d. %s%s\n", i+1, s.ID, marks)
			}
		}
		return nil
	},
}

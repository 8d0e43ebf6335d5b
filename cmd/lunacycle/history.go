package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trangvu/lunacycle/internal/config"
)

var historyDeleteID string

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded cycles, newest first",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&historyDeleteID, "delete", "", "Delete the cycle with the given id")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	if historyDeleteID != "" {
		if _, err := cli.Repo.DeleteCycle(historyDeleteID); err != nil {
			return err
		}
		// Removing a sample shifts the averages.
		if _, _, err := cli.Repo.RecalculateProfile(); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	for _, c := range cli.Repo.Cycles() {
		line := fmt.Sprintf("%s  %s", c.ID, c.StartDate)
		if duration, closed := c.Duration(); closed {
			line += fmt.Sprintf("  %s  %s", c.EndDate,
				cli.Tr.MsgData(config.TKeyLblDuration, map[string]any{"Days": duration}))
		} else {
			line += "  " + cli.Tr.Msg(config.TKeyLblOngoing)
		}
		if c.Note != "" {
			line += fmt.Sprintf("  %q", c.Note)
		}
		fmt.Fprintln(out, line)
	}
	return nil
}

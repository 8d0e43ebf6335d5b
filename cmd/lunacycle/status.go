package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trangvu/lunacycle/internal/config"
	"github.com/trangvu/lunacycle/internal/cycle"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current cycle day or the next-period forecast",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	profile, ok := cli.Repo.Profile()
	if !ok {
		return errors.New(config.ErrNoProfile)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, cli.Tr.MsgData(config.TKeyHello, map[string]any{"Name": profile.Name}))

	cycles := cli.Repo.Cycles()
	now := cli.Clock.Now()

	if latest, found := cycle.MostRecent(cycles); found && cycle.OnPeriod(latest, now) {
		fmt.Fprintln(out, cli.Tr.MsgData(config.TKeyStatusPeriod, map[string]any{
			"Day": cycle.DayOfCycle(latest, now),
		}))
	} else if next, daysUntil, haveForecast := cycle.Forecast(profile, cycles, now); haveForecast {
		if daysUntil > 0 {
			fmt.Fprintln(out, cli.Tr.MsgData(config.TKeyStatusForecast, map[string]any{
				"Days": daysUntil,
				"Date": next.String(),
			}))
		} else {
			// A passed forecast clamps to "due today" for display.
			fmt.Fprintln(out, cli.Tr.Msg(config.TKeyStatusToday))
		}
	}

	days := cli.Tr.Msg(config.TKeyLblDays)
	fmt.Fprintf(out, "%s: %d %s\n", cli.Tr.Msg(config.TKeyLblCycleLen), profile.AverageCycleLength, days)
	fmt.Fprintf(out, "%s: %d %s\n", cli.Tr.Msg(config.TKeyLblPeriodDur), profile.AveragePeriodDuration, days)
	return nil
}

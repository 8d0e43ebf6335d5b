package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/trangvu/lunacycle/internal/config"
	"github.com/trangvu/lunacycle/internal/cycle"
)

var (
	startDateFlag string
	endDateFlag   string
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Record that a new period has started",
	RunE:  runStart,
}

var endCmd = &cobra.Command{
	Use:   "end",
	Short: "Close the current period",
	RunE:  runEnd,
}

var noteCmd = &cobra.Command{
	Use:   "note <text>",
	Short: "Attach a note to the current cycle",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runNote,
}

func init() {
	startCmd.Flags().StringVar(&startDateFlag, "date", "", "Start date (YYYY-MM-DD), defaults to today")
	endCmd.Flags().StringVar(&endDateFlag, "date", "", "End date (YYYY-MM-DD), defaults to today")
	rootCmd.AddCommand(startCmd, endCmd, noteCmd)
}

// resolveDate parses an explicit flag date or falls back to today.
func resolveDate(flag string) (cycle.Date, error) {
	if flag == "" {
		return cycle.DateOf(cli.Clock.Now()), nil
	}
	return cycle.ParseDate(flag)
}

func runStart(cmd *cobra.Command, args []string) error {
	if _, ok := cli.Repo.Profile(); !ok {
		return errors.New(config.ErrNoProfile)
	}

	start, err := resolveDate(startDateFlag)
	if err != nil {
		return err
	}

	// A still-open previous cycle is closed as of the day before the new
	// start; the user evidently forgot to end it.
	if latest, found := cycle.MostRecent(cli.Repo.Cycles()); found && latest.Open() {
		closed := start.AddDays(-1)
		latest.EndDate = &closed
		if _, err := cli.Repo.UpdateCycle(latest); err != nil {
			return err
		}
	}

	if _, err := cli.Repo.AddCycle(cycle.Cycle{ID: uuid.NewString(), StartDate: start}); err != nil {
		return err
	}
	if _, _, err := cli.Repo.RecalculateProfile(); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), cli.Tr.MsgData(config.TKeyStatusPeriod, map[string]any{"Day": 1}))
	return nil
}

func runEnd(cmd *cobra.Command, args []string) error {
	latest, found := cycle.MostRecent(cli.Repo.Cycles())
	if !found {
		return errors.New(config.ErrNoCycles)
	}
	if !latest.Open() {
		return errors.New(config.ErrNoOpenCycle)
	}

	end, err := resolveDate(endDateFlag)
	if err != nil {
		return err
	}
	if end.Before(latest.StartDate.Time) {
		return errors.New(config.ErrEndBeforeStart)
	}

	latest.EndDate = &end
	if _, err := cli.Repo.UpdateCycle(latest); err != nil {
		return err
	}

	profile, _, err := cli.Repo.RecalculateProfile()
	if err != nil {
		return err
	}

	duration, _ := latest.Duration()
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, cli.Tr.MsgData(config.TKeyLblDuration, map[string]any{"Days": duration}))
	fmt.Fprintf(out, "%s: %d %s\n",
		cli.Tr.Msg(config.TKeyLblPeriodDur), profile.AveragePeriodDuration, cli.Tr.Msg(config.TKeyLblDays))
	return nil
}

func runNote(cmd *cobra.Command, args []string) error {
	latest, found := cycle.MostRecent(cli.Repo.Cycles())
	if !found {
		return errors.New(config.ErrNoCycles)
	}

	latest.Note = strings.TrimSpace(strings.Join(args, " "))
	_, err := cli.Repo.UpdateCycle(latest)
	return err
}

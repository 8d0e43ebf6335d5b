package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/trangvu/lunacycle/internal/config"
	"github.com/trangvu/lunacycle/internal/export"
)

var exportOutPath string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export cycle history as an iCalendar file",
	Long: `Writes every recorded period plus the next-period forecast as
all-day events in a standard .ics file, importable into any calendar
application.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutPath, "out", "o", "lunacycle.ics", "Output file path")
	rootCmd.AddCommand(exportCmd)
}

// newCalendarGenerator wires a generator with localized event summaries.
func newCalendarGenerator() *export.Generator {
	gen := export.NewGenerator()
	gen.Clock = cli.Clock
	gen.FormatPeriod = func(name string) string {
		return cli.Tr.MsgData(config.TKeyEvtPeriod, map[string]any{"Name": name})
	}
	gen.FormatForecast = func(name string) string {
		return cli.Tr.MsgData(config.TKeyEvtForecast, map[string]any{"Name": name})
	}
	return gen
}

func runExport(cmd *cobra.Command, args []string) error {
	profile, ok := cli.Repo.Profile()
	if !ok {
		return errors.New(config.ErrNoProfile)
	}

	data, err := newCalendarGenerator().Generate(profile, cli.Repo.Cycles())
	if err != nil {
		return err
	}
	if err := os.WriteFile(exportOutPath, data, config.FilePermUserRW); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s (%d bytes)\n", exportOutPath, len(data))
	return nil
}

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
	onboardName       string
	onboardLastPeriod string
)

var onboardCmd = &cobra.Command{
	Use:   "init",
	Short: "Set up your profile and record the most recent period start",
	RunE:  runOnboard,
}

func init() {
	onboardCmd.Flags().StringVar(&onboardName, "name", "", "Your display name")
	onboardCmd.Flags().StringVar(&onboardLastPeriod, "last-period", "", "Start date of your most recent period (YYYY-MM-DD)")
	_ = onboardCmd.MarkFlagRequired("name")
	_ = onboardCmd.MarkFlagRequired("last-period")
	rootCmd.AddCommand(onboardCmd)
}

func runOnboard(cmd *cobra.Command, args []string) error {
	name := strings.TrimSpace(onboardName)
	if name == "" {
		return errors.New(config.ErrNameRequired)
	}

	start, err := cycle.ParseDate(onboardLastPeriod)
	if err != nil {
		return err
	}

	if err := cli.Repo.SaveProfile(cycle.NewProfile(name)); err != nil {
		return err
	}

	seed := cycle.Cycle{ID: uuid.NewString(), StartDate: start}
	if _, err := cli.Repo.AddCycle(seed); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), cli.Tr.MsgData(config.TKeyHello, map[string]any{"Name": name}))
	return nil
}

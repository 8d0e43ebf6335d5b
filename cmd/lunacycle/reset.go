package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var resetConfirmed bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all stored data",
	Long:  `Removes the profile, every recorded cycle and all cached advice. The stored API key is not touched; use "key clear" for that.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetConfirmed {
			return errors.New("refusing to delete data without --yes")
		}
		cli.Repo.ClearAll()
		fmt.Fprintln(cmd.OutOrStdout(), "All data deleted")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetConfirmed, "yes", false, "Confirm deletion")
	rootCmd.AddCommand(resetCmd)
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zalando/go-keyring"

	"github.com/trangvu/lunacycle/internal/config"
)

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Manage the advice provider API key",
}

var keySetCmd = &cobra.Command{
	Use:   "set <api-key>",
	Short: "Store the API key in the system keyring",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := keyring.Set(config.KeyringService, config.KeyringUser, args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "API key stored")
		return nil
	},
}

var keyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the API key from the system keyring",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := keyring.Delete(config.KeyringService, config.KeyringUser); err != nil {
			if err == keyring.ErrNotFound {
				return nil
			}
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "API key removed")
		return nil
	},
}

func init() {
	keyCmd.AddCommand(keySetCmd, keyClearCmd)
	rootCmd.AddCommand(keyCmd)
}

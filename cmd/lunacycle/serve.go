package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trangvu/lunacycle/internal/config"
	"github.com/trangvu/lunacycle/internal/feed"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calendar as a local subscription feed",
	Long: `Starts a localhost-only HTTP endpoint serving the cycle calendar so
a calendar app can subscribe to it instead of re-importing files.
Runs until interrupted; the feed is read-only.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", config.DefaultFeedPort, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := feed.ValidatePort(servePort); err != nil {
		return err
	}

	profile, ok := cli.Repo.Profile()
	if !ok {
		return errors.New(config.ErrNoProfile)
	}

	data, err := newCalendarGenerator().Generate(profile, cli.Repo.Cycles())
	if err != nil {
		return err
	}

	srv := feed.NewServer(servePort)
	srv.Update(data)

	fmt.Fprintf(cmd.OutOrStdout(), "http://%s%s%s%s\n",
		config.LocalhostBindAddr, config.AddrSeparator, servePort, config.RouteRoot)

	return srv.Start(cmd.Context())
}

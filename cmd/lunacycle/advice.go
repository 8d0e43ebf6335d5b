package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zalando/go-keyring"

	"github.com/trangvu/lunacycle/internal/advice"
	"github.com/trangvu/lunacycle/internal/config"
	"github.com/trangvu/lunacycle/internal/cycle"
)

var adviceRefreshMenu bool

var adviceCmd = &cobra.Command{
	Use:   "advice",
	Short: "Show today's AI wellness suggestion",
	Long: `Fetches one AI-generated suggestion per day, tailored to your cycle
day, and caches it locally: asking again on the same day never re-calls
the provider. --refresh-menu re-rolls only the meal suggestions while
keeping the day's mood and activities.`,
	RunE: runAdvice,
}

func init() {
	adviceCmd.Flags().BoolVar(&adviceRefreshMenu, "refresh-menu", false, "Re-roll only today's menu")
	rootCmd.AddCommand(adviceCmd)
}

func runAdvice(cmd *cobra.Command, args []string) error {
	profile, ok := cli.Repo.Profile()
	if !ok {
		return errors.New(config.ErrNoProfile)
	}
	latest, found := cycle.MostRecent(cli.Repo.Cycles())
	if !found {
		return errors.New(config.ErrNoCycles)
	}

	now := cli.Clock.Now()
	req := advice.Request{
		DayOfCycle: cycle.DayOfCycle(latest, now),
		OnPeriod:   cycle.OnPeriod(latest, now),
		UserName:   profile.Name,
	}

	apiKey, err := keyring.Get(config.KeyringService, config.KeyringUser)
	if err != nil {
		return errors.New(config.ErrAPIKeyMissing)
	}

	model := config.DefaultModel
	if stored, ok := cli.KV.Get(config.KeyAdviceModel); ok {
		model = stored
	}

	provider, err := advice.NewGeminiProvider(cmd.Context(), apiKey, model, cli.Tr.AdvicePrompt)
	if err != nil {
		return err
	}

	gateway := advice.NewGateway(cli.Repo, provider)
	gateway.Clock = cli.Clock

	var daily *advice.Daily
	if adviceRefreshMenu {
		daily, err = gateway.RefreshMenu(cmd.Context(), req)
	} else {
		daily, err = gateway.FetchDaily(cmd.Context(), req)
	}
	if err != nil {
		return err
	}

	printAdvice(cmd, daily)
	return nil
}

func printAdvice(cmd *cobra.Command, d *advice.Daily) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %q\n", cli.Tr.Msg(config.TKeyLblMood), d.Mood)
	fmt.Fprintf(out, "%s: %s\n", cli.Tr.Msg(config.TKeyLblBreakfast), d.Menu.Breakfast)
	fmt.Fprintf(out, "%s: %s\n", cli.Tr.Msg(config.TKeyLblLunch), d.Menu.Lunch)
	fmt.Fprintf(out, "%s: %s\n", cli.Tr.Msg(config.TKeyLblDinner), d.Menu.Dinner)
	fmt.Fprintln(out, cli.Tr.Msg(config.TKeyLblActivities)+":")
	for _, a := range d.Activities {
		fmt.Fprintf(out, "  %s %s\n", a.Emoji, a.Text)
	}
}

package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/trangvu/lunacycle/internal/config"
	"github.com/trangvu/lunacycle/internal/cycle"
	"github.com/trangvu/lunacycle/internal/i18n"
	"github.com/trangvu/lunacycle/internal/store"
)

var (
	flagDebug    bool
	flagLang     string
	flagDataPath string
)

// app bundles the wired dependencies every command needs. Populated by
// the root PersistentPreRunE so subcommands stay declarative.
type app struct {
	Repo  *store.Repository
	KV    store.KV
	Tr    *i18n.Translator
	Clock cycle.Clock
}

var cli app

var rootCmd = &cobra.Command{
	Use:   "lunacycle",
	Short: "Personal menstrual-cycle tracker with AI wellness advice",
	Long: `LunaCycle records your cycle history locally, predicts the next
period from your own averages and fetches one AI-generated wellness
suggestion per day. All data stays in a single file on your machine.`,
	Version:       config.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupApp()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagLang, "lang", "", "Output language (en, vi)")
	rootCmd.PersistentFlags().StringVar(&flagDataPath, "data", "", "Override the data file location")
	rootCmd.AddCommand(versionCmd)
}

// setupApp opens the store and resolves the output language: the --lang
// flag wins and is remembered, otherwise the stored preference applies.
func setupApp() error {
	path := flagDataPath
	if path == "" {
		var err error
		path, err = store.DefaultDataPath()
		if err != nil {
			return err
		}
	}

	kv, err := store.OpenFileKV(path)
	if err != nil {
		return err
	}

	lang := flagLang
	if lang == "" {
		if stored, ok := kv.Get(config.KeyLanguage); ok {
			lang = stored
		}
	} else {
		// Remember the explicit choice; failure to persist a preference
		// is not worth failing the command.
		_ = kv.Set(config.KeyLanguage, lang)
	}

	cli = app{
		Repo:  store.NewRepository(kv),
		KV:    kv,
		Tr:    i18n.New(lang),
		Clock: cycle.RealClock{},
	}
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show application version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), config.MsgVersionOutput,
			config.AppName, config.Version, runtime.GOOS, runtime.GOARCH)
	},
}

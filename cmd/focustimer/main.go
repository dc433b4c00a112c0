package main

import (
	"os"

	"focustimer/internal/di"
	"focustimer/internal/providers"
	"focustimer/internal/structures"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		providers.NewConsoleLogger(os.Stderr, "error").Errorf(providers.TypeApp, "%s", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &structures.CliFlags{}

	root := &cobra.Command{
		Use:           "focustimer",
		Short:         "Focus timer and weekly time tracking",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&flags.ConfigPath, "config", "c", "config.yml", "path to the YAML config file")
	root.PersistentFlags().BoolVarP(&flags.DebugMode, "debug", "d", false, "mirror logs to stderr")

	root.AddCommand(newServeCmd(flags))
	root.AddCommand(newTimerCmd(flags))
	root.AddCommand(newStatsCmd(flags))
	root.AddCommand(newSessionsCmd(flags))
	root.AddCommand(newSettingsCmd(flags))
	root.AddCommand(newExportCmd(flags))
	root.AddCommand(newImportCmd(flags))
	root.AddCommand(newDemoCmd(flags))
	root.AddCommand(newClearCmd(flags))
	return root
}

// withToolkit wires the service graph, runs fn and releases the store.
func withToolkit(flags *structures.CliFlags, fn func(tk *di.Toolkit) error) error {
	tk, cleanup, err := di.InitToolkit(flags)
	if err != nil {
		return err
	}
	defer tk.Logger.Close()
	defer cleanup()
	return fn(tk)
}

func newServeCmd(flags *structures.CliFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the shared timer",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, cleanup, err := di.InitApp(flags)
			if err != nil {
				return err
			}
			defer app.Close()
			defer cleanup()
			return app.Run()
		},
	}
}

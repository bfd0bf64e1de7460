package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type globalOptions struct {
	envFiles   []string
	today      string
	locale     string
	profile    string
	metricsOut string
}

func newRootCmd() *cobra.Command {
	var g globalOptions
	cmd := &cobra.Command{
		Use:           "staffplan",
		Short:         "Staff position occupancy timelines from HR exports",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringSliceVar(&g.envFiles, "env-file", []string{".env", ".env.local"}, "Env files to load before reading the environment")
	pf.StringVar(&g.today, "today", "", "Pin today's date (YYYY-MM-DD); defaults to the wall clock")
	pf.StringVar(&g.locale, "locale", "", "Output language (de|en); overrides profile and STAFFPLAN_LOCALE")
	pf.StringVar(&g.profile, "profile", "", "YAML or TOML view profile")
	pf.StringVar(&g.metricsOut, "metrics-out", "", "Write Prometheus metrics to this textfile after the run")

	cmd.AddCommand(newGanttCmd(&g))
	cmd.AddCommand(newWhiteSpotsCmd(&g))
	cmd.AddCommand(newOptionsCmd(&g))
	cmd.AddCommand(newWindowCmd(&g))
	return cmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		code := exitCode(err)
		// cobra's own flag and argument errors carry no code.
		if code == 1 {
			code = exitUsage
		}
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(code)
	}
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nibzard/kanban-go/internal/config"
	"github.com/nibzard/kanban-go/internal/logging"
)

func newConfigCommand(a *app) *cobra.Command {
	var example bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration and where each value came from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if example {
				fmt.Fprint(a.stdout, config.ExampleConfig())
				return nil
			}
			for _, name := range config.Fields() {
				value, _ := a.cfg.Value(name)
				fmt.Fprintf(a.stdout, "%-18s = %-24s ", name, value)
				faint.Fprintf(a.stdout, "(%s)\n", a.sources.Sources[name])
			}
			fmt.Fprintln(a.stdout)
			if len(a.sources.Files) == 0 {
				faint.Fprintln(a.stdout, "No config files found.")
			}
			for _, f := range a.sources.Files {
				fmt.Fprintf(a.stdout, "Read %s\n", f)
			}
			for _, w := range a.sources.Warnings {
				warning(a.stdout, "%s", w)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&example, "example", false, "Print an example config file")
	return cmd
}

// newTailCommand tails the latest session log of this project.
func newTailCommand(a *app) *cobra.Command {
	var follow bool
	var lines int
	cmd := &cobra.Command{
		Use:   "tail",
		Short: "Show the latest session log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logDir, err := logging.FindLogDir(a.cfg.LogDir, a.cfg.ProjectRoot)
			if err != nil {
				return fmt.Errorf("finding log directory: %w", err)
			}
			logPath, err := logging.FindLatestLog(logDir)
			if err != nil {
				return fmt.Errorf("finding latest log: %w", err)
			}
			if logPath == "" {
				return fmt.Errorf("no session logs in %s", logDir)
			}
			return logging.TailLog(cmd.Context(), a.stdout, logPath, lines, follow)
		},
	}
	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Follow the log (like tail -f)")
	cmd.Flags().IntVarP(&lines, "lines", "n", 0, "Number of lines to show (0 = all)")
	return cmd
}

func newVersionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(a.stdout, "kanban %s\n", Version)
			return nil
		},
	}
}

// Package cmd implements the CLI command structure for kanban.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/nibzard/kanban-go/internal/config"
	"github.com/nibzard/kanban-go/internal/controller"
	"github.com/nibzard/kanban-go/internal/logging"
	"github.com/nibzard/kanban-go/internal/store"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the kanban CLI.
func Run(ctx context.Context, args []string) error {
	a := &app{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
	root := newRootCommand(a)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// app carries what every command needs once flags are parsed.
type app struct {
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
	workDir string

	sources *config.ConfigWithSources
	cfg     *config.Config
	logOpts logging.Options
	logger  *log.Logger
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "kanban",
		Short: "A three-column kanban board for the terminal",
		Long: `kanban keeps a To Do / In Progress / Done board per project.

Run without a command to open the interactive board: drag cards between
columns with the mouse, click "+ Add card" to add one and the × on a
hovered card to delete it. Every change is saved immediately.`,
		Version:           Version,
		SilenceErrors:     true,
		SilenceUsage:      true,
		Args:              cobra.NoArgs,
		PersistentPreRunE: a.setup,
		RunE:              a.runTUI,
	}
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.SetVersionTemplate("kanban {{.Version}}\n")
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newTUICommand(a),
		newShowCommand(a),
		newAddCommand(a),
		newRemoveCommand(a),
		newExportCommand(a),
		newImportCommand(a),
		newClearCommand(a),
		newConfigCommand(a),
		newTailCommand(a),
		newVersionCommand(a),
	)
	return root
}

// setup loads configuration and the CLI logger before any command runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cws, err := config.LoadWithSources(cmd.Flags(), a.workDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	a.sources = cws
	a.cfg = cws.Config

	level, err := logging.ParseLevel(a.cfg.LogLevel)
	if err != nil {
		return err
	}
	formatter, err := logging.ParseFormatter(a.cfg.LogFormat)
	if err != nil {
		return err
	}
	a.logOpts = logging.Options{
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: a.cfg.LogTimestamps,
		ReportCaller:    a.cfg.LogCaller,
		Prefix:          "kanban",
	}
	a.logger = logging.New(a.stderr, a.logOpts)
	for _, w := range cws.Warnings {
		a.logger.Warn("config", "warning", w)
	}
	a.logger.Debug("config loaded", "files", cws.Files, "store", a.cfg.Store)
	return nil
}

// openStore opens the configured store. The caller closes it with closeStore.
func (a *app) openStore() (store.Store, error) {
	opts, err := a.cfg.StoreOptions()
	if err != nil {
		return nil, err
	}
	st, err := store.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening %s store: %w", opts.Backend, err)
	}
	return st, nil
}

func (a *app) controllerOptions() controller.Options {
	return controller.Options{
		RejectEmptyCards: !a.cfg.AllowEmptyCards,
		Logger:           a.logger,
	}
}

// withBoard opens the store, loads the board and hands both to fn.
func (a *app) withBoard(ctx context.Context, fn func(*controller.Controller) error) error {
	st, err := a.openStore()
	if err != nil {
		return err
	}
	defer a.closeStore(st)

	ctrl := controller.New(st, nil, a.controllerOptions())
	if err := ctrl.Initialize(ctx); err != nil {
		return err
	}
	return fn(ctrl)
}

func (a *app) closeStore(st store.Store) {
	if err := store.Close(st); err != nil {
		a.logger.Warn("closing store", "err", err)
	}
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nibzard/kanban-go/internal/logging"
	"github.com/nibzard/kanban-go/internal/ui"
)

func newTUICommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive board (default)",
		Args:  cobra.NoArgs,
		RunE:  a.runTUI,
	}
}

// runTUI runs the interactive board. The terminal belongs to the board, so
// logs go to a per-session file under log_dir.
func (a *app) runTUI(cmd *cobra.Command, _ []string) error {
	if !ui.IsTTY(a.stdout) {
		return fmt.Errorf("tui requires a TTY (try 'kanban show')")
	}

	session, err := logging.NewSessionLogger(a.cfg.LogDir, a.cfg.ProjectRoot)
	if err != nil {
		return fmt.Errorf("creating session log: %w", err)
	}
	defer session.Close()
	logger := logging.New(session.Writer(), a.logOpts)
	logger.Info("session started", "version", Version, "store", a.cfg.Store, "root", a.cfg.ProjectRoot)

	st, err := a.openStore()
	if err != nil {
		return err
	}
	defer a.closeStore(st)

	err = ui.RunTUI(cmd.Context(), st,
		ui.WithLogger(logger),
		ui.WithRejectEmptyCards(!a.cfg.AllowEmptyCards),
	)
	if err != nil {
		logger.Error("tui exited", "err", err)
		return err
	}
	logger.Info("session ended")
	return nil
}

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nibzard/kanban-go/internal/board"
	"github.com/nibzard/kanban-go/internal/controller"
)

func newShowCommand(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withBoard(cmd.Context(), func(ctrl *controller.Controller) error {
				s := ctrl.Serialize()
				if asJSON {
					data, err := board.Marshal(s, board.FormatJSON)
					if err != nil {
						return err
					}
					_, err = a.stdout.Write(data)
					return err
				}
				a.printBoard(s)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the stored snapshot as JSON")
	return cmd
}

func (a *app) printBoard(s board.Snapshot) {
	for i, col := range board.Columns() {
		if i > 0 {
			fmt.Fprintln(a.stdout)
		}
		labels := s.Column(col)
		heading(a.stdout, "%s (%d)", col.Title(), len(labels))
		if len(labels) == 0 {
			faint.Fprintln(a.stdout, "  (empty)")
			continue
		}
		for n, label := range labels {
			faint.Fprintf(a.stdout, "  %d. ", n+1)
			fmt.Fprintln(a.stdout, label)
		}
	}
}

func newAddCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <column> [text...]",
		Short: "Add a card to the end of a column",
		Long: `Add a card to the end of a column.

Columns are todo, in-progress and done. The remaining arguments are joined
with spaces to form the card text.`,
		Example: "  kanban add todo write the release notes",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			col, err := board.ParseColumn(args[0])
			if err != nil {
				return err
			}
			text := strings.Join(args[1:], " ")
			return a.withBoard(cmd.Context(), func(ctrl *controller.Controller) error {
				if _, err := ctrl.CreateCard(cmd.Context(), col, text); err != nil {
					return err
				}
				success(a.stdout, "Added to %s (%d cards)", col.Title(), len(ctrl.Serialize().Column(col)))
				return nil
			})
		},
	}
}

func newRemoveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <column> <position>",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete the card at a 1-based position in a column",
		Example: "  kanban rm done 1",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			col, err := board.ParseColumn(args[0])
			if err != nil {
				return err
			}
			pos, err := strconv.Atoi(args[1])
			if err != nil || pos < 1 {
				return fmt.Errorf("invalid position %q: want a number starting at 1", args[1])
			}
			return a.withBoard(cmd.Context(), func(ctrl *controller.Controller) error {
				card, ok := ctrl.CardAt(col, pos-1)
				if !ok {
					return fmt.Errorf("%s has no card at position %d", col.Title(), pos)
				}
				if _, err := ctrl.DeleteCard(cmd.Context(), card.ID); err != nil {
					return err
				}
				success(a.stdout, "Deleted %q from %s", card.Label, col.Title())
				return nil
			})
		},
	}
}

func newClearCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove the stored board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := a.openStore()
			if err != nil {
				return err
			}
			defer a.closeStore(st)
			if err := st.Clear(cmd.Context()); err != nil {
				return err
			}
			success(a.stdout, "Board cleared")
			return nil
		},
	}
}

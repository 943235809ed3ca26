package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/nibzard/kanban-go/internal/board"
	"github.com/nibzard/kanban-go/internal/controller"
)

// resolveFormat picks the explicit format, else guesses from path.
func resolveFormat(name, path string) (board.Format, error) {
	if name != "" {
		return board.ParseFormat(name)
	}
	if path == "" || path == "-" {
		return board.FormatJSON, nil
	}
	return board.FormatFromPath(path), nil
}

func newExportCommand(a *app) *cobra.Command {
	var format, output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the board to stdout or a file",
		Long: `Write the board as JSON, YAML or TOML.

Without --format the format follows the output file extension, or JSON
when writing to stdout.`,
		Example: "  kanban export --format yaml -o board.yaml",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := resolveFormat(format, output)
			if err != nil {
				return err
			}
			return a.withBoard(cmd.Context(), func(ctrl *controller.Controller) error {
				s := ctrl.Serialize()
				data, err := board.Marshal(s, f)
				if err != nil {
					return fmt.Errorf("encoding %s: %w", f, err)
				}
				if output == "" || output == "-" {
					_, err = a.stdout.Write(data)
					return err
				}
				if err := os.WriteFile(output, data, 0644); err != nil {
					return fmt.Errorf("writing %s: %w", output, err)
				}
				success(a.stderr, "Exported %d cards to %s", s.Len(), output)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "Output format: json, yaml or toml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	return cmd
}

func newImportCommand(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the board with the contents of a file",
		Long: `Replace the board with a JSON, YAML or TOML snapshot.

The file must have the same shape as the stored board: "todo",
"inProgress" and "done" lists of strings. Missing lists are empty.
Use - to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			f, err := resolveFormat(format, path)
			if err != nil {
				return err
			}
			data, err := a.readInput(path)
			if err != nil {
				return err
			}
			s, err := board.Unmarshal(data, f)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}
			return a.withBoard(cmd.Context(), func(ctrl *controller.Controller) error {
				if old := ctrl.Board().Len(); old > 0 {
					warning(a.stderr, "Replacing %d existing cards", old)
				}
				if err := ctrl.ReplaceBoard(cmd.Context(), s); err != nil {
					return err
				}
				success(a.stdout, "Imported %d cards", s.Len())
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "Input format: json, yaml or toml (default from extension)")
	return cmd
}

func (a *app) readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(a.stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

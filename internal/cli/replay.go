package cli

import (
	"fmt"
	"io"
	"os"

	"slipbox/internal/format"
	"slipbox/internal/replay"

	"github.com/spf13/cobra"
)

func newReplayCmd(app *App) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "replay [file]",
		Short: "Apply a recorded gesture stream to a seeded outline (stdin by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return writeErr(cmd, err)
				}
				defer f.Close()
				in = f
			}
			gestures, err := replay.Parse(in)
			if err != nil {
				return writeErr(cmd, err)
			}

			ctrl, seed, err := app.controller()
			if err != nil {
				return writeErr(cmd, err)
			}
			rep, err := replay.Run(ctrl, gestures, replay.Options{Strict: strict, Log: app.logger()})
			if err != nil {
				return writeErr(cmd, err)
			}

			text := textFunc(func(w io.Writer) error {
				if err := app.outlineText(format.ItemRows(rep.Items)).WriteText(w); err != nil {
					return err
				}
				for _, f := range rep.Skipped {
					if _, err := fmt.Fprintf(w, "# skipped line %d (%s): %s\n", f.Gesture.Line, f.Gesture, f.Err); err != nil {
						return err
					}
				}
				return nil
			})
			return writeOut(cmd, app, map[string]any{
				"seed":    seed,
				"applied": rep.Applied,
				"skipped": rep.Skipped,
				"items":   rep.Items,
			}, text)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Stop at the first gesture that cannot be applied")
	return cmd
}

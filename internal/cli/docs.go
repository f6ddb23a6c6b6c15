package cli

import (
	"fmt"
	"io"

	"slipbox/internal/docs"

	"github.com/spf13/cobra"
)

func newDocsCmd(app *App) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "docs [topic]",
		Short: "Show built-in documentation",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				index := docs.Index()
				return writeOut(cmd, app, map[string]any{"topics": index}, textFunc(func(w io.Writer) error {
					for _, t := range index {
						if _, err := fmt.Fprintf(w, "%-12s %s\n", t.Name, t.Title); err != nil {
							return err
						}
					}
					return nil
				}))
			}

			topic := args[0]
			body, ok := docs.Get(topic)
			if !ok {
				return writeErr(cmd, fmt.Errorf("unknown docs topic: %q (run `slipbox docs` to list topics)", topic))
			}
			if raw || app.Format == "text" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), body)
				return err
			}
			return writeOut(cmd, app, map[string]any{"topic": topic, "markdown": body}, nil)
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown (no envelope)")
	return cmd
}

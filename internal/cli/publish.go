package cli

import (
	"fmt"

	"slipbox/internal/publish"

	"github.com/spf13/cobra"
)

func newPublishCmd(app *App) *cobra.Command {
	var (
		title     string
		addresses bool
	)

	cmd := &cobra.Command{
		Use:   "publish [key]",
		Short: "Render the outline (or one subtree) as markdown",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, seed, err := app.seeded()
			if err != nil {
				return writeErr(cmd, err)
			}
			opt := publish.RenderOptions{Title: title, Addresses: addresses}

			var md string
			if len(args) == 1 {
				md, err = publish.RenderSubtreeMarkdown(s, args[0], opt)
				if err != nil {
					return writeErr(cmd, err)
				}
			} else {
				if opt.Title == "" {
					opt.Title = fmt.Sprintf("%d items (seed %d)", s.Len(), seed)
				}
				md = publish.RenderOutlineMarkdown(s.Items(), opt)
			}

			if app.Format == "text" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), md)
				return err
			}
			return writeOut(cmd, app, map[string]any{"seed": seed, "markdown": md}, nil)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Document heading (default: item count and seed, or the subtree root label)")
	cmd.Flags().BoolVar(&addresses, "addresses", true, "Prefix bullets with item addresses")
	return cmd
}

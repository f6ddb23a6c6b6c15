package cli

import (
	"fmt"
	"io"

	"slipbox/internal/format"
	"slipbox/internal/model"
	"slipbox/internal/store"

	"github.com/spf13/cobra"
)

func (app *App) outlineText(rows []model.Row) format.Texter {
	return format.Outline{Rows: rows, Display: app.display(), Indent: app.Indent}
}

func newGenerateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Print a seeded random outline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, seed, err := app.seeded()
			if err != nil {
				return writeErr(cmd, err)
			}
			items := s.Items()
			return writeOut(cmd, app, map[string]any{
				"seed":      seed,
				"weighting": app.Weighting,
				"items":     items,
			}, app.outlineText(format.ItemRows(items)))
		},
	}
}

func newSpanCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "span <key>",
		Short: "Show the subtree rooted at an item (half-open index range)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := app.seeded()
			if err != nil {
				return writeErr(cmd, err)
			}
			start, end, ok := s.SubtreeSpan(args[0])
			if !ok {
				return writeErr(cmd, store.NotFoundError{Kind: "item", Key: args[0]})
			}
			depth, _ := s.Depth(args[0])
			items := s.Items()[start:end]
			return writeOut(cmd, app, map[string]any{
				"key":   args[0],
				"start": start,
				"end":   end,
				"depth": depth,
				"items": items,
			}, app.outlineText(format.ItemRows(items)))
		},
	}
}

func newZonesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "zones <dragged> <hover>",
		Short: "List the drop zones offered while dragging one item over another",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := app.seeded()
			if err != nil {
				return writeErr(cmd, err)
			}
			zones, insertAt, ok := s.DropZones(args[0], args[1])
			if zones == nil {
				zones = []model.DropZone{}
			}
			data := map[string]any{
				"dragged":  args[0],
				"hover":    args[1],
				"ok":       ok,
				"insertAt": insertAt,
				"zones":    zones,
			}
			if !ok {
				return writeOut(cmd, app, data, textFunc(func(w io.Writer) error {
					_, err := fmt.Fprintf(w, "no drop zones for %s over %s\n", args[0], args[1])
					return err
				}))
			}
			return writeOut(cmd, app, data, app.outlineText(s.Rows(zones, insertAt)))
		},
	}
}

func newMoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "move <dragged> <hover> <drop>",
		Short: "Apply one drag gesture and print the resulting outline",
		Long: `Apply one drag gesture: pick up <dragged>, hover <hover>, drop into <drop>.

<drop> is a zone key as listed by "slipbox zones" (e.g. 7+child, 7+2) or the
zone's address.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, _, err := app.controller()
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := ctrl.Apply(args[0], args[1], args[2]); err != nil {
				return writeErr(cmd, err)
			}
			s := ctrl.Store()
			moved, _ := s.Item(args[0])
			items := s.Items()
			return writeOut(cmd, app, map[string]any{
				"moved": moved,
				"items": items,
			}, app.outlineText(format.ItemRows(items)))
		},
	}
}

func newFrontCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "front <key>",
		Short: "Move an item's subtree to the front of the outline (address 1)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, _, err := app.controller()
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := ctrl.MoveFirst(args[0]); err != nil {
				return writeErr(cmd, err)
			}
			s := ctrl.Store()
			moved, _ := s.Item(args[0])
			items := s.Items()
			return writeOut(cmd, app, map[string]any{
				"moved": moved,
				"items": items,
			}, app.outlineText(format.ItemRows(items)))
		},
	}
}

package cli

import (
	"fmt"
	"io"

	"slipbox/internal/address"

	"github.com/spf13/cobra"
)

type codecRow struct {
	Path    address.Path `json:"path"`
	Address string       `json:"address"`
}

func codecText(rows []codecRow) textFunc {
	return func(w io.Writer) error {
		for _, r := range rows {
			if _, err := fmt.Fprintf(w, "%s\t%s\n", r.Path, r.Address); err != nil {
				return err
			}
		}
		return nil
	}
}

func newEncodeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "encode <path>...",
		Short: "Encode dotted structural paths (e.g. 2.3.12) as addresses",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([]codecRow, 0, len(args))
			for _, a := range args {
				p, err := address.ParsePath(a)
				if err != nil {
					return writeErr(cmd, err)
				}
				rows = append(rows, codecRow{Path: p, Address: address.Encode(p)})
			}
			return writeOut(cmd, app, rows, codecText(rows))
		},
	}
}

func newDecodeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <address>...",
		Short: "Decode addresses (e.g. 2c12) into structural paths",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([]codecRow, 0, len(args))
			for _, a := range args {
				p, err := address.Decode(a)
				if err != nil {
					return writeErr(cmd, err)
				}
				rows = append(rows, codecRow{Path: p, Address: a})
			}
			return writeOut(cmd, app, rows, codecText(rows))
		},
	}
}

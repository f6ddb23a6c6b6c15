package cli

import (
	"errors"
	"fmt"
	"os"

	"slipbox/internal/config"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the user config file",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective config (file over defaults)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path()
			if err != nil {
				return writeErr(cmd, err)
			}
			if app.Format == "text" {
				b, err := yaml.Marshal(app.cfg)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(b)
				return err
			}
			return writeOut(cmd, app, map[string]any{"path": path, "config": app.cfg}, nil)
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with default values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path()
			if err != nil {
				return writeErr(cmd, err)
			}
			if _, err := os.Stat(path); err == nil && !force {
				return writeErr(cmd, fmt.Errorf("%s already exists (use --force to overwrite)", path))
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return writeErr(cmd, err)
			}
			if err := config.Save(config.Default()); err != nil {
				return writeErr(cmd, err)
			}
			app.logger().Info("config written", "path", path)
			return writeOut(cmd, app, map[string]any{"path": path}, nil)
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	cmd.AddCommand(initCmd)

	return cmd
}

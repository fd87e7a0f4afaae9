package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/teranos/lerp/config"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a lerpgen.toml holding the current settings",
		Long: `Write lerpgen.toml in dir (default: the current directory).

The file records the settings in effect: defaults, any lerpgen.toml further up,
LERPGEN_* environment variables and the flags given here. For example

  lerpgen init --param float32 --method Mix

makes every lerpgen run below dir generate Mix(other T, t float32) T.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := packageDir(args)
			cfg, _, err := loadConfig(cmd, dir)
			if err != nil {
				return err
			}
			force, _ := cmd.Flags().GetBool("force")

			path := filepath.Join(dir, config.FileName)
			if err := config.Save(path, cfg, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolP("force", "f", false, "Replace an existing lerpgen.toml")
	return cmd
}

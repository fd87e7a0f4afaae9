package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/teranos/lerp/errors"
	"github.com/teranos/lerp/logger"
	"github.com/teranos/lerp/watch"
)

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [dir]",
		Short: "Regenerate Lerp methods whenever the package changes",
		Long: `Generate once, then again after every change to a Go file or lerpgen.toml
in dir. Settings are reread on every run. Stop with Ctrl-C.

Failures are printed and watching continues.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runWatch,
	}
	cmd.Flags().Duration("debounce", watch.DefaultDebounce, "Quiet period after a change before regenerating")
	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	dir := packageDir(args)
	cfg, _, err := loadConfig(cmd, dir)
	if err != nil {
		return err
	}
	initLogging(cmd, cfg)
	defer logger.Cleanup()
	log := logger.ComponentLogger("lerpgen")

	debounce, _ := cmd.Flags().GetDuration("debounce")
	w, err := watch.New(dir, debounce)
	if err != nil {
		return err
	}
	defer w.Close()

	regenerate := func() {
		if err := runOnce(cmd, dir, w); err != nil && !errors.Is(err, errors.ErrGenerationFailed) {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	regenerate()
	log.Infow("watching for changes", logger.FieldPackage, dir)
	return w.Run(ctx, regenerate)
}

// runOnce generates and writes dir's Lerp methods with freshly loaded settings.
func runOnce(cmd *cobra.Command, dir string, w *watch.Watcher) error {
	cfg, _, err := loadConfig(cmd, dir)
	if err != nil {
		return err
	}
	g, err := generate(cmd, dir, cfg)
	if err != nil {
		return err
	}
	if g.path != "-" {
		w.Ignore(g.path)
	}
	if err := write(cmd, g); err != nil {
		return err
	}
	return g.failed()
}

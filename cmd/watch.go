package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/TFMV/treewalk/internal/walk"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	// Watch command options
	watchDebounce time.Duration
	watchTimeout  time.Duration
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch [options] <path>",
	Short: "Walk again whenever the tree changes",
	Long: `Walk a directory tree once, then walk it again each time something
under it is created, modified, removed or renamed. Every run is a complete
walk with the same rules as the root command.

Examples:
  treewalk watch /path/to/watch
  treewalk watch --exclude-name="\.tmp$" --format="{base}" /path/to/watch
  treewalk watch --debounce=1s --timeout=10m /path/to/watch`,
	Args: pathArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWatch(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", walk.DefaultDebounce, "Quiet period before walking again")
	watchCmd.Flags().DurationVar(&watchTimeout, "timeout", 0, "Duration to watch before exiting (e.g., 1h, 30m)")
}

func runWatch(cmd *cobra.Command, root string) error {
	cfg := configFromViper(viper.GetViper())

	logger := walk.NewLogger(cfg.LogLevel())
	defer logger.Sync()

	w, err := buildWalker(root, cfg, cmd.OutOrStdout(), logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if !cfg.Silent {
		fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s for changes...\n", root)
		fmt.Fprintln(cmd.ErrOrStderr(), "Press Ctrl+C to exit.")
	}

	return walk.Watch(ctx, w, walk.WatchOptions{
		Debounce: watchDebounce,
		Timeout:  watchTimeout,
		Logger:   logger,
		OnWalk: func(run int, err error) {
			if err == nil {
				logger.Debug("walk finished", zap.Int("run", run))
			}
		},
	})
}

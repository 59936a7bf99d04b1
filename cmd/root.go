package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/TFMV/treewalk/internal/match"
	"github.com/TFMV/treewalk/internal/walk"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	cfgFile string
	version = "0.1.0"
)

// Exit codes for argument problems.
const (
	ExitMissingPath  = 2
	ExitNotDirectory = 3
)

// ExitError carries the process exit code for an error.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }
func (e *ExitError) Unwrap() error { return e.Err }

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "treewalk [options] <path>",
	Short: "Walk a directory tree and act on matching files",
	Long: `treewalk walks a directory tree down to a bounded depth and prints
(or formats, or executes a command for) every file admitted by its rules.

Examples:
  treewalk /path/to/search
  treewalk --max-depth=2 --exclude-name="main.*" /path/to/search
  treewalk --exclude-parent=SCANS --exclude-format=image/png /data
  treewalk --format="{base} in {dir}" /path/to/search
  treewalk --exec="wc -l {}" --include-name="\.go$" .`,
	Version: version,
	Args:    pathArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWalk(args[0], cmd.OutOrStdout())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.treewalk.yaml)")

	flags := rootCmd.PersistentFlags()
	flags.Int("min-depth", 0, "Minimum depth at which files are reported")
	flags.Int("max-depth", 4, "Maximum depth to descend (exclusive, -1 for unlimited)")
	flags.StringSlice("exclude-name", []string{}, "Skip files whose name matches this regex")
	flags.StringSlice("include-name", []string{}, "Only report files whose name matches this regex")
	flags.StringSlice("exclude-format", []string{}, "Skip files sniffed as this media type (e.g. image/png)")
	flags.StringSlice("include-format", []string{}, "Only report files sniffed as this media type")
	flags.StringSlice("exclude-parent", []string{}, "Stop listing a directory at the first entry with an ancestor matching this regex")
	flags.StringSlice("include-parent", []string{}, "Only report files with an ancestor matching this regex")
	flags.String("format", "", "Output template ({}, {base}, {dir}, {ext})")
	flags.String("exec", "", "Command template to run for each file")
	flags.BoolP("verbose", "v", false, "Enable verbose logging")
	flags.Bool("silent", false, "Disable all output except errors")

	for _, name := range []string{
		"min-depth", "max-depth",
		"exclude-name", "include-name",
		"exclude-format", "include-format",
		"exclude-parent", "include-parent",
		"format", "exec", "verbose", "silent",
	} {
		viper.BindPFlag(name, flags.Lookup(name))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigType("yaml")
		viper.SetConfigName(".treewalk")
	}

	viper.SetEnvPrefix("treewalk")
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// pathArg requires exactly one argument naming an existing directory.
func pathArg(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return &ExitError{Code: ExitMissingPath, Err: errors.New("missing \"path\"")}
	}
	if len(args) > 1 {
		return &ExitError{Code: ExitMissingPath, Err: fmt.Errorf("accepts 1 arg, received %d", len(args))}
	}
	if err := walk.CheckRoot(args[0]); err != nil {
		return &ExitError{Code: ExitNotDirectory, Err: err}
	}
	return nil
}

func runWalk(root string, out io.Writer) error {
	cfg := configFromViper(viper.GetViper())

	logger := walk.NewLogger(cfg.LogLevel())
	defer logger.Sync()

	w, err := buildWalker(root, cfg, out, logger)
	if err != nil {
		return err
	}
	return w.Walk()
}

// buildWalker configures a Walker for root from cfg. Admitted files are
// printed, formatted or passed to a command depending on cfg.
func buildWalker(root string, cfg Config, out io.Writer, logger *zap.Logger) (*walk.Walker, error) {
	w := walk.New(root).
		WithLogger(logger).
		WithMinDepth(cfg.MinDepth).
		WithMaxDepth(cfg.MaxDepth)

	predicates, err := cfg.predicates(match.New(nil))
	if err != nil {
		return nil, err
	}
	for _, p := range predicates {
		w.WithPredicate(p)
	}

	switch {
	case cfg.Exec != "":
		w.WithCallback(walk.ExecAction(cfg.Exec, logger, out))
	case cfg.Silent:
		// nothing to print
	case cfg.Format != "":
		w.WithCallback(walk.FormatAction(out, cfg.Format))
	default:
		w.WithCallback(walk.PrintAction(out))
	}
	return w, nil
}

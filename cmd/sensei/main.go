// Command sensei is an interactive tutorial for writing syntax analyzers: it
// checks a student's analyzer source against the expected sequence of
// constructs and reports the single next step after every change.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"sensei/internal/catalog"
	"sensei/internal/exercise"
	"sensei/internal/tutor"
)

var verbose bool

func main() {
	root := &cobra.Command{
		Use:           "sensei",
		Short:         "An interactive analyzer-writing tutorial",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newCheckCmd(),
		newWatchCmd(),
		newInitCmd(),
		newListCmd(),
		newRemoveCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "sensei: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds the CLI logger: console encoding, warnings only unless
// --verbose.
func newLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

// resolveSource maps a command argument to the file to check: an existing
// path is used as-is, anything else is treated as an exercise name.
func resolveSource(arg string) (string, error) {
	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		return arg, nil
	}
	w, err := exercise.Open(arg)
	if err != nil {
		return "", err
	}
	return w.SourcePath(), nil
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file|exercise>",
		Short: "Check an analyzer source once and print the next step",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveSource(args[0])
			if err != nil {
				return err
			}
			res, err := tutor.CheckFile(path)
			if err != nil {
				return err
			}
			r := newRenderer(catalog.MustLoad())
			fmt.Fprint(cmd.OutOrStdout(), r.renderResult(path, res))
			if !res.Complete() {
				os.Exit(2)
			}
			return nil
		},
	}
}

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <file|exercise>",
		Short: "Re-check an analyzer source on every save",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveSource(args[0])
			if err != nil {
				return err
			}
			log := newLogger()
			defer log.Sync()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runWatch(ctx, path, log)
		},
	}
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init <name>",
		Short: "Create a new exercise workspace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := exercise.Init(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created exercise %q\n", w.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "  lesson: %s\n", w.Dir+string(os.PathSeparator)+"exercise.md")
			fmt.Fprintf(cmd.OutOrStdout(), "  edit:   %s\n", w.SourcePath())
			fmt.Fprintf(cmd.OutOrStdout(), "\nrun 'sensei watch %s' and start writing\n", w.Name)
			return nil
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List exercise workspaces and their progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := exercise.List()
			if err != nil {
				return err
			}
			if len(names) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no exercises yet; run 'sensei init <name>'")
				return nil
			}
			r := newRenderer(catalog.MustLoad())
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), r.renderProgress(name))
			}
			return nil
		},
	}
}

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <name>",
		Short: "Delete an exercise workspace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := exercise.Remove(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed exercise %q\n", args[0])
			return nil
		},
	}
}

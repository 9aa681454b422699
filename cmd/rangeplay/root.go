package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"rangeplay/catalog"
	"rangeplay/internal/config"
	"rangeplay/internal/logging"
	"rangeplay/scenario"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

// errScenariosFailed marks a run that completed with failing scenarios.
var errScenariosFailed = errors.New("scenarios failed")

// execute runs the command line against the full catalog and maps the outcome
// to an exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	return executeWith(ctx, catalog.New, args, stdout, stderr)
}

// executeWith is execute over the registry built by newRegistry.
func executeWith(ctx context.Context, newRegistry func() *scenario.Registry, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand(newRegistry, stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errScenariosFailed):
		return exitFailed
	default:
		fmt.Fprintln(stderr, "rangeplay:", err)
		return exitUsage
	}
}

func newRootCommand(newRegistry func() *scenario.Registry, stdout, stderr io.Writer) *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:           "rangeplay",
		Short:         "Run the lazy sequence scenario battery",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "YAML config file")
	root.PersistentFlags().String("log-level", "info", "log level (trace, debug, info, warn, error)")
	root.PersistentFlags().String("log-format", logging.FormatConsole, "log format (console, json)")
	root.PersistentFlags().Bool("no-color", false, "disable colored console output")

	load := func(cmd *cobra.Command) (*config.Config, error) {
		return config.Load(viper.New(), configFile, cmd.Flags())
	}

	run := newRunCommand(newRegistry, load, stderr)
	root.AddCommand(run, newListCommand(newRegistry, stdout))

	// bare "rangeplay" behaves like "rangeplay run"
	addRunFlags(root.Flags())
	root.RunE = run.RunE

	return root
}

func newRunCommand(
	newRegistry func() *scenario.Registry,
	load func(*cobra.Command) (*config.Config, error),
	stderr io.Writer,
) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run scenarios and report pass/fail",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load(cmd)
			if err != nil {
				return err
			}
			logger := logging.New(cfg.Log, stderr)

			report, err := newRegistry().Run(cmd.Context(), scenario.RunOptions{
				Filter:   cfg.Filter(),
				FailFast: cfg.FailFast,
				Logger:   logger,
			})
			if err != nil {
				return fmt.Errorf("run scenarios: %w", err)
			}
			if !report.OK() {
				return fmt.Errorf("%w: %d of %d", errScenariosFailed, report.Failed(), len(report.Results))
			}
			return nil
		},
	}
	addRunFlags(cmd.Flags())
	return cmd
}

func addRunFlags(fs *pflag.FlagSet) {
	fs.String("run", "", "only run scenarios whose name matches this regular expression")
	fs.Bool("fail-fast", false, "stop after the first failing scenario")
}

func newListCommand(newRegistry func() *scenario.Registry, stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the registered scenario names",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			for _, name := range newRegistry().Names() {
				if _, err := fmt.Fprintln(stdout, name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/young1lin/pillrow/internal/update"
)

// Options holds the command line flags
type Options struct {
	ConfigPath string
	LogFile    string
	BinPacking bool
	Mode       string
	NoPersist  bool
}

func newRootCmd(deps *AppDependencies) *cobra.Command {
	var opts Options

	rootCmd := &cobra.Command{
		Use:   "pillrow",
		Short: "Lay out pills in rows that fit the terminal",
		Long: `pillrow draws a list of pills (small inline chips) in as few rows as the
terminal allows and keeps the layout in step with the terminal size.

Pills come from the config file and any pill files it lists under sources.
Toggled pills are remembered between runs.`,
		Example: `  # Interactive layout
  pillrow

  # Pack pills into fewer rows, ignoring their order
  pillrow --bin-packing

  # Report the pill block size to an embedding host
  pillrow host -- pillrow report`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), deps, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.ConfigPath, "config", "c", "", "Config file (default .pillrow.yaml, then the user config dir)")
	flags.StringVar(&opts.LogFile, "log-file", "", "Write logs to this file")
	flags.BoolVarP(&opts.BinPacking, "bin-packing", "b", false, "Pack pills into as few rows as possible")
	flags.StringVar(&opts.Mode, "mode", "", "Layout mode: default or bin-packing")
	flags.BoolVar(&opts.NoPersist, "no-persist", false, "Do not load or save toggled pills")

	rootCmd.AddCommand(
		runCmd(deps, &opts),
		reportCmd(deps, &opts),
		hostCmd(deps, &opts),
		versionCmd(deps),
	)
	return rootCmd
}

func runCmd(deps *AppDependencies, opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the interactive layout (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), deps, *opts)
		},
	}
}

func reportCmd(deps *AppDependencies, opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Post the pill block size to the embedding host",
		Long: `report renders the pills at the terminal width and writes a frame size
message to stdout, once at start and again after every terminal resize.

When stdout is a terminal there is no host to report to, so the pills are
printed instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd.Context(), deps, *opts)
		},
	}
}

func hostCmd(deps *AppDependencies, opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "host -- COMMAND [ARGS...]",
		Short: "Embed a command and follow the size it reports",
		Long: `host runs COMMAND with its stdout connected to a frame message bus and
resizes a full-width slot to the height the command reports.`,
		Example: `  pillrow host -- pillrow report`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHost(cmd.Context(), deps, *opts, args)
		},
	}
}

func versionCmd(deps *AppDependencies) *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(deps.Stdout, update.String())
			if !check || deps.UpdateChecker == nil {
				return nil
			}

			release, err := deps.UpdateChecker().CheckNow(cmd.Context())
			if err != nil {
				return fmt.Errorf("update check failed: %w", err)
			}
			if release == nil {
				fmt.Fprintln(deps.Stdout, "pillrow is up to date")
				return nil
			}
			fmt.Fprintf(deps.Stdout, "Update available: %s → %s\n%s\n", update.Version, release.TagName, release.HTMLURL)
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Check for a newer release")
	return cmd
}

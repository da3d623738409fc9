package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/docpost/internal/cli"
)

func newRunCmd() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Clean and rewrite the documentation tree",
		Long:  `Removes the cleanup targets, then trims every Markdown file and demotes headings under the heading directory.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()

			cfg, err := cli.LoadConfig(flags)
			if err != nil {
				return err
			}

			dryRun, _ := flags.GetBool(flagDryRun)
			debug, _ := flags.GetBool(flagDebug)
			quiet, _ := flags.GetBool(flagQuiet)
			verbose, _ := flags.GetBool(flagVerbose)

			return cli.Execute(cmd.Context(), cli.RunOptions{
				Config:  cfg,
				DryRun:  dryRun,
				Debug:   debug,
				Quiet:   quiet,
				Verbose: verbose,
				Stdout:  cmd.OutOrStdout(),
				Stderr:  cmd.ErrOrStderr(),
			})
		},
	}

	addRunFlags(runCmd.Flags())
	return runCmd
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/docpost/internal/cli"
)

func newPreviewCmd() *cobra.Command {
	previewCmd := &cobra.Command{
		Use:   "preview <file>",
		Short: "Show what a Markdown file will look like after a run",
		Long:  `Applies the trim and heading pass to one file in memory and prints the result. The file is not modified.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()

			cfg, err := cli.LoadConfig(flags)
			if err != nil {
				return err
			}
			raw, _ := flags.GetBool(flagRaw)

			return cli.Preview(cli.PreviewOptions{
				Config: cfg,
				Path:   args[0],
				Raw:    raw,
				Stdout: cmd.OutOrStdout(),
			})
		},
	}

	previewCmd.Flags().Bool(flagRaw, false, "Print plain Markdown even on a terminal")
	return previewCmd
}

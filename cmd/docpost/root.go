package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/aretw0/docpost"
	"github.com/aretw0/docpost/internal/cli"
)

const (
	flagDebug   = "debug"
	flagDryRun  = "dry-run"
	flagQuiet   = "quiet"
	flagVerbose = "verbose"
	flagRaw     = "raw"
)

// NewRootCmd builds the docpost command tree. Running it without a
// subcommand behaves like "docpost run".
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "docpost",
		Short: "Post-process generated Markdown documentation",
		Long: `docpost cleans up a tree of generated Markdown docs in place.

It removes the "modules" directory and the top-level "README.md", drops the
first two lines of every ".md" file and demotes headings by one level in
files under a "classes" directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Persistent flags (available to all commands)
	pf := rootCmd.PersistentFlags()
	pf.String(cli.FlagDir, docpost.DefaultRoot, "Documentation directory to process")
	pf.String(cli.FlagConfig, "", "Config file (default .docpost.yaml when present)")
	pf.Int(cli.FlagTrimLines, docpost.DefaultTrimLines, "Leading lines dropped from each file")
	pf.String(cli.FlagHeadingDir, docpost.DefaultHeadingDir, "Directory name whose files get headings demoted (empty disables)")
	pf.String(cli.FlagLogLevel, "", "Log level: error, warn, info, debug")
	pf.String(cli.FlagLogFormat, "text", "Log format: text or json")
	pf.Bool(flagDebug, false, "Enable debug logging to stderr")

	runCmd := newRunCmd()
	rootCmd.AddCommand(runCmd, newPreviewCmd(), newVersionCmd())

	addRunFlags(rootCmd.Flags())
	rootCmd.RunE = runCmd.RunE

	return rootCmd
}

func addRunFlags(fs *pflag.FlagSet) {
	fs.Bool(flagDryRun, false, "Report what would change without touching the tree")
	fs.BoolP(flagQuiet, "q", false, "Do not print the summary")
	fs.BoolP(flagVerbose, "v", false, "Print one line per removed path and processed file")
	fs.String(cli.FlagMetricsFile, "", "Write Prometheus textfile metrics to this path")
}

package main

import (
	"errors"

	"github.com/spf13/cobra"
)

// errProblemsFound makes the process exit 1 after problems were reported.
var errProblemsFound = errors.New("problems found")

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "fluidcss",
		Short: "Responsive CSS generator for fluid values between breakpoints",
		Long: `Generate CSS that interpolates a length property linearly between
viewport breakpoints, using calc(), clamp(), min(), max() and min-width
media queries.`,
		// Without a subcommand, build the configured breakpoint sheets.
		// PreRunE of the build command is not triggered when delegating,
		// so configuration is loaded here.
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}
			return runBuild(cmd)
		},
		// Commands that load configuration replace this logger once the
		// file and environment are known.
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			quiet, _ := cmd.Flags().GetBool("quiet")
			attachLogger(cmd, verbose, quiet)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global persistent flags (inherited by all subcommands)
	pf := root.PersistentFlags()
	pf.BoolP("verbose", "v", false, "Enable verbose logging")
	pf.Bool("quiet", false, "Suppress all output (exit code only)")
	pf.String("media", "screen", `Media type for min-width queries ("none" for bare queries)`)
	pf.Bool("color", false, "Force color output")
	pf.String("config", ".fluidcss.yaml", "Config file path")

	addBuildFlags(root)

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newLerpCmd())
	root.AddCommand(newBuildCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newCompletionCmd())
	root.AddCommand(newVersionCmd())

	return root
}

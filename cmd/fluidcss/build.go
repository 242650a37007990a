package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/fluidcss/internal/sheet"
)

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a stylesheet from breakpoint sheets",
		Long: `Load every YAML and TOML breakpoint sheet under the source directory and
write one generated stylesheet. Files ignored by .gitignore are skipped.`,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBuild(cmd)
		},
	}

	addBuildFlags(cmd)

	return cmd
}

// addBuildFlags registers the build flags. The root command carries them too
// because it builds when run without a subcommand.
func addBuildFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("source", "styles/fluid", "Directory containing breakpoint sheets")
	f.StringSlice("include", nil, "Glob patterns for sheets to include")
	f.String("output-dir", "styles", "Output directory for the generated stylesheet")
	f.String("output-file", sheet.DefaultOutputFile, "Generated stylesheet name")
	f.Bool("comments", false, "Keep the interpolation comment above each rule")
	f.Bool("verify", true, "Check the emitted CSS with a CSS lexer")
	f.Bool("dry-run", false, "Print the stylesheet instead of writing it")
	f.Bool("print-lines", true, "Show source lines with diagnostics")
}

// runBuild is shared between `fluidcss build` and the bare root command.
func runBuild(cmd *cobra.Command) error {
	logger := loggerFromContext(cmd.Context())
	config := buildBuildConfig(logger)

	result, err := sheet.Build(config)
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	// A dry run prints the stylesheet, so the report moves to stderr.
	out := cmd.OutOrStdout()
	if config.DryRun {
		fmt.Fprint(out, result.CSS)
		out = cmd.ErrOrStderr()
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	if !quiet {
		reporter := sheet.NewReporter(out,
			getBoolWithFallback("color", "color", false),
			getBoolWithFallback("print-lines", "build.print-lines", true))
		reporter.PrintWarnings(result.Warnings)
		reporter.PrintIssues(result.Issues)
		reporter.PrintDiagnostics(result.Diagnostics)
		reporter.PrintSummary(*result)
	}

	if len(result.Issues) > 0 || len(result.Diagnostics) > 0 {
		return errProblemsFound
	}
	return nil
}

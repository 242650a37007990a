package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/fluidcss"
	"github.com/yacobolo/fluidcss/internal/sheet"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate [viewport:value ...]",
		Aliases: []string{"gen"},
		Short:   "Generate fluid CSS for one property",
		Long: `Interpolate a property between breakpoints given as viewport:value pairs,
e.g. "fluidcss generate -p font-size 320:16 768:20 1280:24".

Validation problems are reported in the output the same way an editor would
show them: as a CSS comment naming the problem. Use --strict to also exit 1.`,
		Example: `  fluidcss generate --property width -b 0:10 -b 100:50
  fluidcss generate -p margin 320:8,1280:24 --output-format json`,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadConfig(cmd)
		},
		RunE: runGenerate,
	}

	f := cmd.Flags()
	f.StringP("property", "p", "", "CSS property to interpolate")
	f.StringSliceP("breakpoint", "b", nil, "Breakpoint as viewport:value (repeatable)")
	f.String("output-format", "", "Output format: css|json|markdown (default: css)")
	f.Bool("no-comment", false, "Omit the explanatory comment")
	f.Bool("strict", false, "Exit 1 when no CSS could be generated")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger := loggerFromContext(cmd.Context())

	property, _ := cmd.Flags().GetString("property")
	tokens, _ := cmd.Flags().GetStringSlice("breakpoint")
	tokens = append(tokens, args...)

	var breakpoints []fluidcss.Breakpoint
	for _, token := range tokens {
		parsed, err := sheet.ParseBreakpoints(token)
		if err != nil {
			return err
		}
		breakpoints = append(breakpoints, parsed...)
	}
	logger.Debug("generating", "property", property, "breakpoints", len(breakpoints))

	opts := buildGenerateOptions()
	format := fluidcss.DetermineOutputFormat(
		getStringWithFallback("output-format", "generate.output-format", string(fluidcss.OutputCSS)))

	if err := fluidcss.WriteOutput(cmd.OutOrStdout(), property, breakpoints, format, opts); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if !getBoolWithFallback("strict", "generate.strict", false) {
		return nil
	}

	_, err := fluidcss.GenerateWithOptions(property, breakpoints, opts)
	var failure *fluidcss.GenerationFailure
	if errors.As(err, &failure) {
		logger.Error("generation failed", "reason", failure.Reason.Code(), "err", failure)
		return errProblemsFound
	}
	return err
}

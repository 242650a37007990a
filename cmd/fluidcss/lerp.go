package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/fluidcss"
	"github.com/yacobolo/fluidcss/internal/sheet"
)

func newLerpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lerp FROM TO",
		Short: "Print the expression interpolating between two breakpoints",
		Long: `Print a single calc(), clamp(), min() or max() expression interpolating
between two viewport:value breakpoints.`,
		Example: `  fluidcss lerp 320:16 1280:24 --clamp both`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := sheet.ParseBreakpoint(args[0])
			if err != nil {
				return err
			}
			target, err := sheet.ParseBreakpoint(args[1])
			if err != nil {
				return err
			}

			clampFlag, _ := cmd.Flags().GetString("clamp")
			mode, err := fluidcss.ParseClampMode(clampFlag)
			if err != nil {
				return err
			}

			value, err := fluidcss.Lerp(source, target, mode)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}

	cmd.Flags().String("clamp", "none", "Clamp to the segment's values: none|from|to|both")

	return cmd
}

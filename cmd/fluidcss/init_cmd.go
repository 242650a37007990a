package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a default .fluidcss.yaml config file",
		Long:  `Create a .fluidcss.yaml configuration file in the current directory with sensible defaults.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, _ := cmd.Flags().GetBool("force")

			if _, err := os.Stat(".fluidcss.yaml"); err == nil && !force {
				return fmt.Errorf(".fluidcss.yaml already exists (use --force to overwrite)")
			}

			if err := os.WriteFile(".fluidcss.yaml", []byte(defaultConfig), 0644); err != nil {
				return fmt.Errorf("writing config file: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Created .fluidcss.yaml")
			return nil
		},
	}

	cmd.Flags().Bool("force", false, "Overwrite existing config file")

	return cmd
}

const defaultConfig = `# fluidcss configuration
# Docs: https://github.com/yacobolo/fluidcss

# Shared settings
verbose: false
media: screen              # media type for min-width queries, none = bare queries

# Single property generation
generate:
  output-format: css       # css | json | markdown
  no-comment: false
  strict: false

# Stylesheet builds from breakpoint sheets
build:
  source: styles/fluid
  include:
    - "**/*.yaml"
    - "**/*.yml"
    - "**/*.toml"
  output-dir: styles
  output-file: fluid.gen.css
  comments: false
  verify: true
  print-lines: true
`

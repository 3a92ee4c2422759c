package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snack-runner/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default runner configuration",
	Long: `Print the built-in runner configuration as YAML.

Save it to ~/.snackrunner/configs/runner.yaml and edit it, or pass a copy
with --config. TOML files with the same keys are accepted too.

Examples:
  snackrunner config > ~/.snackrunner/configs/runner.yaml`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	},
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-threes/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Resolve the configuration the way play does and print it as YAML.

Search order: --config, ~/.threes/config.yaml, ./configs/threes.yaml,
then the built-in defaults. --difficulty is applied on top.
With --defaults the commented built-in file is printed as is, which is a
good starting point for a custom config.

Examples:
  threes config
  threes config --defaults > ~/.threes/config.yaml
  threes config --difficulty hard > ~/.threes/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var flagConfigDefaults bool

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in default file instead")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagConfigDefaults {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	logger, err := newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

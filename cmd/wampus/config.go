package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/wampus-world/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would use, after the config file search
and flag overrides, as YAML.

Search order:
  --config <path>
  ~/.wampus/config.yaml
  ./configs/wampus.yaml
  built-in defaults

Example:
  wampus config > ~/.wampus/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

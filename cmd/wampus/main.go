// wampus is Extended Wampus World: find the gold on a 10×10 board, dodge the
// pits, and bring the gold home before the Wampus finds you.
//
// Usage:
//
//	wampus                   - Play in the terminal (same as "wampus play")
//	wampus play --window     - Play in a 600×600 window
//	wampus serve             - Start SSH server for remote play
//	wampus config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: from config, 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--config <path>  - Use a specific config file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/wampus-world/internal/config"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wampus",
	Short: "Extended Wampus World - a tiny grid adventure",
	Long: `Extended Wampus World puts you on a 10×10 board with five pits,
a pile of gold, and a Wampus that wanders at random.

Collect the gold and return to the top-left corner to win. You have one arrow:
it kills the Wampus anywhere on your row or column.

Available commands:
  play     - Play the game (default)
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  wampus
  wampus play --window
  wampus play --seed 42
  wampus serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the config file and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagFPS > 0 {
		cfg.Timing.TickRate = flagFPS
	}
	return cfg, nil
}

// newLogger builds the charm logger used for game notifications.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "wampus",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

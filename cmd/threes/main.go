// threes is a terminal Threes puzzle.
//
// Usage:
//
//	threes play              - Play interactively
//	threes sim <moves>       - Replay a move string headless and print the board
//	threes config            - Print the effective configuration as YAML
//
// Global flags:
//
//	--seed <value>        - RNG seed for reproducible games (env THREES_SEED)
//	--config <path>       - Custom config YAML (env THREES_CONFIG)
//	--difficulty <name>   - easy, normal or hard (env THREES_DIFFICULTY)
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Where play writes its log
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-threes/internal/config"
)

var (
	// Global flags
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	_ = godotenv.Load(".env")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "threes",
	Short: "Threes - slide and merge numbered tiles in your terminal",
	Long: `Threes is a sliding tile puzzle. Every move shifts the board one
step; a 1 and a 2 make a 3, and equal tiles from 3 up double.

Available commands:
  play     - Play interactively
  sim      - Replay a move string without a terminal UI
  config   - Print the effective configuration

Examples:
  threes play
  threes play --difficulty hard --seed 42
  threes sim --seed 7 "LLURDB"
  threes config --config ./my-threes.yaml`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: applyEnv,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for play (default: no log)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// applyEnv fills flags the user did not set from THREES_* variables.
func applyEnv(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()

	if v := os.Getenv("THREES_SEED"); v != "" && !flags.Changed("seed") {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("THREES_SEED: %w", err)
		}
		flagSeed = seed
	}
	if v := os.Getenv("THREES_CONFIG"); v != "" && !flags.Changed("config") {
		flagConfig = v
	}
	if v := os.Getenv("THREES_DIFFICULTY"); v != "" && !flags.Changed("difficulty") {
		flagDifficulty = v
	}
	return nil
}

// newLogger builds a logger writing to w at the --log-level level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "threes",
	})
	logger.SetLevel(level)
	return logger, nil
}

// loadConfig resolves the game config from --config and --difficulty.
func loadConfig(logger *log.Logger) (config.ThreesConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.ThreesConfig{}, err
	}

	cfg, src, err := config.LoadThrees(flagConfig)
	if err != nil {
		return config.ThreesConfig{}, err
	}
	config.ApplyThreesPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.ThreesConfig{}, err
	}

	logger.Debug("config loaded", "source", src, "difficulty", preset, "bias", cfg.Tile.Bias)
	return cfg, nil
}

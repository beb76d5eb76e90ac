// pong is a two-paddle bouncing-ball game for the terminal.
//
// Usage:
//
//	pong play              - Play against the CPU or a second local player
//	pong serve             - Start SSH server for remote play
//	pong sim               - Run the simulation headless
//	pong scores            - Show recorded sessions
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--db <path>           - Set database path (default: ~/.pong/pong.db)
//	--config <path>       - Use a custom pong YAML config
//	--difficulty <name>   - Apply a difficulty preset (easy, normal, hard)
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong - a bouncing-ball duel in your terminal",
	Long: `Pong draws a small monochrome table in braille characters and plays
a ball between two paddles. Play the CPU, a friend on the same keyboard,
or serve tables over SSH.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  sim      - Run the simulation without a terminal UI
  scores   - View recorded sessions

Examples:
  pong play
  pong play --players 2 --difficulty easy
  pong serve --ssh :2222
  pong sim --frames 600 --input uuu...ddd --dump
  pong scores --interactive`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pong/pong.db", "Path to sessions database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom pong config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
}

// loadConfig loads the pong config and applies the difficulty preset.
func loadConfig() (config.PongConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.PongConfig{}, err
	}
	cfg, err := config.LoadPong(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyPongPreset(&cfg, preset)
	return cfg, cfg.Validate()
}

// runtimeConfig builds the runtime settings from global flags.
func runtimeConfig(players int) (core.RuntimeConfig, error) {
	if flagFPS <= 0 || flagFPS > 240 {
		return core.RuntimeConfig{}, fmt.Errorf("--fps must be between 1 and 240, got %d", flagFPS)
	}
	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Players = players
	return rt, nil
}

// newLogger creates a logger writing to --log-file, or to fallback when no
// file is given. The returned closer releases the file.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out, closer := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closer = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

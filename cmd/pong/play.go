package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var flagPlayers int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play pong in this terminal",
	Long: `Start a table in this terminal.

Controls (one player, right paddle is the CPU):
  W/Up       - Paddle up
  S/Down     - Paddle down

Controls (two players):
  W/S        - Left paddle
  Up/Down    - Right paddle

  P/Esc      - Pause
  Ctrl+S     - Save a screenshot to ~/.pong/screenshots
  ?          - More keys
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Tall, slow paddles
  normal - The classic table
  hard   - Short, fast paddles (the CPU gets faster too)

Examples:
  pong play
  pong play --players 2
  pong play --difficulty hard --fps 60
  pong play --config ./my-pong.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagPlayers, "players", 1, "Human players: 1 plays the CPU, 2 share the keyboard")
}

// fieldSize returns the terminal size a table needs: the braille field,
// its border, a header, a status line and the help footer.
func fieldSize(cfg config.PongConfig) (width, height int) {
	cols := (cfg.Field.Width + core.BrailleCellW - 1) / core.BrailleCellW
	rows := (cfg.Field.Height + core.BrailleCellH - 1) / core.BrailleCellH
	return cols + 2, rows + 5
}

func runPlay(_ *cobra.Command, _ []string) error {
	if flagPlayers != 1 && flagPlayers != 2 {
		return fmt.Errorf("--players must be 1 or 2, got %d", flagPlayers)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	rt, err := runtimeConfig(flagPlayers)
	if err != nil {
		return err
	}

	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		needW, needH := fieldSize(cfg)
		if w < needW || h < needH {
			return fmt.Errorf("terminal is %dx%d, the table needs at least %dx%d", w, h, needW, needH)
		}
	}

	// Stdout belongs to the renderer, so logs only go to a file.
	logger, closeLog, err := newLogger(io.Discard, "pong")
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open sessions database: %v\n", err)
		logger.Warn("could not open sessions database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(tui.Options{
		Pong:    cfg,
		Runtime: rt,
		Store:   store,
		Logger:  logger,
	})

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}

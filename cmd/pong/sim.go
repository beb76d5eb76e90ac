package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/periph"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var (
	flagFrames      int
	flagInput       string
	flagInputRight  string
	flagDump        bool
	flagPrintConfig bool
	flagRecord      bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the simulation headless",
	Long: `Run a table for a fixed number of frames without a terminal UI.

Paddles are driven by input patterns that repeat every frame, one symbol
per frame: u (up), d (down), b (both) or . (neither). Without
--input-right the right paddle is the CPU.

Rounds are logged to stderr. The run is deterministic: the same config
and inputs always produce the same result.

Examples:
  pong sim --frames 600
  pong sim --input uuu......... --dump
  pong sim --input ud --input-right du --frames 1000 --record
  pong sim --print-config > pong.yaml`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", 300, "Number of frames to run")
	simCmd.Flags().StringVar(&flagInput, "input", "", "Left paddle input pattern")
	simCmd.Flags().StringVar(&flagInputRight, "input-right", "", "Right paddle input pattern (default: CPU)")
	simCmd.Flags().BoolVar(&flagDump, "dump", false, "Print the last frame when done")
	simCmd.Flags().BoolVar(&flagPrintConfig, "print-config", false, "Print the effective config as YAML and exit")
	simCmd.Flags().BoolVar(&flagRecord, "record", false, "Store the run as a session")
}

func runSim(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagPrintConfig {
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}
	if flagFrames < 0 {
		return fmt.Errorf("--frames must not be negative, got %d", flagFrames)
	}

	players := 1
	if cmd.Flags().Changed("input-right") {
		players = 2
	}
	rt, err := runtimeConfig(players)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cmd.ErrOrStderr(), "pong-sim")
	if err != nil {
		return err
	}
	defer closeLog()

	var controls [2]pong.Controls
	var inputs []tui.Ticker
	patterns := [2]string{flagInput, flagInputRight}
	for p := 0; p < players; p++ {
		script, err := periph.ParseScript(patterns[p])
		if err != nil {
			return err
		}
		controls[p] = pong.Controls{Up: script.Up(), Down: script.Down()}
		inputs = append(inputs, script)
	}

	table, err := tui.NewTable(cfg, rt, controls, inputs...)
	if err != nil {
		return err
	}

	var store *storage.Store
	if flagRecord {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			return fmt.Errorf("opening sessions database: %w", err)
		}
		defer store.Close()
	}
	recorder := tui.NewRecorder(store, logger, "sim")

	for i := 0; i < flagFrames; i++ {
		recorder.Observe(table.Frame(), table.Game)
	}
	recorder.End()

	scores := table.Game.Scores()
	fmt.Fprintf(out, "frames %d  rounds %d  score %d:%d  beeps %d\n",
		table.Game.Tick(), table.Game.Round(), scores[pong.Left], scores[pong.Right], table.Buzzer.Beeps())

	if flagDump {
		fmt.Fprintln(out, tui.RenderField(table.Canvas.Front()))
	}
	return nil
}

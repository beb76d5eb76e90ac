package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded sessions",
	Long: `Display the most recent sessions with their final score.

With --interactive, browse sessions in a table and press Enter to see
the rounds of one.

Examples:
  pong scores
  pong scores --limit 50
  pong scores --interactive`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of sessions to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse sessions in a table")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening sessions database: %w", err)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, flagLimit, width, height)
	}

	sessions, err := store.RecentSessions(flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving sessions: %w", err)
	}

	fmt.Println("Recent sessions")
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'pong play' to start the first one!")
		return nil
	}

	fmt.Printf("  %-16s  %-7s  %-7s  %-6s  %s\n", "Started", "Mode", "Score", "Rounds", "Session")
	fmt.Printf("  %-16s  %-7s  %-7s  %-6s  %s\n", "-------", "----", "-----", "------", "-------")
	for _, s := range sessions {
		score := fmt.Sprintf("%d:%d", s.Score1, s.Score2)
		fmt.Printf("  %-16s  %-7s  %-7s  %-6d  %s\n",
			s.StartedAt.Local().Format("2006-01-02 15:04"), s.Mode, score, s.Rounds, s.ID)
	}

	if totals, err := store.Totals(); err == nil {
		fmt.Println()
		fmt.Printf("Sessions: %d  Rounds: %d  Left wins: %d  Right wins: %d\n",
			totals.Sessions, totals.Rounds, totals.LeftWins, totals.RightWins)
	}
	return nil
}

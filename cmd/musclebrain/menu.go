package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/musclebrain/internal/identity"
	"github.com/vovakirdan/musclebrain/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the lobby to pick games",
	Long: `Start Muscle Brain in interactive lobby mode.

Use arrow keys or j/k to navigate, Enter to select a game.
After a game ends, you return to the lobby to play again.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Select game
  Tab          - Leaderboard
  Q            - Quit

Examples:
  musclebrain menu
  musclebrain menu --fps 60
  musclebrain menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	a := setup(logToFile)
	svc := a.services(context.Background())
	player := identity.Local()

	runErr := tui.RunSession(svc, player, a.runtimeConfig())
	a.close()

	if runErr != nil {
		fail("running lobby: %v", runErr)
	}
}

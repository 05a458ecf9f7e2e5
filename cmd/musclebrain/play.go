package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/musclebrain/internal/identity"
	"github.com/vovakirdan/musclebrain/internal/platform/tui"
	"github.com/vovakirdan/musclebrain/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game. Games are named by slug or ID.

Controls:
  Arrows/WASD  - Move the cursor
  Space/Enter  - Tap
  0-9, -       - Type an answer (Rapid Math) or pick a color (Stroop)
  Backspace    - Clear the answer
  P            - Pause (where the game allows it)
  Esc/Q        - Stop the game
  R            - Play again (after the game)
  Ctrl+S       - Save a screenshot
  Ctrl+C       - Quit

Examples:
  musclebrain play schulte-table
  musclebrain play chimp --difficulty easy
  musclebrain play rapid-math --seed 42`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	info, ok := registry.Lookup(args[0])
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'musclebrain list' to see available games.")
		os.Exit(1)
	}

	a := setup(logToFile)
	game, err := registry.Create(info.ID)
	if err != nil {
		fail("creating game: %v", err)
	}

	svc := a.services(context.Background())
	player := identity.Local()
	a.logger.Info("local play", "game", info.Slug, "player", player.UserID)

	runErr := tui.Run(info, game, svc, player, a.runtimeConfig())

	// Flush scores before potential exit
	a.close()

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}

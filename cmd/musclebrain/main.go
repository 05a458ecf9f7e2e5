// musclebrain is a terminal gym of short brain-training games.
//
// Usage:
//
//	musclebrain list               - List available games
//	musclebrain play <game>        - Play a game
//	musclebrain menu               - Start the lobby to pick games interactively
//	musclebrain serve              - Serve the lobby over SSH and the leaderboard API over HTTP
//	musclebrain scores <game>      - Show the leaderboard of a game
//	musclebrain tutorials reset    - Show every tutorial again
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.musclebrain/scores.db)
//	--config <path>       - Use a specific config file
//	--redis <url>         - Mirror best scores to a Redis leaderboard
//	--log-level <level>   - debug, info, warn or error
//	--difficulty <preset> - easy, normal or hard
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/musclebrain/internal/games"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagRedisURL   string
	flagLogLevel   string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "musclebrain",
	Short: "Muscle Brain - train your brain in the terminal",
	Long: `Muscle Brain is a set of short brain-training games that run in your
terminal: Schulte Table, Chimp Test, Reaction Time, Visual Memory,
Rapid Math and the Stroop Test.

Available commands:
  list       - Show all available games
  play       - Play a specific game directly
  menu       - Interactive lobby
  serve      - Start the SSH server and the HTTP leaderboard API
  scores     - View the leaderboard of a game
  tutorials  - Manage tutorial cards

Examples:
  musclebrain list
  musclebrain play chimp-test
  musclebrain menu
  musclebrain serve --ssh :2222 --http :8080
  musclebrain scores reaction-time`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = config value, default 30)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default ~/.musclebrain/scores.db)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagRedisURL, "redis", "", "Redis URL for the leaderboard cache (e.g. redis://localhost:6379/0)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(tutorialsCmd)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

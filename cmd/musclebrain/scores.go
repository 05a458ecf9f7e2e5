package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/musclebrain/internal/registry"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show the leaderboard of a game",
	Long: `Display the best score of each player for the specified game, plus
the all-time record.

Examples:
  musclebrain scores schulte-table
  musclebrain scores reaction-time --limit 20`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of players to show")
}

func runScores(cmd *cobra.Command, args []string) {
	info, ok := registry.Lookup(args[0])
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'musclebrain list' to see available games.")
		os.Exit(1)
	}

	a := setup(logToStderr)
	defer a.close()

	store := a.openStore()
	if store == nil {
		a.close()
		fail("opening scores database %s", a.cfg.App.DBPath)
	}

	top, err := store.TopBestScores(info.Slug, flagLimit, info.LowerIsBetter)
	if err != nil {
		a.close()
		fail("retrieving scores: %v", err)
	}

	fmt.Printf("Leaderboard - %s\n", info.Title)
	fmt.Println()

	if len(top) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'musclebrain play %s' to set the first score!\n", info.Slug)
		return
	}

	fmt.Printf("  %-4s  %-16s  %-12s  %s\n", "Rank", "Player", "Best", "Date")
	fmt.Printf("  %-4s  %-16s  %-12s  %s\n", "----", "------", "----", "----")
	for i, entry := range top {
		name := entry.DisplayName
		if name == "" {
			name = entry.UserID
		}
		fmt.Printf("  %-4d  %-16s  %-12s  %s\n", i+1, name, info.FormatScore(entry.Score), entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if g, err := store.GlobalBest(info.Slug); err == nil && g != nil {
		fmt.Println()
		fmt.Printf("All-time record: %s by %s\n", info.FormatScore(g.Score), g.DisplayName)
	}

	if stats, err := store.GameStats(info.Slug); err == nil && stats.GamesCount > 0 {
		fmt.Printf("%d sessions by %d players, last played %s\n",
			stats.GamesCount, stats.Players, stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/musclebrain/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every game in lobby order with its slug and length.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	slugLen, titleLen := len("Slug"), len("Title")
	for _, g := range games {
		slugLen = max(slugLen, len(g.Slug))
		titleLen = max(titleLen, len(g.Title))
	}

	fmt.Printf("  %-*s  %-*s  %-9s  %s\n", slugLen, "Slug", titleLen, "Title", "Time", "Ranked by")
	fmt.Printf("  %-*s  %-*s  %-9s  %s\n", slugLen, "----", titleLen, "-----", "----", "---------")

	for _, g := range games {
		order := "higher " + g.Unit
		if g.LowerIsBetter {
			order = "lower " + g.Unit
		}
		fmt.Printf("  %-*s  %-*s  %-9s  %s\n", slugLen, g.Slug, titleLen, g.Title, g.EstimatedTime, order)
	}

	fmt.Println()
	fmt.Println("Run 'musclebrain play <slug>' to play a game.")
}

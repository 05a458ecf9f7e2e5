package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/musclebrain/internal/identity"
)

var flagTutorialUser string

var tutorialsCmd = &cobra.Command{
	Use:   "tutorials",
	Short: "Manage tutorial cards",
}

var tutorialsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Show every tutorial again before the next game",
	Long: `Clear the "seen" flags so each game shows its how-to-play card again.

By default the flags of the local player are cleared.

Examples:
  musclebrain tutorials reset
  musclebrain tutorials reset --user user:alice
  musclebrain tutorials reset --user 6f1c...`,
	Args: cobra.NoArgs,
	Run:  runTutorialsReset,
}

func init() {
	tutorialsResetCmd.Flags().StringVar(&flagTutorialUser, "user", "", "Player ID to reset (default: local player)")
	tutorialsCmd.AddCommand(tutorialsResetCmd)
}

func runTutorialsReset(_ *cobra.Command, _ []string) {
	a := setup(logToStderr)
	defer a.close()

	store := a.openStore()
	if store == nil {
		a.close()
		fail("opening scores database %s", a.cfg.App.DBPath)
	}

	userID := flagTutorialUser
	if userID == "" {
		userID = identity.Local().UserID
	}

	n, err := store.ResetTutorials(userID)
	if err != nil {
		a.close()
		fail("%v", err)
	}
	fmt.Printf("Reset %d tutorial(s) for %s.\n", n, userID)
}

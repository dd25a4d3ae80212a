package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/priyank-82/Meet-Minding/internal/config"
	"github.com/priyank-82/Meet-Minding/internal/history"
)

var historyLimit int

var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "List teams with stored meeting history",
	RunE:  runTeams,
}

var historyCmd = &cobra.Command{
	Use:   "history <team>",
	Short: "Show a team's recent meeting records",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", history.DefaultLimit, "Maximum records to show")
}

func runTeams(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	teams, err := history.NewStore(cfg.Storage.Dir).ListTeams()
	if err != nil {
		return err
	}

	if len(teams) == 0 {
		fmt.Println("No teams with stored history.")
		return nil
	}
	for _, team := range teams {
		fmt.Println(team)
	}
	return nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	records, err := history.NewStore(cfg.Storage.Dir).List(args[0], historyLimit, false)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Printf("No history for team %q.\n", args[0])
		return nil
	}

	out, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

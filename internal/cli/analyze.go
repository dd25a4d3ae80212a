package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/priyank-82/Meet-Minding/internal/config"
)

var (
	analyzeTeam string
	analyzeSave bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <transcript-file>",
	Short: "Analyze a transcript file and print the structured record",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeTeam, "team", "t", "", "Team id for prior-meeting context")
	analyzeCmd.Flags().BoolVar(&analyzeSave, "save", false, "Persist the result to the team's history (requires --team)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if analyzeSave && analyzeTeam == "" {
		return fmt.Errorf("--save requires --team")
	}

	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := context.Background()
	proc, store := buildProcessor(ctx, cfg)
	defer proc.Close()

	rec, err := proc.Analyze(ctx, string(content), analyzeTeam)
	if err != nil {
		return err
	}

	if analyzeSave {
		path, err := store.Save(analyzeTeam, rec)
		if err != nil {
			return fmt.Errorf("save record: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Saved to %s\n", path)
	}

	out, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// Package cli implements the meetminding command tree.
package cli

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	rootCmd *cobra.Command
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "meetminding",
		Short: "Meet-Minding - context-aware meeting transcript analysis",
		Long: `Meet-Minding turns raw meeting transcripts into structured records
(summary, participants, decisions, action items) and carries continuity
across a team's meeting history, so each analysis can reference prior
commitments.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			applyVerbosity(verbose)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// applyVerbosity sets the logging surface for the whole process: verbose
// adds source locations to warnings and keeps gin's debug output, quiet
// runs gin in release mode.
func applyVerbosity(v bool) {
	if v {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
		return
	}
	gin.SetMode(gin.ReleaseMode)
}

// Execute runs the root command.
func Execute(version string) error {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(teamsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(toolServerCmd)
	rootCmd.AddCommand(configCmd)

	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

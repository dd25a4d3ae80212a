package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the meetminding version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("meetminding version %s\n", rootCmd.Version)
	},
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/priyank-82/Meet-Minding/internal/toolserver"
)

var toolServerAddr string

var toolServerCmd = &cobra.Command{
	Use:    "tool-server",
	Short:  "Run the extraction tool server (internal use)",
	Hidden: true,
	RunE:   runToolServer,
}

func init() {
	toolServerCmd.Flags().StringVar(&toolServerAddr, "addr", "127.0.0.1:8001", "Listen address")
}

func runToolServer(cmd *cobra.Command, args []string) error {
	if toolServerAddr == "" {
		return fmt.Errorf("--addr is required")
	}
	return toolserver.NewServer().Run(toolServerAddr)
}

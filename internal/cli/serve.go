package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/priyank-82/Meet-Minding/internal/config"
	"github.com/priyank-82/Meet-Minding/internal/mirror"
	"github.com/priyank-82/Meet-Minding/internal/web"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP service",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}

	ctx := context.Background()
	proc, store := buildProcessor(ctx, cfg)
	defer proc.Close()

	var m web.Mirror
	if cfg.Mirror.Enabled {
		up, err := mirror.New(ctx, cfg.Mirror.Region, cfg.Mirror.Bucket, cfg.Mirror.Prefix)
		if err != nil {
			log.Printf("warning: mirror disabled: %v", err)
		} else {
			m = up
		}
	}

	server := web.NewServer(proc, store, m)

	// Tear down the tool server process on shutdown signals.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		proc.Close()
		os.Exit(0)
	}()

	fmt.Printf("Meet-Minding listening on %s\n", cfg.Server.Addr)
	return server.Run(cfg.Server.Addr)
}

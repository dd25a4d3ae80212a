package cli

import (
	"context"
	"log"
	"time"

	"github.com/priyank-82/Meet-Minding/internal/analyze"
	"github.com/priyank-82/Meet-Minding/internal/bedrock"
	"github.com/priyank-82/Meet-Minding/internal/cache"
	"github.com/priyank-82/Meet-Minding/internal/config"
	"github.com/priyank-82/Meet-Minding/internal/history"
	"github.com/priyank-82/Meet-Minding/internal/toolserver"
)

// buildProcessor assembles the analysis pipeline from configuration. Every
// optional collaborator that fails to initialize is logged and skipped; the
// pipeline always comes up, degrading to pattern extraction if it must.
func buildProcessor(ctx context.Context, cfg *config.Config) (*analyze.Processor, *history.Store) {
	store := history.NewStore(cfg.Storage.Dir)

	var gen analyze.Generator
	if cfg.Generation.Enabled {
		client, err := bedrock.New(ctx, cfg.Generation.Region, cfg.Generation.ModelID, bedrock.Params{
			Temperature: cfg.Generation.Temperature,
			TopP:        cfg.Generation.TopP,
			MaxTokens:   cfg.Generation.MaxTokens,
		})
		if err != nil {
			log.Printf("warning: generation unavailable, falling back to pattern extraction: %v", err)
		} else {
			gen = client
		}
	}

	var tools analyze.ToolChannel
	if cfg.Tools.Enabled {
		sup, err := toolserver.NewSupervisor(cfg.Tools.Addr)
		if err != nil {
			log.Printf("warning: tool server disabled: %v", err)
		} else {
			tools = sup
		}
	}

	var results analyze.ResultCache
	if cfg.Cache.Enabled {
		c, err := cache.New(cfg.Cache.Path)
		if err != nil {
			log.Printf("warning: result cache disabled: %v", err)
		} else {
			results = c
		}
	}

	proc := analyze.New(analyze.Config{
		Generator:         gen,
		Store:             store,
		Tools:             tools,
		Cache:             results,
		GenerationTimeout: time.Duration(cfg.Generation.TimeoutSeconds) * time.Second,
	})

	return proc, store
}

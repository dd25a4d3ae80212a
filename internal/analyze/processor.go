// Package analyze orchestrates the transcript analysis pipeline: prior
// context retrieval, prompt construction, the generation call with its
// pattern-based fallback, response validation, and normalization into the
// canonical record shape.
package analyze

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/priyank-82/Meet-Minding/internal/extract"
	"github.com/priyank-82/Meet-Minding/internal/history"
	"github.com/priyank-82/Meet-Minding/internal/meeting"
)

// ErrEmptyTranscript is returned before the pipeline runs when there is
// nothing to analyze.
var ErrEmptyTranscript = errors.New("transcript is empty")

// DefaultGenerationTimeout bounds a single generation call. Long-running
// batch transcripts can legitimately take a while, hence the hour ceiling.
const DefaultGenerationTimeout = time.Hour

// maxRawSummary caps the summary synthesized from a reply that carried no
// parseable JSON.
const maxRawSummary = 500

// Generator is the external text-generation capability. A failure includes
// transport errors and empty output; the processor degrades to pattern
// extraction in either case.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ToolChannel supervises the optional side-channel tool process. Ensure is
// called lazily before each analysis and must be cheap when the channel is
// already up; Close terminates the process with a bounded grace period.
type ToolChannel interface {
	Ensure(ctx context.Context) error
	Close() error
}

// ResultCache is an optional exact-match cache of analysis results. It is
// an optimization only; errors and misses never fail the pipeline.
type ResultCache interface {
	Get(key string) (*meeting.Record, bool)
	Put(key string, rec *meeting.Record) error
}

// Config wires a Processor. Generator may be nil (everything falls back to
// pattern extraction); Tools and Cache are optional.
type Config struct {
	Generator         Generator
	Store             *history.Store
	Tools             ToolChannel
	Cache             ResultCache
	GenerationTimeout time.Duration
}

// Processor is the single entry point for transcript analysis. It owns the
// side-channel lifecycle; callers own persistence of the returned record.
type Processor struct {
	gen     Generator
	store   *history.Store
	tools   ToolChannel
	cache   ResultCache
	timeout time.Duration

	mu        sync.Mutex
	closeOnce sync.Once
}

// New creates a Processor from the given wiring.
func New(cfg Config) *Processor {
	timeout := cfg.GenerationTimeout
	if timeout <= 0 {
		timeout = DefaultGenerationTimeout
	}
	return &Processor{
		gen:     cfg.Generator,
		store:   cfg.Store,
		tools:   cfg.Tools,
		cache:   cfg.Cache,
		timeout: timeout,
	}
}

// Analyze turns a transcript into a normalized meeting record. With a team
// id, prior meetings for that team are rendered into the prompt so task
// status carries across meetings. Analysis-path failures degrade to a
// schema-conformant best-effort result; only validation errors surface.
func (p *Processor) Analyze(ctx context.Context, transcript, teamID string) (*meeting.Record, error) {
	if strings.TrimSpace(transcript) == "" {
		return nil, ErrEmptyTranscript
	}

	contextBlock := ""
	if teamID != "" && p.store != nil {
		records, err := p.store.List(teamID, history.DefaultLimit, true)
		if err != nil {
			log.Printf("warning: loading history for %q: %v", teamID, err)
		}
		contextBlock = history.FormatContext(teamID, records)
	}

	key := cacheKey(transcript, contextBlock)
	if p.cache != nil {
		if rec, ok := p.cache.Get(key); ok {
			return rec, nil
		}
	}

	p.ensureTools(ctx)

	rec := p.analyzeOnce(ctx, transcript, contextBlock)

	if p.cache != nil {
		if err := p.cache.Put(key, rec); err != nil {
			log.Printf("warning: caching analysis result: %v", err)
		}
	}

	return rec, nil
}

func (p *Processor) analyzeOnce(ctx context.Context, transcript, contextBlock string) *meeting.Record {
	if p.gen == nil {
		return extract.Analyze(transcript)
	}

	genCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	reply, err := p.gen.Generate(genCtx, BuildPrompt(transcript, contextBlock))
	if err != nil || strings.TrimSpace(reply) == "" {
		if err != nil {
			log.Printf("warning: generation failed, using pattern extraction: %v", err)
		}
		// The fallback cannot use prior context; accepted degradation.
		return extract.Analyze(transcript)
	}

	if obj, ok := ExtractJSONObject(reply); ok {
		return meeting.Normalize(obj)
	}

	// Prose with no embedded JSON still yields a usable record. The cut is
	// in runes so a multi-byte character is never split.
	summary := reply
	if runes := []rune(summary); len(runes) > maxRawSummary {
		summary = string(runes[:maxRawSummary]) + "..."
	}
	rec := &meeting.Record{
		Summary:     summary,
		NextMeeting: meeting.NotSpecified,
	}
	rec.Sanitize()
	return rec
}

// ensureTools brings up the side channel if configured. Failure only
// disables that channel; it never blocks the generation call.
func (p *Processor) ensureTools(ctx context.Context) {
	if p.tools == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.tools.Ensure(ctx); err != nil {
		log.Printf("warning: tool channel unavailable: %v", err)
	}
}

// Close tears down the side-channel process exactly once. Teardown is
// best-effort: failures are logged, never surfaced.
func (p *Processor) Close() {
	p.closeOnce.Do(func() {
		if p.tools == nil {
			return
		}
		if err := p.tools.Close(); err != nil {
			log.Printf("warning: tool channel teardown: %v", err)
		}
	})
}

func cacheKey(transcript, contextBlock string) string {
	h := sha256.New()
	h.Write([]byte(transcript))
	h.Write([]byte{0})
	h.Write([]byte(contextBlock))
	return hex.EncodeToString(h.Sum(nil))
}

package toolserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
)

const (
	probeRetries = 3
	probeBackoff = 2 * time.Second
	probeTimeout = 10 * time.Second

	// How long a terminated process gets to exit before it is killed.
	shutdownGrace = 5 * time.Second

	// Give a freshly spawned process a moment before the first probe.
	startupDelay = time.Second
)

// Supervisor starts the tool server as a child process of the current
// binary and manages its lifecycle: lazy start, liveness probing before
// reuse, and terminate-then-kill teardown. All methods are safe for
// concurrent use.
type Supervisor struct {
	addr      string
	binary    string
	sessionID string
	client    *http.Client

	mu     sync.Mutex
	cmd    *exec.Cmd
	waitCh chan struct{} // closed when the child exits
}

// NewSupervisor creates a supervisor for a tool server on addr. The child
// is the current executable re-invoked in tool-server mode.
func NewSupervisor(addr string) (*Supervisor, error) {
	binary, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("resolve executable: %w", err)
	}

	return &Supervisor{
		addr:      addr,
		binary:    binary,
		sessionID: uuid.New().String()[:8],
		client:    &http.Client{Timeout: probeTimeout},
	}, nil
}

// SessionID identifies this supervisor's lifetime for log correlation.
func (s *Supervisor) SessionID() string {
	return s.sessionID
}

// Ensure makes the tool server reachable: a live child is reused, a dead or
// missing one is (re)started and probed with bounded retries.
func (s *Supervisor) Ensure(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cmd != nil && !s.exited() && s.alive(ctx) {
		return nil
	}

	return s.start(ctx)
}

// exited reports whether the supervised child has terminated. Callers hold mu.
func (s *Supervisor) exited() bool {
	if s.waitCh == nil {
		return true
	}
	select {
	case <-s.waitCh:
		return true
	default:
		return false
	}
}

func (s *Supervisor) start(ctx context.Context) error {
	cmd := exec.Command(s.binary, "tool-server", "--addr", s.addr)
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr
	cmd.Env = os.Environ()

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start tool server: %w", err)
	}

	select {
	case <-time.After(startupDelay):
	case <-ctx.Done():
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
		return ctx.Err()
	}

	var lastErr error
	for attempt := 0; attempt < probeRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(probeBackoff):
			case <-ctx.Done():
				_ = cmd.Process.Kill()
				_ = cmd.Wait()
				return ctx.Err()
			}
		}

		if err := s.probe(ctx); err != nil {
			lastErr = err
			continue
		}

		waitCh := make(chan struct{})
		go func() {
			_ = cmd.Wait()
			close(waitCh)
		}()
		s.cmd = cmd
		s.waitCh = waitCh
		return nil
	}

	_ = cmd.Process.Kill()
	_ = cmd.Wait()
	return fmt.Errorf("tool server unreachable after %d attempts: %w", probeRetries, lastErr)
}

func (s *Supervisor) alive(ctx context.Context) bool {
	return s.probe(ctx) == nil
}

func (s *Supervisor) probe(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://"+s.addr+"/capabilities", nil)
	if err != nil {
		return err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("capabilities probe returned %d", resp.StatusCode)
	}
	return nil
}

// CallTool invokes a named tool on the running server and returns the raw
// result payload.
func (s *Supervisor) CallTool(ctx context.Context, name string, args map[string]interface{}) (json.RawMessage, error) {
	body, err := json.Marshal(callRequest{Name: name, Arguments: args})
	if err != nil {
		return nil, fmt.Errorf("marshal tool call: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, "http://"+s.addr+"/tools/call", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tool call: %w", err)
	}
	defer resp.Body.Close()

	var envelope struct {
		Success bool            `json:"success"`
		Result  json.RawMessage `json:"result"`
		Error   string          `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode tool response: %w", err)
	}
	if !envelope.Success {
		return nil, fmt.Errorf("tool %s: %s", name, envelope.Error)
	}

	return envelope.Result, nil
}

// Close terminates the child process: SIGTERM, a bounded wait, then SIGKILL.
// Closing a supervisor that never started is a no-op.
func (s *Supervisor) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cmd == nil || s.cmd.Process == nil {
		return nil
	}
	cmd := s.cmd
	waitCh := s.waitCh
	s.cmd = nil
	s.waitCh = nil

	select {
	case <-waitCh:
		return nil // already exited
	default:
	}

	if err := cmd.Process.Signal(syscall.SIGTERM); err != nil {
		return cmd.Process.Kill()
	}

	select {
	case <-waitCh:
		return nil
	case <-time.After(shutdownGrace):
		return cmd.Process.Kill()
	}
}

package ecli

import (
	"fmt"

	"github.com/embedcli/go-embedded-cli/internal/trace"
)

type lifecycleState uint8

const (
	lifecycleCreated lifecycleState = iota
	lifecycleRunning
)

// CLI is the engine described across spec.md's component sections C1-C9:
// a ring buffer (C1) feeding a line editor (C6) over a fixed command
// buffer, a history arena (C2), a binding table (C4) with autocompletion
// (C5), a dispatcher (C7), and line-safe output (C8), all carved out of one
// arena (C9) sized once at construction.
type CLI struct {
	cfg           Config
	arena         arenaLayout
	selfAllocated bool

	rx       *ringBuffer
	cmd      []byte
	cmdSize  int
	bindings *bindingTable
	hist     *history

	lastByte byte
	inEscape bool
	overflow bool

	directPrint  bool
	inputLineLen int

	lifecycle lifecycleState
}

// New builds a CLI from DefaultConfig() plus the given options, carving a
// single arena (caller-supplied via WithBuffer, or exactly one heap
// allocation otherwise) into the ring, command, and history regions
// (spec.md §9 "Memory arena" / §3 Lifecycle).
func New(opts ...Option) (*CLI, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.CmdBufferSize < 3 {
		return nil, fmt.Errorf("ecli: command buffer must be at least 3 bytes, got %d", cfg.CmdBufferSize)
	}
	if cfg.MaxBindingCount < 0 {
		return nil, fmt.Errorf("ecli: max binding count must be >= 0, got %d", cfg.MaxBindingCount)
	}

	layout, selfAlloc, err := buildArena(cfg)
	if err != nil {
		trace.Logf("New: buildArena failed: %v", err)
		return nil, err
	}

	c := &CLI{
		cfg:           cfg,
		arena:         layout,
		selfAllocated: selfAlloc,
		rx:            newRingBuffer(layout.rx),
		cmd:           layout.cmd,
		bindings:      newBindingTable(cfg.MaxBindingCount + 1),
		lifecycle:     lifecycleCreated,
	}
	if cfg.HistoryBufferSize > 0 {
		c.hist = newHistory(layout.history)
	}
	if !c.registerHelp() {
		return nil, fmt.Errorf("ecli: binding table has no room for the internal help command")
	}
	trace.Log("new cli engine constructed")
	return c, nil
}

// AddBinding registers a user command, failing if the table (sized by
// WithMaxBindingCount) is already full or the name contains a space
// (spec.md §4.4).
func (c *CLI) AddBinding(b Binding) bool {
	return c.bindings.add(b)
}

// ReceiveChar enqueues a single received byte (spec.md §4.1's ReceiveChar).
// It may be called from a different execution context than Process; it
// returns false if the ring buffer was already full and the byte was
// dropped. A dropped byte sets the overflow flag (spec.md §7(a)): the next
// Process call discards whatever is in the command buffer rather than risk
// dispatching a silently corrupted line.
func (c *CLI) ReceiveChar(b byte) bool {
	ok := c.rx.push(b)
	if !ok {
		c.overflow = true
	}
	return ok
}

// Process drains every byte currently buffered by ReceiveChar through the
// line editor. It is the engine's only cooperative entry point: nothing
// else advances state, and it never blocks (spec.md §5).
//
// spec.md §6 requires a write-char hook and treats Process as a no-op when
// it's absent; this port accepts either output hook as the primitive (see
// options.go), so Process only no-ops when neither WriteChar nor
// WriteString has been configured by the time it's called.
//
// The very first call transitions the engine from "created" to "running"
// and emits the invitation before consuming any buffered byte, matching
// the initialization ordering in spec.md §3.
func (c *CLI) Process(handle any) {
	if c.cfg.WriteChar == nil && c.cfg.WriteString == nil {
		return
	}
	if c.lifecycle == lifecycleCreated {
		c.lifecycle = lifecycleRunning
		trace.Log("cli: created -> running")
		c.writeStringOut(c.cfg.Invitation)
	}
	for c.rx.available() > 0 {
		c.feedByte(handle, c.rx.pop())
	}
	if c.overflow {
		c.overflow = false
		c.cmdSize = 0
		c.cmd[0] = 0
	}
}

// Free releases the arena if the engine allocated it itself. Under the Go
// runtime this only drops the CLI's own reference to the backing array (the
// garbage collector does the rest); it exists so callers coming from the
// arena-ownership model in spec.md §3/§7(d) have a single, explicit
// teardown call instead of relying on convention.
func (c *CLI) Free() {
	if !c.selfAllocated {
		return
	}
	c.arena = arenaLayout{}
	c.rx = nil
	c.cmd = nil
	if c.hist != nil {
		c.hist = nil
	}
}

// TokenizeArgs is the public form of the in-place tokenizer (spec.md §4.3),
// for callers that want to tokenize a string outside of dispatch (e.g. a
// binding that tokenizes a sub-argument of its own args by hand). The
// returned buffer is double-NUL-terminated and safe to pass to GetToken,
// FindToken, and CountTokens.
func TokenizeArgs(s string) []byte {
	buf := make([]byte, len(s)+2)
	copy(buf, s)
	n := tokenizeArgs(buf, len(s))
	return buf[:n]
}

// GetToken returns the i-th (1-based) token of a buffer produced by
// TokenizeArgs.
func GetToken(tokenized []byte, i int) (string, bool) {
	return tokenAt(tokenized, i)
}

// FindToken returns the 1-based index of name within a tokenized buffer, or
// 0 if absent.
func FindToken(tokenized []byte, name string) int {
	return findToken(tokenized, name)
}

// CountTokens returns the number of tokens in a tokenized buffer.
func CountTokens(tokenized []byte) int {
	return countTokens(tokenized)
}

package ecli

import "fmt"

// Config holds every field spec.md §6 lists as an input to sizing and
// layout. Construct one with New(opts...)'s functional options, or build
// it directly for callers that want to call Size up front.
type Config struct {
	RxBufferSize       int
	CmdBufferSize      int
	HistoryBufferSize  int
	MaxBindingCount    int
	EnableAutoComplete bool
	Invitation         string
	// Buffer, when non-nil, is used as the arena instead of a heap
	// allocation (spec.md §3 Lifecycle / §7(d)).
	Buffer []byte

	// Host-supplied hooks, spec.md §6.
	WriteChar   func(b byte)
	WriteString func(s string)
	OnCommand   func(name, args string)
	PostCommand func(code ResultCode)
}

// DefaultConfig returns the spec.md §6 defaults.
func DefaultConfig() Config {
	return Config{
		RxBufferSize:       64,
		CmdBufferSize:      64,
		HistoryBufferSize:  128,
		MaxBindingCount:    8,
		EnableAutoComplete: true,
		Invitation:         "> ",
	}
}

// Option configures a Config, mirroring the teacher's functional-options
// pattern (prompt.Option / prompt.CompletionManagerOption) instead of a
// wide constructor signature.
type Option func(*Config)

// WithRxBufferSize sets the capacity of the ingest ring buffer (C1).
func WithRxBufferSize(n int) Option { return func(c *Config) { c.RxBufferSize = n } }

// WithCmdBufferSize sets the capacity of the editable command buffer.
// New rejects values below 3: the last two bytes are reserved, so a buffer
// of n bytes holds at most n-2 typed characters.
func WithCmdBufferSize(n int) Option { return func(c *Config) { c.CmdBufferSize = n } }

// WithHistorySize sets the capacity of the history arena (C2). 0 disables
// history.
func WithHistorySize(n int) Option { return func(c *Config) { c.HistoryBufferSize = n } }

// WithMaxBindingCount sets the capacity for user-registered bindings
// (the internal "help" binding is added on top of this).
func WithMaxBindingCount(n int) Option { return func(c *Config) { c.MaxBindingCount = n } }

// WithAutoComplete enables or disables live and tab autocompletion.
func WithAutoComplete(enabled bool) Option {
	return func(c *Config) { c.EnableAutoComplete = enabled }
}

// WithInvitation sets the borrowed prompt string.
func WithInvitation(s string) Option { return func(c *Config) { c.Invitation = s } }

// WithBuffer supplies the caller-owned arena; when absent the engine
// performs exactly one heap allocation of Size(cfg) bytes.
func WithBuffer(buf []byte) Option { return func(c *Config) { c.Buffer = buf } }

// arenaLayout is the deterministic slab carve-up described in spec.md §9
// ("Memory arena"): one contiguous []byte sliced into the three raw byte
// regions the engine owns (C1's ring, the command buffer, C2's history).
// The binding table is ordinary Go-managed memory: unlike
// the C original, it holds borrowed string headers and a function pointer
// per entry, which doesn't have a meaningful flat byte layout in Go, so
// giving it its own slab would buy nothing.
type arenaLayout struct {
	rx      []byte
	cmd     []byte
	history []byte
}

// Size returns the number of bytes required for cfg's arena.
func Size(cfg Config) int {
	return cfg.RxBufferSize + cfg.CmdBufferSize + cfg.HistoryBufferSize
}

func carveArena(cfg Config, buf []byte) arenaLayout {
	var l arenaLayout
	off := 0
	l.rx = buf[off : off+cfg.RxBufferSize]
	off += cfg.RxBufferSize
	l.cmd = buf[off : off+cfg.CmdBufferSize]
	off += cfg.CmdBufferSize
	l.history = buf[off : off+cfg.HistoryBufferSize]
	return l
}

// buildArena returns the arena to use for cfg, allocating it if the
// caller did not supply one, and reports whether the engine owns (and
// must eventually release) that allocation.
func buildArena(cfg Config) (arenaLayout, bool, error) {
	need := Size(cfg)
	if cfg.Buffer != nil {
		if len(cfg.Buffer) < need {
			return arenaLayout{}, false, fmt.Errorf("ecli: supplied buffer is %d bytes, need at least %d", len(cfg.Buffer), need)
		}
		return carveArena(cfg, cfg.Buffer), false, nil
	}
	return carveArena(cfg, make([]byte, need)), true, nil
}

package ecli

import (
	"errors"
	"fmt"

	"github.com/embedcli/go-embedded-cli/internal/trace"
)

// ErrNoSuchBinding is returned by ParseDirectCommand when the command name
// does not match any registered binding (spec.md §9 Open Questions: direct
// mode never had a defined "not found" signal, so it gets one here while
// keeping the historical silent ResultCode 1 for callers that only check
// the code).
var ErrNoSuchBinding = errors.New("ecli: no such binding")

// dispatchOutcome separates "a result code exists" from "something handled
// the input", so direct mode can report ErrNoSuchBinding precisely while
// REPL mode's fallback path (on-command hook, or the default message) still
// counts as handled.
type dispatchOutcome struct {
	code    ResultCode
	matched bool
}

// dispatch implements C7 (spec.md §4.7) over the live command buffer
// c.cmd[:c.cmdSize]. direct distinguishes ParseDirectCommand's entry point
// (no history insertion, no on-command fallback) from the REPL path.
func (c *CLI) dispatch(handle any, direct bool) dispatchOutcome {
	line := c.cmd[:c.cmdSize]
	if isAllWhitespace(line) {
		return dispatchOutcome{0, true}
	}

	if !direct && c.hist != nil {
		c.hist.put(string(line))
	}

	nameEnd := indexOfSpace(line)
	var name string
	argsStart := len(line)
	if nameEnd >= 0 {
		name = string(line[:nameEnd])
		argsStart = nameEnd
		for argsStart < len(line) && line[argsStart] == byteSpace {
			argsStart++
		}
	} else {
		name = string(line)
	}

	entry := c.bindings.find(name)
	if entry == nil {
		return c.dispatchUnmatched(direct, name, argsText(line, argsStart))
	}

	args := c.buildArgs(entry, line, argsStart)

	wasDirect := c.directPrint
	c.directPrint = true
	code := entry.Handler(handle, args, entry.Context)
	if !wasDirect {
		c.directPrint = false
	}
	if c.cfg.PostCommand != nil {
		c.cfg.PostCommand(code)
	}
	return dispatchOutcome{code, true}
}

// buildArgs extracts the argument text for entry starting at argsStart
// within line (which shares the live command buffer, carrying the
// mandatory two bytes of slack past c.cmdSize). When entry requests
// tokenization, the tokenizer runs in place over exactly that slack.
func (c *CLI) buildArgs(entry *bindingEntry, line []byte, argsStart int) string {
	trace.Assert(c.cmdSize+2 <= len(c.cmd), "command buffer must retain 2 bytes of tokenizer slack")
	argBuf := c.cmd[argsStart : c.cmdSize+2]
	if !entry.TokenizeArgs {
		return string(line[argsStart:])
	}
	n := tokenizeArgs(argBuf, c.cmdSize-argsStart)
	return string(argBuf[:n])
}

func (c *CLI) dispatchUnmatched(direct bool, name, args string) dispatchOutcome {
	if direct {
		return dispatchOutcome{1, false}
	}
	if c.cfg.OnCommand != nil {
		wasDirect := c.directPrint
		c.directPrint = true
		c.cfg.OnCommand(name, args)
		if !wasDirect {
			c.directPrint = false
		}
		return dispatchOutcome{0, true}
	}
	c.Print(fmt.Sprintf("Unknown command: %q. Write \"help\" for a list of available commands", name))
	if c.cfg.PostCommand != nil {
		c.cfg.PostCommand(1)
	}
	return dispatchOutcome{1, true}
}

// ParseDirectCommand dispatches data as a single command outside the line
// editor (spec.md §4.7 "Direct-mode dispatch"). No history entry is made
// and no on-command fallback fires; an unmatched name is reported both as
// ResultCode 1 and as ErrNoSuchBinding.
func (c *CLI) ParseDirectCommand(handle any, data []byte) (ResultCode, error) {
	room := len(c.cmd) - 2
	if room < 0 {
		room = 0
	}
	n := copy(c.cmd[:room], data)
	c.cmdSize = n
	c.cmd[c.cmdSize] = 0
	out := c.dispatch(handle, true)
	if !out.matched {
		return out.code, ErrNoSuchBinding
	}
	return out.code, nil
}

func isAllWhitespace(b []byte) bool {
	for _, c := range b {
		if c != byteSpace {
			return false
		}
	}
	return true
}

func indexOfSpace(b []byte) int {
	for i, c := range b {
		if c == byteSpace {
			return i
		}
	}
	return -1
}

func argsText(line []byte, argsStart int) string {
	if argsStart >= len(line) {
		return ""
	}
	return string(line[argsStart:])
}

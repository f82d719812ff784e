package ecli

// Print implements C8 (spec.md §4.8): output interleaved with an
// in-progress input line without corrupting it. Inside a binding handler
// (directPrint is set for the duration of dispatch), it is a raw
// line-oriented write; otherwise it clears the prompt, writes the message,
// and repaints the invitation, the command buffer, and any live
// autocompletion suffix.
func (c *CLI) Print(s string) {
	if c.directPrint {
		c.writeStringOut(s)
		c.writeStringOut("\r\n")
		return
	}
	c.clearCurrentLine()
	c.writeStringOut(s)
	c.writeStringOut("\r\n")
	c.writeStringOut(c.cfg.Invitation)
	c.writeStringOut(string(c.cmd[:c.cmdSize]))
	c.inputLineLen = c.cmdSize
	if c.cfg.EnableAutoComplete {
		c.printLiveAutocompletion()
	}
}

// writeCharOut and writeStringOut are the engine's only two output exits.
// Each falls back to the other host hook when its own is absent, so a host
// that wires only one of WriteChar/WriteString (spec.md §6 describes
// WriteString as an optional fast path layered over the mandatory
// per-byte hook, but nothing stops a host from doing the reverse) still
// gets a fully working editor: echo, backspace erase, and every
// clear-line/redraw sequence route through writeCharOut, so a one-way
// fallback would silently break them for a WriteString-only host.
func (c *CLI) writeCharOut(b byte) {
	if c.cfg.WriteChar != nil {
		c.cfg.WriteChar(b)
		return
	}
	if c.cfg.WriteString == nil {
		return
	}
	c.cfg.WriteString(string(b))
}

func (c *CLI) writeStringOut(s string) {
	if c.cfg.WriteString != nil {
		c.cfg.WriteString(s)
		return
	}
	if c.cfg.WriteChar == nil {
		return
	}
	for i := 0; i < len(s); i++ {
		c.cfg.WriteChar(s[i])
	}
}

package ecli

import "strings"

// feedByte runs one byte through the line-editor state machine (spec.md
// §4.6). It is the only place lastByte/inEscape/cmdSize are mutated from
// incoming input.
func (c *CLI) feedByte(handle any, b byte) {
	prev := c.lastByte

	switch {
	case b == byteESC:
		c.lastByte = b
		return

	case b == '[' && prev == byteESC:
		c.inEscape = true
		c.lastByte = b
		return

	case c.inEscape:
		c.lastByte = b
		if isEscapeFinalByte(b) {
			c.inEscape = false
			switch b {
			case 'A':
				c.navigateHistory(true)
			case 'B':
				c.navigateHistory(false)
			}
		}
		return

	case isControlByte(b):
		c.lastByte = b
		c.handleControl(handle, b, prev)

	case isDisplayableByte(b):
		c.lastByte = b
		if c.cmdSize+2 < len(c.cmd) {
			c.cmd[c.cmdSize] = b
			c.cmdSize++
			c.cmd[c.cmdSize] = 0
			c.writeCharOut(b)
		}

	default:
		c.lastByte = b
		return
	}

	if c.cfg.EnableAutoComplete {
		c.printLiveAutocompletion()
	}
}

func (c *CLI) handleControl(handle any, b, prev byte) {
	switch b {
	case byteCR:
		if prev == byteLF {
			return
		}
		c.submitLine(handle)
	case byteLF:
		if prev == byteCR {
			return
		}
		c.submitLine(handle)
	case byteBS, byteDEL:
		if c.cmdSize == 0 {
			return
		}
		c.cmdSize--
		c.cmd[c.cmdSize] = 0
		c.writeCharOut(byteBS)
		c.writeCharOut(byteSpace)
		c.writeCharOut(byteBS)
	case byteTab:
		c.runAutocomplete()
	}
}

// submitLine finalizes the current command buffer: spec.md §4.6 "CR or LF".
func (c *CLI) submitLine(handle any) {
	c.runAutocomplete()
	c.writeStringOut("\r\n")
	if c.cmdSize > 0 {
		c.dispatch(handle, false)
	}
	c.cmdSize = 0
	c.cmd[0] = 0
	if c.hist != nil {
		c.hist.clearNavigation()
	}
	c.inputLineLen = 0
	c.writeStringOut(c.cfg.Invitation)
}

// runAutocomplete implements the Tab-key / pre-submit autocompletion pass
// described in spec.md §4.5/§4.6: extend the buffer to the unique match, or
// list every candidate when the prefix is already maximal and ambiguous.
func (c *CLI) runAutocomplete() {
	res := c.bindings.computeAutocompletion(string(c.cmd[:c.cmdSize]))
	if res.candidateCount == 0 {
		return
	}
	if res.candidateCount == 1 || res.autocompletedLen > c.cmdSize {
		c.extendToCandidate(res, res.candidateCount == 1)
		return
	}
	if res.candidateCount > 1 && res.autocompletedLen == c.cmdSize {
		c.clearCurrentLine()
		for _, name := range c.bindings.candidateNames() {
			c.writeStringOut(name)
			c.writeStringOut("\r\n")
		}
		c.writeStringOut(c.cfg.Invitation)
		c.writeStringOut(string(c.cmd[:c.cmdSize]))
	}
}

func (c *CLI) extendToCandidate(res autocompletion, trailingSpace bool) {
	start := c.cmdSize
	suffix := res.firstCandidate[start:res.autocompletedLen]
	written := 0
	for written < len(suffix) {
		if c.cmdSize+2 >= len(c.cmd) {
			break
		}
		c.cmd[c.cmdSize] = suffix[written]
		c.cmdSize++
		written++
	}
	c.cmd[c.cmdSize] = 0
	c.writeStringOut(suffix[:written])
	if trailingSpace && c.cmdSize+2 < len(c.cmd) {
		c.cmd[c.cmdSize] = byteSpace
		c.cmdSize++
		c.cmd[c.cmdSize] = 0
		c.writeCharOut(byteSpace)
	}
	if c.cmdSize > c.inputLineLen {
		c.inputLineLen = c.cmdSize
	}
}

// printLiveAutocompletion runs after every consumed byte (spec.md §4.6):
// show the missing suffix of a unique candidate inline, and erase any
// stale suffix a prior, longer match had printed.
func (c *CLI) printLiveAutocompletion() {
	res := c.bindings.computeAutocompletion(string(c.cmd[:c.cmdSize]))
	displayLen := c.cmdSize
	var suffix string
	if res.candidateCount == 1 {
		displayLen = res.autocompletedLen
		suffix = res.firstCandidate[c.cmdSize:displayLen]
	}
	if suffix != "" {
		c.writeStringOut(suffix)
	}
	if c.inputLineLen > displayLen {
		pad := c.inputLineLen - displayLen
		c.writeStringOut(strings.Repeat(" ", pad))
		c.writeCharOut('\r')
		c.writeStringOut(c.cfg.Invitation)
		c.writeStringOut(string(c.cmd[:c.cmdSize]))
	}
	c.inputLineLen = displayLen
}

// navigateHistory implements spec.md §4.6's ESC [ A / ESC [ B handling.
func (c *CLI) navigateHistory(up bool) {
	if c.hist == nil || c.hist.itemsCount == 0 {
		return
	}
	if up && c.hist.current == c.hist.itemsCount {
		return
	}
	if !up && c.hist.current == 0 {
		return
	}
	c.clearCurrentLine()
	c.writeStringOut(c.cfg.Invitation)
	if up {
		c.hist.current++
	} else {
		c.hist.current--
	}
	var s string
	if c.hist.current != 0 {
		s, _ = c.hist.get(c.hist.current)
	}
	room := len(c.cmd) - 2
	c.cmdSize = copy(c.cmd[:room], s)
	c.cmd[c.cmdSize] = 0
	c.writeStringOut(string(c.cmd[:c.cmdSize]))
	c.inputLineLen = c.cmdSize
	if c.cfg.EnableAutoComplete {
		c.printLiveAutocompletion()
	}
}

// clearCurrentLine erases the prompt and the in-progress input line using
// the CR-spaces-CR trick described throughout spec.md §4.
func (c *CLI) clearCurrentLine() {
	c.writeCharOut('\r')
	c.writeStringOut(strings.Repeat(" ", len(c.cfg.Invitation)+c.inputLineLen))
	c.writeCharOut('\r')
}

package ecli

// WithWriteChar registers the per-byte output hook spec.md §6 calls
// mandatory. Either this or WithWriteString must be configured by the time
// Process runs, or Process is a no-op; each hook falls back to the other
// when only one is supplied, so a WriteString-only host still gets
// per-byte output (e.g. echo, backspace erase) and vice versa.
func WithWriteChar(fn func(b byte)) Option {
	return func(c *Config) { c.WriteChar = fn }
}

// WithWriteString registers the whole-string output fast path spec.md §6
// calls optional. When absent, the engine falls back to per-byte writes
// via WriteChar; see WithWriteChar for the symmetric fallback.
func WithWriteString(fn func(s string)) Option {
	return func(c *Config) { c.WriteString = fn }
}

// WithOnCommand registers the fallback invoked for unbound commands in
// REPL mode, in place of the default "Unknown command" message.
func WithOnCommand(fn func(name, args string)) Option {
	return func(c *Config) { c.OnCommand = fn }
}

// WithPostCommand registers a hook called after every binding invocation
// or unknown-command event, receiving the handler's (or the synthesized
// unknown-command) result code.
func WithPostCommand(fn func(code ResultCode)) Option {
	return func(c *Config) { c.PostCommand = fn }
}

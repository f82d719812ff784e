package ecli

// tokenizeArgs performs the in-place, quote- and escape-aware transform
// described in spec.md §4.3: buf is rewritten so that tokens are
// NUL-separated and the whole result is terminated by a second NUL (the
// "double-NUL-terminated" representation from the GLOSSARY). The caller
// must guarantee buf has at least two bytes of slack beyond the length of
// the text actually being tokenized (n).
//
// tokenizeArgs returns the number of bytes written, including both
// terminating NULs.
func tokenizeArgs(buf []byte, n int) int {
	var inQuotes, escapeNext bool
	w := 0
	for i := 0; i < n; i++ {
		c := buf[i]
		switch {
		case escapeNext:
			escapeNext = false
			buf[w] = c
			w++
		case c == '\\':
			escapeNext = true
		case c == '"':
			inQuotes = !inQuotes
			if w > 0 && buf[w-1] != 0 {
				buf[w] = 0
				w++
			}
		case !inQuotes && c == ' ':
			if w > 0 && buf[w-1] != 0 {
				buf[w] = 0
				w++
			}
		default:
			buf[w] = c
			w++
		}
	}
	buf[w] = 0
	w++
	buf[w] = 0
	w++
	return w
}

// getToken returns the start offset and length of the i-th (1-based)
// non-empty token within a tokenized (double-NUL-terminated) buffer, and
// whether that token exists.
func getToken(buf []byte, i int) (start, length int, ok bool) {
	if i < 1 {
		return 0, 0, false
	}
	off := 0
	n := 0
	for off < len(buf) {
		end := off
		for end < len(buf) && buf[end] != 0 {
			end++
		}
		if end == off {
			// empty run: either a skip (shouldn't occur post-collapse) or the
			// final double-NUL terminator.
			break
		}
		n++
		if n == i {
			return off, end - off, true
		}
		off = end + 1
	}
	return 0, 0, false
}

// findToken returns the 1-based index of the token equal to name, or 0.
func findToken(buf []byte, name string) int {
	for i := 1; ; i++ {
		start, length, ok := getToken(buf, i)
		if !ok {
			return 0
		}
		if string(buf[start:start+length]) == name {
			return i
		}
	}
}

// countTokens returns the number of non-empty tokens in a tokenized
// buffer.
func countTokens(buf []byte) int {
	n := 0
	for i := 1; ; i++ {
		if _, _, ok := getToken(buf, i); !ok {
			return n
		}
		n++
	}
}

// tokenAt returns the text of the i-th (1-based) token, or "" with ok=false.
func tokenAt(buf []byte, i int) (string, bool) {
	start, length, ok := getToken(buf, i)
	if !ok {
		return "", false
	}
	return string(buf[start : start+length]), true
}

// Package whitespace holds the byte-level token spacing rules. They all
// read the raw source around a token node; the tree only supplies the
// token positions and the parent context that decides whether a token is
// in scope (a "<" in a binary expression, not a generic argument list).
package whitespace

// isHorizontal reports whether b is a space or tab.
func isHorizontal(b byte) bool {
	return b == ' ' || b == '\t'
}

// isWS reports whether b is any whitespace byte, newlines included.
func isWS(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}

// wsBefore reports whether the byte before off is whitespace. The start
// of the file counts as whitespace.
func wsBefore(src []byte, off uint32) bool {
	return off == 0 || isWS(src[off-1])
}

// wsAfter reports whether the byte at end is whitespace. The end of the
// file counts as whitespace.
func wsAfter(src []byte, end uint32) bool {
	return int(end) >= len(src) || isWS(src[end])
}

// horizontalRunAfter returns the length of the run of spaces and tabs
// starting at off.
func horizontalRunAfter(src []byte, off uint32) uint32 {
	end := off
	for int(end) < len(src) && isHorizontal(src[end]) {
		end++
	}
	return end - off
}

// horizontalRunBefore returns the length of the run of spaces and tabs
// ending just before off.
func horizontalRunBefore(src []byte, off uint32) uint32 {
	start := off
	for start > 0 && isHorizontal(src[start-1]) {
		start--
	}
	return off - start
}

// atLineStart reports whether only horizontal whitespace precedes off on
// its line.
func atLineStart(src []byte, off uint32) bool {
	for off > 0 {
		b := src[off-1]
		if b == '\n' || b == '\r' {
			return true
		}
		if !isHorizontal(b) {
			return false
		}
		off--
	}
	return true
}

// atLineEnd reports whether only horizontal whitespace follows end on its
// line.
func atLineEnd(src []byte, end uint32) bool {
	for int(end) < len(src) {
		b := src[end]
		if b == '\n' || b == '\r' {
			return true
		}
		if !isHorizontal(b) {
			return false
		}
		end++
	}
	return true
}

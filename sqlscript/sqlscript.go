package sqlscript

import (
	"bytes"
	"strings"
)

// utf8BOM is the UTF-8 byte order mark some editors prepend to text files.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// TrimBOM returns data without a leading UTF-8 byte order mark. The result
// shares data's backing array; data without a mark is returned unchanged.
func TrimBOM(data []byte) []byte {
	return bytes.TrimPrefix(data, utf8BOM)
}

// StripComments removes SQL line comments ("--" to end of line) from a
// multi-line script and joins the surviving line prefixes with single
// spaces, one trailing space per line.
//
// A "--" inside a single- or double-quoted literal is kept, and a doubled
// quote character inside a literal is the usual SQL escape for itself.
// Quote tracking is per line: each line starts outside any literal, so a
// literal spanning a line break is not recognized on the following lines.
func StripComments(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, line := range splitLines(s) {
		b.WriteString(stripLineComment(line))
		b.WriteByte(' ')
	}
	return b.String()
}

// stripLineComment returns the prefix of line up to the first "--" that
// occurs outside a quoted literal, or the whole line if there is none.
func stripLineComment(line string) string {
	var quote byte
	for i := 0; i < len(line); i++ {
		c := line[i]
		if quote != 0 {
			if c == quote {
				if i+1 < len(line) && line[i+1] == quote {
					i++ // escaped quote, stay inside the literal
				} else {
					quote = 0
				}
			}
			continue
		}
		switch {
		case c == '\'' || c == '"':
			quote = c
		case c == '-' && i+1 < len(line) && line[i+1] == '-':
			return line[:i]
		}
	}
	return line
}

// splitLines splits s on CR and LF, dropping empty lines.
func splitLines(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == '\r' || r == '\n'
	})
}

// Package jsonc removes comments from JSON documents.
//
// Config files may carry // line comments and /* */ block comments. Strip
// blanks them out while leaving string literals untouched, so byte offsets
// and line numbers reported by a JSON decoder still point at the source.
package jsonc

import "bytes"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type state int

const (
	stNormal state = iota
	stLineComment
	stBlockComment
	stString
)

// Strip returns content with comments replaced by spaces and a leading
// UTF-8 byte order mark removed. Newlines inside comments are kept.
// An unterminated block comment is blanked to the end of input.
func Strip(content []byte) []byte {
	content = bytes.TrimPrefix(content, utf8BOM)
	out := make([]byte, 0, len(content))

	st := stNormal
	i := 0
	for i < len(content) {
		ch := content[i]
		var next byte
		if i+1 < len(content) {
			next = content[i+1]
		}

		switch st {
		case stNormal:
			switch {
			case ch == '/' && next == '/':
				st = stLineComment
				out = append(out, ' ', ' ')
				i += 2
			case ch == '/' && next == '*':
				st = stBlockComment
				out = append(out, ' ', ' ')
				i += 2
			case ch == '"':
				st = stString
				out = append(out, ch)
				i++
			default:
				out = append(out, ch)
				i++
			}

		case stLineComment:
			if ch == '\n' || ch == '\r' {
				st = stNormal
				out = append(out, ch)
			} else {
				out = append(out, blank(ch))
			}
			i++

		case stBlockComment:
			if ch == '*' && next == '/' {
				st = stNormal
				out = append(out, ' ', ' ')
				i += 2
				continue
			}
			out = append(out, blank(ch))
			i++

		case stString:
			out = append(out, ch)
			switch ch {
			case '\\':
				if i+1 < len(content) {
					out = append(out, next)
					i += 2
					continue
				}
			case '"':
				st = stNormal
			}
			i++
		}
	}

	return out
}

func blank(ch byte) byte {
	if ch == '\n' || ch == '\r' || ch == '\t' {
		return ch
	}
	return ' '
}

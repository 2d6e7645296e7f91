package rules

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	escapeBytes [256]byte
)

func init() {
	escapeBytes['a'] = '\a'  // bell
	escapeBytes['b'] = '\b'  // backspace
	escapeBytes['f'] = '\f'  // form feed
	escapeBytes['n'] = '\n'  // newline
	escapeBytes['r'] = '\r'  // carriage return
	escapeBytes['t'] = '\t'  // horizontal tab
	escapeBytes['v'] = '\v'  // vertical tab
	escapeBytes['\\'] = '\\' // backslash
	escapeBytes['"'] = '"'   // double quote
	escapeBytes['\''] = '\'' // single quote
	escapeBytes['\n'] = '\n' // escaped newline is a new line
}

// unescape resolves the escape sequences in the content of a string literal.
// Besides the single character escapes, it supports \z (skip following
// whitespace), \xXX (two hex digits) and \ddd (up to three decimal digits,
// at most 255).
func unescape(s string) (string, error) {
	if !strings.ContainsRune(s, '\\') {
		return s, nil
	}

	var unescaped strings.Builder
	unescaped.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if s[i] != '\\' {
			unescaped.WriteByte(s[i])
			continue
		}

		i++
		if i == len(s) {
			return "", fmt.Errorf("unfinished escape at end of string")
		}

		switch next := s[i]; {
		case next == 'z':
			for i+1 < len(s) && unicode.IsSpace(rune(s[i+1])) {
				i++
			}
		case next == 'x':
			if i+2 >= len(s) {
				return "", fmt.Errorf("incomplete hex escape at end of string")
			}
			decoded, err := strconv.ParseUint(s[i+1:i+3], 16, 8)
			if err != nil {
				return "", fmt.Errorf("decode hex: %w", err)
			}
			unescaped.WriteByte(byte(decoded))
			i += 2
		case isDecimal(next):
			end := i
			for end < len(s) && end < i+3 && isDecimal(s[end]) {
				end++
			}
			decoded, err := strconv.Atoi(s[i:end])
			if err != nil {
				return "", fmt.Errorf("decode dec: %w", err)
			}
			if decoded > 255 {
				return "", fmt.Errorf("decimal escape too large: %d (max 255)", decoded)
			}
			unescaped.WriteByte(byte(decoded))
			i = end - 1
		default:
			b := escapeBytes[next]
			if b == 0 {
				r, _ := utf8.DecodeRuneInString(s[i:])
				return "", fmt.Errorf("unknown escape sequence '\\%s'", string(r))
			}
			unescaped.WriteByte(b)
		}
	}

	return unescaped.String(), nil
}

func isDecimal(b byte) bool {
	return '0' <= b && b <= '9'
}

package typename

import (
	"strings"
	"unicode/utf8"
)

// isIdentByte reports whether b can appear inside an identifier. Bytes at
// or above utf8.RuneSelf belong to multi-byte runes and count as
// identifier bytes, so a spelling is never split mid-rune.
func isIdentByte(b byte) bool {
	return b == '_' ||
		'0' <= b && b <= '9' ||
		'a' <= b && b <= 'z' ||
		'A' <= b && b <= 'Z' ||
		b >= utf8.RuneSelf
}

// matchKeyword returns how many bytes a keyword occurrence consumes at the
// start of s: the keyword itself, plus one following space when present.
// It returns 0 when s does not start with the keyword as a whole token,
// which keeps keywords that prefix a longer identifier (such as "structA")
// intact. Callers must only invoke it at token boundaries.
func matchKeyword(s, kw string) int {
	if !strings.HasPrefix(s, kw) {
		return 0
	}
	if len(s) > len(kw) && isIdentByte(s[len(kw)]) {
		return 0
	}
	if len(s) > len(kw) && s[len(kw)] == ' ' {
		return len(kw) + 1
	}
	return len(kw)
}

// stripKeywords removes every whole-token occurrence of the given keywords
// from name, wherever it appears, including inside bracketed argument
// lists. Trailing spaces left behind by the removal are stripped. The
// output contains no keyword tokens, so applying the function twice
// returns the same result as applying it once.
func stripKeywords(name string, keywords []string) string {
	var b strings.Builder
	b.Grow(len(name))
	i := 0
	for i < len(name) {
		if n := matchAny(name[i:], keywords); n > 0 {
			i += n
			continue
		}
		// Copy a maximal identifier run as a unit so keywords are only
		// ever matched at token boundaries.
		j := i + 1
		if isIdentByte(name[i]) {
			for j < len(name) && isIdentByte(name[j]) {
				j++
			}
		}
		b.WriteString(name[i:j])
		i = j
	}
	return strings.TrimRight(b.String(), " ")
}

// matchAny returns the consumed length of the first keyword matching at
// the start of s, or 0 when none match.
func matchAny(s string, keywords []string) int {
	for _, kw := range keywords {
		if n := matchKeyword(s, kw); n > 0 {
			return n
		}
	}
	return 0
}

// isPlainPath reports whether s consists solely of identifier bytes and
// scope separators. Pointer, array, function and bracketed spellings all
// contain other bytes and are therefore not plain paths.
func isPlainPath(s string, sep byte) bool {
	for i := 0; i < len(s); i++ {
		if !isIdentByte(s[i]) && s[i] != sep {
			return false
		}
	}
	return true
}

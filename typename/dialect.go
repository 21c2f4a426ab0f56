package typename

import "strings"

// Dialect describes how a toolchain decorates type spellings: the
// decoration keywords it prints in front of names and the byte separating
// scope segments. A Dialect is a pure value; its methods never mutate it.
type Dialect struct {
	// Name identifies the dialect in configuration and CLI flags.
	Name string
	// Keywords are the decoration tokens stripped by Clean. Each must be
	// an identifier-shaped token.
	Keywords []string
	// Separator is the byte between scope segments, '.' for Go spellings.
	Separator byte
}

// GoDialect matches the spellings produced by the Go toolchains. They
// carry no decoration keywords, so Clean only strips trailing spaces, and
// package qualification uses '.'.
var GoDialect = Dialect{
	Name:      "go",
	Separator: '.',
}

// MSVCDialect matches MSVC-style decorated spellings, where value types
// are printed with an elaborating keyword ("enum E", "class C",
// "struct S"), function types carry a calling convention ("__cdecl"), and
// scope segments are joined with "::". Useful for tidying names that
// arrive from outside the process, for example out of native stack traces
// or PDB dumps.
var MSVCDialect = Dialect{
	Name:      "msvc",
	Keywords:  []string{"enum", "class", "struct", "__cdecl"},
	Separator: ':',
}

// Clean returns the tidy form of name: every whole-token occurrence of the
// dialect's keywords removed, together with one following space per
// occurrence, and trailing spaces stripped. Keywords embedded in longer
// identifiers are left alone. Clean is idempotent.
func (d Dialect) Clean(name string) string {
	if len(d.Keywords) == 0 {
		return strings.TrimRight(name, " ")
	}
	return stripKeywords(name, d.Keywords)
}

// Base returns the unqualified tidy form of name: the substring after the
// last scope separator. Only plain identifier paths are stripped. Compound
// spellings (pointers, arrays, functions, bracketed argument lists) are
// returned in tidy form unchanged, because their last separator need not
// belong to the outermost type.
func (d Dialect) Base(name string) string {
	tidy := d.Clean(name)
	if !isPlainPath(tidy, d.Separator) {
		return tidy
	}
	if i := strings.LastIndexByte(tidy, d.Separator); i >= 0 {
		return tidy[i+1:]
	}
	return tidy
}

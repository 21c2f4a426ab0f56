package typename

// FixedStringCap is the size of a FixedString buffer in bytes. One byte is
// reserved for the trailing NUL, so the longest representable name is
// FixedStringCap-1 bytes. Type names in practice stay far below this.
const FixedStringCap = 256

// FixedString is a fixed-capacity byte string with value semantics. The
// buffer is always NUL-terminated at the logical length, so the content
// can be handed to C-style consumers without copying. A FixedString is
// immutable once constructed; copying one copies the whole buffer.
type FixedString struct {
	buf [FixedStringCap]byte
	n   int
}

// NewFixedString returns a FixedString holding s. Input longer than the
// capacity allows is truncated silently.
func NewFixedString(s string) FixedString {
	return NewFixedStringN(s, len(s))
}

// NewFixedStringN returns a FixedString holding the first n bytes of s.
// n is clamped to [0, len(s)] and to the capacity.
func NewFixedStringN(s string, n int) FixedString {
	if n < 0 {
		n = 0
	}
	if n > len(s) {
		n = len(s)
	}
	if n > FixedStringCap-1 {
		n = FixedStringCap - 1
	}
	var f FixedString
	copy(f.buf[:], s[:n])
	f.n = n
	return f
}

// Len returns the logical length in bytes.
func (f FixedString) Len() int {
	return f.n
}

// IsEmpty reports whether the string holds no bytes.
func (f FixedString) IsEmpty() bool {
	return f.n == 0
}

// At returns the byte at index i. It panics when i is outside [0, Len).
func (f FixedString) At(i int) byte {
	if i < 0 || i >= f.n {
		panic("typename: FixedString index out of range")
	}
	return f.buf[i]
}

// Find returns the index of the first occurrence of c, or -1 when c does
// not occur.
func (f FixedString) Find(c byte) int {
	for i := 0; i < f.n; i++ {
		if f.buf[i] == c {
			return i
		}
	}
	return -1
}

// RFind returns the index of the last occurrence of c, or -1 when c does
// not occur. Index 0 is a valid result.
func (f FixedString) RFind(c byte) int {
	for i := f.n - 1; i >= 0; i-- {
		if f.buf[i] == c {
			return i
		}
	}
	return -1
}

// String returns the logical bytes as a Go string.
func (f FixedString) String() string {
	return string(f.buf[:f.n])
}

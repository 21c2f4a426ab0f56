//go:build gc

package typename

import (
	"reflect"
	"runtime"
	"strings"
)

// signature returns the string identifying this function's instantiation
// at T. The gc toolchain stencils generic code by shape, so the runtime
// symbol carries a shape placeholder ("go.shape.*") instead of the
// argument spelling. The capture therefore rebuilds the fully
// instantiated form: the symbol's head up to the instantiation bracket,
// then the toolchain's canonical spelling of T. Two instantiations differ
// only in the bracketed spelling; every surrounding byte is identical.
//
// The function must not be inlined, the head is recovered from this very
// frame.
//
//go:noinline
func signature[T any]() string {
	pc, _, _, ok := runtime.Caller(0)
	if !ok {
		return ""
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return ""
	}
	sym := fn.Name()
	if i := strings.IndexByte(sym, '['); i >= 0 {
		sym = sym[:i]
	}
	return sym + "[" + reflect.TypeOf((*T)(nil)).Elem().String() + "]"
}

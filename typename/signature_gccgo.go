//go:build gccgo

package typename

import (
	"reflect"
	"runtime"
	"strings"
)

// signature returns the string identifying this function's instantiation
// at T. The gofrontend instantiates generics per argument, so when the
// symbol carries a real instantiation bracket it already spells the type
// and is used as is. Symbols without a bracket, or with a shape
// placeholder, fall back to rebuilding the instantiated form from the
// symbol head and the canonical spelling of T.
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
	i := strings.IndexByte(sym, '[')
	if i >= 0 && !strings.Contains(sym, "go.shape.") {
		return sym
	}
	if i >= 0 {
		sym = sym[:i]
	}
	return sym + "[" + reflect.TypeFor[T]().String() + "]"
}

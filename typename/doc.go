// Package typename derives human-readable type names by parsing the
// signature strings the toolchain generates for instantiated generic
// functions, instead of interrogating runtime type information at the
// point of use.
//
// # Overview
//
// Every instantiation of a generic function owes its identity to the type
// argument, and the toolchain prints that identity into the function's
// symbol. The package captures the symbol of one known helper, locates the
// type spelling inside it with three calibrated constants, and refines the
// slice into three forms:
//
//   - Raw: the spelling exactly as captured
//   - Name: the tidy form, decoration keywords and trailing spaces removed
//   - Base: the tidy form with scope qualification stripped
//
// # How It Works
//
// The pipeline has three stages. Signature capture obtains the symbol
// string for signature[T]; a per-toolchain build file keeps the capture
// contract (two instantiations differ only in the spelling), and any
// toolchain without one fails to compile. Offset calibration runs once per
// process: the helper is instantiated at int (three bytes) and uint (four
// bytes), and the length difference of the two signatures yields how often
// the spelling appears, how many bytes are boilerplate, and where the
// spelling starts. Name refinement is pure string work over the sliced
// spelling, driven by a Dialect.
//
// Calibration verifies itself by re-deriving both sentinel spellings
// through the general slicing formula. A toolchain whose symbols violate
// the capture contract panics on first use with both signatures in the
// message; there is no degraded mode.
//
// # Example Usage
//
//	type Celsius float64
//
//	typename.Raw[Celsius]()        // "weather.Celsius"
//	typename.Name[*Celsius]()      // "*weather.Celsius"
//	typename.Base[Celsius]()       // "Celsius"
//	typename.Base[[]Celsius]()     // "[]weather.Celsius" (compound, unchanged)
//
// Results are FixedString values. They print directly and expose simple
// byte searches:
//
//	n := typename.Name[Celsius]()
//	fmt.Println(n)                 // weather.Celsius
//	dot := n.RFind('.')            // 7
//
// # Dialects
//
// A Dialect describes the decoration grammar of the spellings it tidies:
// the keyword tokens to strip and the scope separator byte. GoDialect
// covers the Go toolchains and strips nothing. MSVCDialect strips "enum",
// "class", "struct" and "__cdecl" and splits scopes on ':', which tidies
// decorated spellings arriving from outside the process:
//
//	typename.MSVCDialect.Clean("enum t::E")  // "t::E"
//	typename.MSVCDialect.Base("enum t::E")   // "E"
//
// # Concurrency
//
// All computation is pure. Calibration runs behind sync.OnceValue, and
// per-type results are memoized in a registry guarded by a read-write
// lock, so steady-state calls are a read-locked map hit returning an
// immutable value. Nothing blocks, so no operation takes a Context.
//
// # Registry Queries
//
// The memo table can be inspected: Entries returns a sorted snapshot of
// every type named so far, Count its size, and Stats the hit and miss
// counters. Reset clears the table for tests.
package typename

//go:build !gc && !gccgo

package typename

// The signature capture depends on the toolchain's generic symbol layout,
// and only the gc and gofrontend layouts are known. Referencing an
// undefined identifier turns any other toolchain into a readable compile
// error rather than a miscalibrated library.
var _ = signatureCaptureRequiresGcOrGccgoToolchain

package typename

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// Sentinel spellings used for calibration. "int" is three bytes, "uint"
// four, and each instantiates its own copy of the capture helper. The
// helper's package path must never contain "int", or the offset search
// below would lock onto the wrong position.
const (
	sentinelInt  = "int"
	sentinelUint = "uint"
)

// calibration locates a type's spelling inside any signature produced by
// the current toolchain. The three constants are derived once from the
// two sentinel instantiations and never change afterwards.
type calibration struct {
	// nameStart is the byte offset where the spelling begins.
	nameStart int
	// appearances is how many times the spelling occurs per signature.
	appearances int
	// boilerplate is the byte count not belonging to any appearance.
	boilerplate int
}

// calibrate derives the calibration constants from the two sentinel
// signatures. The derivation is arithmetic over the signature lengths:
//
//	appearances = len(uintSig) - len(intSig)    // spellings differ by one byte
//	boilerplate = len(uintSig) - 4*appearances  // "uint" is four bytes
//	nameStart   = first index of "int" in intSig
//
// It then re-derives both sentinel spellings through the general slicing
// formula and reports an error when either fails to round-trip. That
// catches symbol layouts the arithmetic cannot describe, such as a stray
// "int" in the boilerplate or appearances with uneven surroundings.
func calibrate(intSig, uintSig string) (calibration, error) {
	if intSig == "" || uintSig == "" {
		return calibration{}, errors.New("empty sentinel signature")
	}
	start := strings.Index(intSig, sentinelInt)
	if start < 0 {
		return calibration{}, fmt.Errorf("sentinel spelling %q not found in %q", sentinelInt, intSig)
	}
	apps := len(uintSig) - len(intSig)
	if apps < 1 {
		return calibration{}, fmt.Errorf("signature length does not grow with the spelling: %q vs %q", intSig, uintSig)
	}
	boiler := len(uintSig) - len(sentinelUint)*apps
	if boiler < 0 {
		return calibration{}, fmt.Errorf("negative boilerplate size %d for %q", boiler, uintSig)
	}
	c := calibration{nameStart: start, appearances: apps, boilerplate: boiler}
	if err := c.verify(intSig, sentinelInt); err != nil {
		return calibration{}, err
	}
	if err := c.verify(uintSig, sentinelUint); err != nil {
		return calibration{}, err
	}
	return c, nil
}

// verify checks that slicing sig with the general formula reproduces the
// expected sentinel spelling.
func (c calibration) verify(sig, want string) error {
	rest := len(sig) - c.boilerplate
	if rest < 0 || rest%c.appearances != 0 {
		return fmt.Errorf("signature %q does not decompose into %d appearances plus %d boilerplate bytes",
			sig, c.appearances, c.boilerplate)
	}
	n := rest / c.appearances
	if c.nameStart+n > len(sig) {
		return fmt.Errorf("derived name [%d:%d] exceeds signature %q", c.nameStart, c.nameStart+n, sig)
	}
	if got := sig[c.nameStart : c.nameStart+n]; got != want {
		return fmt.Errorf("calibration slice %q does not reproduce sentinel %q in %q", got, want, sig)
	}
	return nil
}

// slice extracts the spelling from a signature using the calibrated
// constants. Valid for any signature produced by the same capture.
func (c calibration) slice(sig string) string {
	n := (len(sig) - c.boilerplate) / c.appearances
	return sig[c.nameStart : c.nameStart+n]
}

// loadCalibration computes the process-wide calibration on first use. A
// failure means the toolchain's symbol layout broke the capture contract;
// there is no degraded mode, so it panics with the failing check and both
// sentinel signatures in the message.
var loadCalibration = sync.OnceValue(func() calibration {
	c, err := calibrate(signature[int](), signature[uint]())
	if err != nil {
		panic(fmt.Sprintf("typename: calibration failed: %v", err))
	}
	return c
})

// Calibration describes the derived constants together with the sentinel
// signatures they came from, for diagnostics and tooling.
type Calibration struct {
	NameStart     int    `json:"name_start"`
	Appearances   int    `json:"appearances"`
	Boilerplate   int    `json:"boilerplate"`
	IntSignature  string `json:"int_signature"`
	UintSignature string `json:"uint_signature"`
}

// Describe returns the process-wide calibration constants, forcing the
// derivation if it has not run yet.
func Describe() Calibration {
	c := loadCalibration()
	return Calibration{
		NameStart:     c.nameStart,
		Appearances:   c.appearances,
		Boilerplate:   c.boilerplate,
		IntSignature:  signature[int](),
		UintSignature: signature[uint](),
	}
}

// Verify re-derives the calibration from fresh sentinel captures and
// returns any consistency failure instead of panicking. Useful as a
// health check in tooling.
func Verify() error {
	_, err := calibrate(signature[int](), signature[uint]())
	return err
}

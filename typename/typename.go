package typename

import "reflect"

// Raw returns the spelling of T exactly as it appears in the captured
// signature, with nothing stripped.
func Raw[T any]() FixedString {
	return entryOf[T]().Raw
}

// Name returns the tidy spelling of T: decoration keywords removed and
// trailing spaces stripped. Go spellings carry no decoration keywords, so
// this equals Raw on the supported toolchains; the tidy pass is applied
// regardless.
func Name[T any]() FixedString {
	return entryOf[T]().Name
}

// Base returns the unqualified tidy spelling of T, the segment after the
// last package qualifier. Only plain named types are stripped; pointers,
// containers, functions and instantiated generics are returned in tidy
// form unchanged.
func Base[T any]() FixedString {
	return entryOf[T]().Base
}

// entryOf returns the memoized entry for T, computing it on first use.
func entryOf[T any]() Entry {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if e, ok := globalRegistry.lookup(t); ok {
		return e
	}
	return globalRegistry.store(t, computeEntry(signature[T]()))
}

// computeEntry derives all three forms from one captured signature.
func computeEntry(sig string) Entry {
	raw := loadCalibration().slice(sig)
	return Entry{
		Raw:  NewFixedString(raw),
		Name: NewFixedString(GoDialect.Clean(raw)),
		Base: NewFixedString(GoDialect.Base(raw)),
	}
}

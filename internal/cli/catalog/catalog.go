// Package catalog provides the demonstration types rendered by the
// show command. Each entry runs one type through the full name
// pipeline so the CLI can display all three forms side by side.
package catalog

import (
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/Fuzzier/constexpr-type-name/typename"
)

// Point is a plain named struct.
type Point struct {
	X, Y float64
}

// Weekday is a defined integer type.
type Weekday int

// Pair is a generic container used to show instantiated type names.
type Pair[L, R any] struct {
	Left  L
	Right R
}

// Handler is a named function type.
type Handler func(Point) error

// Row is one catalog entry: a kind label plus the three name forms.
type Row struct {
	Kind string `json:"kind"`
	Raw  string `json:"raw"`
	Name string `json:"name"`
	Base string `json:"base"`
}

// row extracts all three name forms for T.
func row[T any](kind string) Row {
	return Row{
		Kind: kind,
		Raw:  typename.Raw[T]().String(),
		Name: typename.Name[T]().String(),
		Base: typename.Base[T]().String(),
	}
}

// Rows returns the catalog in display order: builtins first, then named
// types, compounds, and types pulled in from other packages.
func Rows() []Row {
	return []Row{
		row[int]("builtin"),
		row[uint]("builtin"),
		row[string]("builtin"),
		row[bool]("builtin"),
		row[float64]("builtin"),
		row[Point]("named struct"),
		row[Weekday]("named integer"),
		row[Handler]("named func"),
		row[*Point]("pointer"),
		row[[]Point]("slice"),
		row[[4]Point]("array"),
		row[map[string]Point]("map"),
		row[chan Point]("channel"),
		row[func(int) string]("func literal"),
		row[struct{ N int }]("struct literal"),
		row[io.Reader]("interface"),
		row[Pair[string, int]]("generic"),
		row[time.Time]("stdlib struct"),
		row[time.Duration]("stdlib integer"),
		row[uuid.UUID]("named array"),
	}
}

package domain

import (
	"math"
	"strconv"
	"strings"
)

// RGB is a colour with channels in the viewer's 0..1 range.
type RGB struct {
	R float64
	G float64
	B float64
}

// White is the colour of indices no colour source claimed.
var White = RGB{R: 1, G: 1, B: 1}

// ColorTable maps an integer index (a marker id) to a colour.
// The index is the slice position.
type ColorTable []RGB

// NewWhiteTable returns a table of n entries, all white.
func NewWhiteTable(n int) ColorTable {
	t := make(ColorTable, n)
	for i := range t {
		t[i] = White
	}
	return t
}

// Len returns the number of entries.
func (t ColorTable) Len() int {
	return len(t)
}

// At returns the colour for id, or a *LookupError when id is out of range.
func (t ColorTable) At(id int) (RGB, error) {
	if id < 0 || id >= len(t) {
		return RGB{}, &LookupError{ID: id, Size: len(t)}
	}
	return t[id], nil
}

// RGB8 is an 8-bit colour as found in palette files.
type RGB8 struct {
	R uint8
	G uint8
	B uint8
}

// Unit converts to the 0..1 range, rounded to 4 decimals.
func (c RGB8) Unit() RGB {
	return RGB{
		R: roundTo(float64(c.R)/255, 4),
		G: roundTo(float64(c.G)/255, 4),
		B: roundTo(float64(c.B)/255, 4),
	}
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.RoundToEven(v*p) / p
}

// FormatDecimal renders v in its shortest round-trip form, always with a
// decimal point ("1.0", "0.9412").
func FormatDecimal(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

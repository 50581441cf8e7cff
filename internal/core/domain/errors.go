package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent pipeline failures.
// These are distinct from infrastructure errors such as a missing file.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotWellFormed indicates the marker file is not valid markup.
	// Colour rewriting refuses to touch such a document.
	ErrNotWellFormed = errors.New("not valid markup")

	// ErrColorLookup indicates a marker id has no entry in the colour table.
	ErrColorLookup = errors.New("color lookup failed")

	// ErrPaletteMissing indicates a chromosome has no palette colour.
	ErrPaletteMissing = errors.New("chromosome missing from palette")

	// ErrUnknownColormap indicates the requested colormap name is not registered.
	ErrUnknownColormap = errors.New("unknown colormap")

	// ErrEmptyTrack indicates a numeric track contained no values.
	ErrEmptyTrack = errors.New("empty track")
)

// LookupError reports a marker id outside the colour table.
type LookupError struct {
	ID   int
	Size int
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s: marker id %d outside color table of %d entries", ErrColorLookup, e.ID, e.Size)
}

// Unwrap allows errors.Is(err, ErrColorLookup).
func (e *LookupError) Unwrap() error {
	return ErrColorLookup
}

// PaletteError reports a chromosome label without a palette colour.
type PaletteError struct {
	Chromosome int
	Size       int
}

func (e *PaletteError) Error() string {
	return fmt.Sprintf("%s: chromosome %d (palette has %d entries)", ErrPaletteMissing, e.Chromosome, e.Size)
}

// Unwrap allows errors.Is(err, ErrPaletteMissing).
func (e *PaletteError) Unwrap() error {
	return ErrPaletteMissing
}

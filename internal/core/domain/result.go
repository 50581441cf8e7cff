package domain

// ColorizeStats summarises a colour rewrite.
type ColorizeStats struct {
	// Markers is the number of markers in the document.
	Markers int

	// Updated is the number of markers whose colour was rewritten.
	Updated int
}

// AnnotateResult is the outcome of a successful pipeline run.
// Warnings are soft failures the caller should surface.
type AnnotateResult struct {
	// Markers is the number of markers in the document.
	Markers int

	// Colored is the number of recoloured markers.
	Colored int

	// Links is the number of links written.
	Links int

	// SkippedLinks is the number of links dropped because a marker was missing.
	SkippedLinks int

	// Output names where the document went ("-" for the caller's writer).
	Output string

	// Warnings are non-fatal diagnostics.
	Warnings []string
}

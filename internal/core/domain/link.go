package domain

// DefaultLinkRadius is the radius given to synthesised chromosome links.
const DefaultLinkRadius = 0.006251

// Link connects two markers. Links are synthesised, never parsed.
type Link struct {
	// ID1 is the marker id the link starts at.
	ID1 int

	// ID2 is the marker id the link ends at.
	ID2 int

	// Color is the link colour.
	Color RGB

	// Radius is the drawn link radius.
	Radius float64
}

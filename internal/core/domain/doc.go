// Package domain defines the core entities for chromcmm.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: The ordered lines of a Chimera marker (.cmm) file
//   - Marker: A typed marker line with ordered attributes
//   - Link: A synthesised connector between two markers
//   - ColorTable: An index -> RGB mapping produced by a colour source
//   - Palette: A chromosome -> 8-bit colour mapping
//   - ChromosomeLabels: One chromosome id per bin
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain

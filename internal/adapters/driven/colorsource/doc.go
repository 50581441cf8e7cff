// Package colorsource reads and writes the CSV artefacts of the colour
// pipeline.
//
// Adapters:
//   - CSV: r,g,b tables, group membership and group colour tables
//   - Track: numeric tracks, comma or newline separated
package colorsource

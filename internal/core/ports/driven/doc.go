// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - DocumentCodec: Parses and serialises marker files
//   - ColorTableCodec: Reads and writes r,g,b tables
//   - GroupCodec: Reads group membership and group colour tables
//   - TrackReader: Reads numeric tracks
//   - LabelReader: Reads chromosome label vectors
//   - PaletteReader: Reads chromosome palette overrides
//   - ColormapRegistry: Resolves named continuous colormaps
//   - FileStore: Opens inputs and writes outputs
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven

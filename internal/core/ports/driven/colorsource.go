package driven

import (
	"io"

	"github.com/custodia-labs/chromcmm/internal/core/domain"
)

// ColorTableCodec reads and writes r,g,b tables where row order is index order.
type ColorTableCodec interface {
	// ReadTable reads a table. Values are passed through unscaled.
	ReadTable(r io.Reader) (domain.ColorTable, error)

	// WriteTable writes an "r,g,b" header followed by one row per index.
	WriteTable(w io.Writer, table domain.ColorTable) error
}

// GroupCodec reads group membership and colour tables.
type GroupCodec interface {
	// ReadGroups reads a headered CSV with one column of bin indices per group.
	ReadGroups(r io.Reader) (domain.Groups, error)

	// ReadGroupColors reads a headered CSV with one column per group and
	// three rows: red, green, blue.
	ReadGroupColors(r io.Reader) (map[string]domain.RGB, error)

	// WriteGroups writes groups as a headered CSV, one column per group.
	WriteGroups(w io.Writer, groups domain.Groups) error
}

// TrackReader reads a numeric track. Values may be comma or newline separated.
type TrackReader interface {
	ReadTrack(r io.Reader) ([]float64, error)
}

// Colormap maps a normalised value in [0, 1] to a colour.
type Colormap interface {
	At(t float64) (domain.RGB, error)
}

// ColormapRegistry resolves colormaps by name.
type ColormapRegistry interface {
	// Lookup returns the named colormap or an error wrapping
	// domain.ErrUnknownColormap.
	Lookup(name string) (Colormap, error)

	// Names returns the registered colormap names, sorted.
	Names() []string
}

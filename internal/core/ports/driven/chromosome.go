package driven

import (
	"io"

	"github.com/custodia-labs/chromcmm/internal/core/domain"
)

// LabelReader reads a chromosome label vector.
type LabelReader interface {
	ReadLabels(r io.Reader) (domain.ChromosomeLabels, error)
}

// PaletteReader reads a palette override. Row i colours chromosome i+1.
type PaletteReader interface {
	ReadPalette(r io.Reader) (domain.Palette, error)
}

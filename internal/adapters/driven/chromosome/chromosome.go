// Package chromosome reads chromosome label vectors and palette overrides.
package chromosome

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/custodia-labs/chromcmm/internal/core/domain"
	"github.com/custodia-labs/chromcmm/internal/core/ports/driven"
)

// Ensure Reader implements the interfaces.
var (
	_ driven.LabelReader   = (*Reader)(nil)
	_ driven.PaletteReader = (*Reader)(nil)
)

// Reader reads label vectors and palettes.
type Reader struct{}

// NewReader creates a new chromosome reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadLabels reads a raw uint8 array, one byte per bin.
func (c *Reader) ReadLabels(r io.Reader) (domain.ChromosomeLabels, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return domain.ChromosomeLabels(data), nil
}

// ReadPalette reads a header-less r,g,b CSV of 0..255 integers. Row i
// colours chromosome i+1.
func (c *Reader) ReadPalette(r io.Reader) (domain.Palette, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	var rows []domain.RGB8
	for row := 1; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return domain.Palette{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		if len(rec) != 3 {
			return domain.Palette{}, fmt.Errorf("%w: palette row %d has %d fields, want 3",
				domain.ErrInvalidInput, row, len(rec))
		}

		var ch [3]uint8
		for i, field := range rec {
			v, err := strconv.ParseUint(strings.TrimSpace(field), 10, 8)
			if err != nil {
				return domain.Palette{}, fmt.Errorf("%w: palette row %d: %q is not in 0..255",
					domain.ErrInvalidInput, row, field)
			}
			ch[i] = uint8(v)
		}
		rows = append(rows, domain.RGB8{R: ch[0], G: ch[1], B: ch[2]})
	}
	return domain.NewPalette(rows), nil
}

package colorsource

import (
	"fmt"
	"io"
	"strings"

	"github.com/custodia-labs/chromcmm/internal/core/domain"
	"github.com/custodia-labs/chromcmm/internal/core/ports/driven"
)

// Ensure Track implements the interface.
var _ driven.TrackReader = (*Track)(nil)

// Track reads numeric tracks written either as "1,2,3" or one value per line.
type Track struct{}

// NewTrack creates a new track reader.
func NewTrack() *Track {
	return &Track{}
}

// ReadTrack reads every value. Spaces are ignored, newlines separate values
// like commas, and empty fields are skipped. "nan" is accepted.
func (t *Track) ReadTrack(r io.Reader) ([]float64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	normalised := strings.NewReplacer(" ", "", "\t", "", "\r", "", "\n", ",").Replace(string(data))

	var values []float64
	for i, field := range strings.Split(normalised, ",") {
		if field == "" {
			continue
		}
		v, err := parseFloat(field)
		if err != nil {
			return nil, fmt.Errorf("input was not a well formatted list of values (field %d): %w", i+1, err)
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return nil, domain.ErrEmptyTrack
	}
	return values, nil
}

package colorsource

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/custodia-labs/chromcmm/internal/core/domain"
	"github.com/custodia-labs/chromcmm/internal/core/ports/driven"
)

// Ensure CSV implements the interfaces.
var (
	_ driven.ColorTableCodec = (*CSV)(nil)
	_ driven.GroupCodec      = (*CSV)(nil)
)

// CSV reads and writes comma separated colour tables.
type CSV struct{}

// NewCSV creates a new CSV colour table codec.
func NewCSV() *CSV {
	return &CSV{}
}

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	return cr
}

// ReadTable reads r,g,b rows. A leading "r,g,b" header is skipped.
func (c *CSV) ReadTable(r io.Reader) (domain.ColorTable, error) {
	cr := newReader(r)
	var table domain.ColorTable

	for row := 1; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		if row == 1 && isRGBHeader(rec) {
			continue
		}
		if len(rec) != 3 {
			return nil, fmt.Errorf("%w: row %d has %d fields, want 3", domain.ErrInvalidInput, row, len(rec))
		}
		rgb, err := parseRGB(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		table = append(table, rgb)
	}
	return table, nil
}

func isRGBHeader(rec []string) bool {
	if len(rec) != 3 {
		return false
	}
	for i, want := range []string{"r", "g", "b"} {
		if strings.ToLower(strings.TrimSpace(rec[i])) != want {
			return false
		}
	}
	return true
}

func parseRGB(rec []string) (domain.RGB, error) {
	var v [3]float64
	for i := range v {
		f, err := parseFloat(rec[i])
		if err != nil {
			return domain.RGB{}, err
		}
		v[i] = f
	}
	return domain.RGB{R: v[0], G: v[1], B: v[2]}, nil
}

func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidInput, s)
	}
	return f, nil
}

// WriteTable writes an "r,g,b" header and one row per index.
func (c *CSV) WriteTable(w io.Writer, table domain.ColorTable) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("r,g,b\n")
	for _, rgb := range table {
		fmt.Fprintf(bw, "%s,%s,%s\n",
			domain.FormatDecimal(rgb.R),
			domain.FormatDecimal(rgb.G),
			domain.FormatDecimal(rgb.B))
	}
	return bw.Flush()
}

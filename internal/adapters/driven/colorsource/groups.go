package colorsource

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/custodia-labs/chromcmm/internal/core/domain"
)

// ReadGroups reads a headered CSV where each column lists the bin indices of
// one group. Columns may be ragged; blank cells are skipped.
func (c *CSV) ReadGroups(r io.Reader) (domain.Groups, error) {
	cr := newReader(r)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: groups file is empty", domain.ErrInvalidInput)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	names, err := columnNames(header)
	if err != nil {
		return nil, err
	}

	groups := make(domain.Groups, len(names))
	for i, name := range names {
		groups[i] = domain.Group{Name: name}
	}

	for row := 2; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		if len(rec) > len(names) {
			return nil, fmt.Errorf("%w: row %d has %d fields, header has %d",
				domain.ErrInvalidInput, row, len(rec), len(names))
		}
		for col, cell := range rec {
			if strings.TrimSpace(cell) == "" {
				continue
			}
			idx, err := parseIndex(cell)
			if err != nil {
				return nil, fmt.Errorf("row %d, group %q: %w", row, names[col], err)
			}
			groups[col].Members = append(groups[col].Members, idx)
		}
	}
	return groups, nil
}

// parseIndex accepts integers and integral floats ("3.0"), which is how
// ragged columns come back from spreadsheet tools.
func parseIndex(s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("%w: negative index %d", domain.ErrInvalidInput, n)
		}
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || f < 0 || f > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %q is not a bin index", domain.ErrInvalidInput, s)
	}
	return int(f), nil
}

// ReadGroupColors reads a headered CSV with one column per group and three
// rows holding the red, green and blue channels.
func (c *CSV) ReadGroupColors(r io.Reader) (map[string]domain.RGB, error) {
	cr := newReader(r)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: colors file is empty", domain.ErrInvalidInput)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	names, err := columnNames(header)
	if err != nil {
		return nil, err
	}

	var channels [][]string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		if len(rec) != len(names) {
			return nil, fmt.Errorf("%w: colors row has %d fields, header has %d",
				domain.ErrInvalidInput, len(rec), len(names))
		}
		channels = append(channels, rec)
	}
	if len(channels) != 3 {
		return nil, fmt.Errorf("%w: colors file has %d rows, want 3 (red, green, blue)",
			domain.ErrInvalidInput, len(channels))
	}

	colors := make(map[string]domain.RGB, len(names))
	for col, name := range names {
		rgb, err := parseRGB([]string{channels[0][col], channels[1][col], channels[2][col]})
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", name, err)
		}
		colors[name] = rgb
	}
	return colors, nil
}

func columnNames(header []string) ([]string, error) {
	names := make([]string, len(header))
	seen := make(map[string]bool, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if name == "" {
			return nil, fmt.Errorf("%w: column %d has no name", domain.ErrInvalidInput, i+1)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: duplicate column %q", domain.ErrInvalidInput, name)
		}
		seen[name] = true
		names[i] = name
	}
	return names, nil
}

// WriteGroups writes one column per group, padding short columns with
// blank cells.
func (c *CSV) WriteGroups(w io.Writer, groups domain.Groups) error {
	cw := csv.NewWriter(w)

	header := make([]string, len(groups))
	rows := 0
	for i, g := range groups {
		header[i] = g.Name
		rows = max(rows, len(g.Members))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	rec := make([]string, len(groups))
	for row := 0; row < rows; row++ {
		for i, g := range groups {
			rec[i] = ""
			if row < len(g.Members) {
				rec[i] = strconv.Itoa(g.Members[row])
			}
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

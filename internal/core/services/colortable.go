package services

import (
	"context"
	"fmt"
	"io"
	"math"

	"github.com/custodia-labs/chromcmm/internal/core/domain"
	"github.com/custodia-labs/chromcmm/internal/core/ports/driven"
	"github.com/custodia-labs/chromcmm/internal/core/ports/driving"
	"github.com/custodia-labs/chromcmm/internal/logger"
)

// Ensure ColorTableService implements the interface.
var _ driving.ColorTableService = (*ColorTableService)(nil)

// badColor is given to track values that cannot be normalised (NaN, Inf).
var badColor = domain.RGB{}

// ColorTableService builds colour tables from the three colour sources.
type ColorTableService struct {
	files     driven.FileStore
	tables    driven.ColorTableCodec
	groups    driven.GroupCodec
	tracks    driven.TrackReader
	colormaps driven.ColormapRegistry
	settings  driving.SettingsService
}

// NewColorTableService creates a new colour table service.
// settings may be nil, in which case built-in defaults apply.
func NewColorTableService(
	files driven.FileStore,
	tables driven.ColorTableCodec,
	groups driven.GroupCodec,
	tracks driven.TrackReader,
	colormaps driven.ColormapRegistry,
	settings driving.SettingsService,
) *ColorTableService {
	return &ColorTableService{
		files:     files,
		tables:    tables,
		groups:    groups,
		tracks:    tracks,
		colormaps: colormaps,
		settings:  settings,
	}
}

// Build produces the colour table for a source.
func (s *ColorTableService) Build(ctx context.Context, src driving.ColorSource) (domain.ColorTable, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Section("Color Table")
	logger.Debug("Source: %s", src.Kind)

	switch src.Kind {
	case driving.ColorSourceDirect:
		return s.direct(src.TablePath)
	case driving.ColorSourceGroups:
		return s.fromGroups(src.GroupsPath, src.ColorsPath)
	default:
		return s.fromTrack(src)
	}
}

func (s *ColorTableService) direct(path string) (domain.ColorTable, error) {
	var table domain.ColorTable
	err := readWith(s.files, path, func(r io.Reader) error {
		var err error
		table, err = s.tables.ReadTable(r)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("read rgb table: %w", err)
	}
	logger.Debug("Read %d rows from %s", table.Len(), path)
	return table, nil
}

func (s *ColorTableService) fromGroups(groupsPath, colorsPath string) (domain.ColorTable, error) {
	var groups domain.Groups
	err := readWith(s.files, groupsPath, func(r io.Reader) error {
		var err error
		groups, err = s.groups.ReadGroups(r)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("read groups: %w", err)
	}

	var colors map[string]domain.RGB
	err = readWith(s.files, colorsPath, func(r io.Reader) error {
		var err error
		colors, err = s.groups.ReadGroupColors(r)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("read group colors: %w", err)
	}

	logger.Debug("Read %d groups", len(groups))
	return GroupTable(groups, colors)
}

func (s *ColorTableService) fromTrack(src driving.ColorSource) (domain.ColorTable, error) {
	name := src.Colormap
	if name == "" {
		name = s.defaultColormap()
	}
	cmap, err := s.colormaps.Lookup(name)
	if err != nil {
		return nil, err
	}

	values, err := s.readTrack(src.TrackPath, src.TrackInput)
	if err != nil {
		return nil, err
	}
	logger.Debug("Read %d track values, colormap %s", len(values), name)
	return TrackTable(values, cmap)
}

func (s *ColorTableService) readTrack(path string, in io.Reader) ([]float64, error) {
	if path == "" {
		if in == nil {
			return nil, fmt.Errorf("%w: no track input", domain.ErrInvalidInput)
		}
		values, err := s.tracks.ReadTrack(in)
		if err != nil {
			return nil, fmt.Errorf("read track: %w", err)
		}
		return values, nil
	}

	var values []float64
	err := readWith(s.files, path, func(r io.Reader) error {
		var err error
		values, err = s.tracks.ReadTrack(r)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("read track: %w", err)
	}
	return values, nil
}

func (s *ColorTableService) defaultColormap() string {
	if s.settings != nil {
		if settings, err := s.settings.Get(); err == nil && settings.Track.Colormap != "" {
			return settings.Track.Colormap
		}
	}
	return domain.DefaultColormap
}

// WriteTable writes a table as an r,g,b CSV.
func (s *ColorTableService) WriteTable(w io.Writer, table domain.ColorTable) error {
	return s.tables.WriteTable(w, table)
}

// Compartments splits an eigenvector track into A and B groups.
func (s *ColorTableService) Compartments(ctx context.Context, path string, in io.Reader) (domain.Groups, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	values, err := s.readTrack(path, in)
	if err != nil {
		return nil, err
	}
	groups := SplitCompartments(values)
	logger.Info("Summary: total bins: %d, length A: %d, length B: %d",
		len(values), len(groups[0].Members), len(groups[1].Members))
	return groups, nil
}

// WriteGroups writes groups as a CSV consumable by the groups source.
func (s *ColorTableService) WriteGroups(w io.Writer, groups domain.Groups) error {
	return s.groups.WriteGroups(w, groups)
}

// Colormaps lists the available colormap names.
func (s *ColorTableService) Colormaps() []string {
	return s.colormaps.Names()
}

// GroupTable colours every member index with its group's colour.
//
// The table spans 0..max(index) and starts white. Groups are applied in
// order, so an index in two groups takes the later group's colour.
func GroupTable(groups domain.Groups, colors map[string]domain.RGB) (domain.ColorTable, error) {
	table := domain.NewWhiteTable(groups.MaxIndex() + 1)
	for _, g := range groups {
		c, ok := colors[g.Name]
		if !ok {
			return nil, fmt.Errorf("%w: group %q has no color", domain.ErrInvalidInput, g.Name)
		}
		for _, idx := range g.Members {
			if idx < 0 {
				return nil, fmt.Errorf("%w: group %q has negative index %d", domain.ErrInvalidInput, g.Name, idx)
			}
			table[idx] = c
		}
	}
	return table, nil
}

// TrackTable normalises values linearly to [min, max] and maps each through
// cmap, one entry per value. A constant track maps every value to 0.
// Non-finite values get the bad colour (black).
func TrackTable(values []float64, cmap driven.Colormap) (domain.ColorTable, error) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if !finite(v) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo > hi {
		return nil, domain.ErrEmptyTrack
	}

	table := make(domain.ColorTable, len(values))
	for i, v := range values {
		if !finite(v) {
			table[i] = badColor
			continue
		}
		t := 0.0
		if hi > lo {
			t = (v - lo) / (hi - lo)
		}
		c, err := cmap.At(t)
		if err != nil {
			return nil, fmt.Errorf("colormap value %d: %w", i, err)
		}
		table[i] = c
	}
	return table, nil
}

// SplitCompartments puts positive bins in group A and negative bins in
// group B. Zero and NaN bins belong to neither.
func SplitCompartments(values []float64) domain.Groups {
	a := domain.Group{Name: "A", Members: []int{}}
	b := domain.Group{Name: "B", Members: []int{}}
	for i, v := range values {
		switch {
		case v > 0:
			a.Members = append(a.Members, i)
		case v < 0:
			b.Members = append(b.Members, i)
		}
	}
	return domain.Groups{a, b}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// readWith opens path and hands the reader to fn.
func readWith(files driven.FileStore, path string, fn func(io.Reader) error) error {
	f, err := files.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return fn(f)
}

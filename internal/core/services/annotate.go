package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/custodia-labs/chromcmm/internal/core/domain"
	"github.com/custodia-labs/chromcmm/internal/core/ports/driven"
	"github.com/custodia-labs/chromcmm/internal/core/ports/driving"
	"github.com/custodia-labs/chromcmm/internal/logger"
)

// Ensure AnnotateService implements the interface.
var _ driving.AnnotateService = (*AnnotateService)(nil)

// Warning messages carried in domain.AnnotateResult.
const (
	WarnNoMarkersUpdated = "no markers updated: did the marker file contain any markers?"
	warnSkippedLinks     = "skipped %d links referencing missing markers"
)

// AnnotateService runs the marker file pipeline.
type AnnotateService struct {
	files    driven.FileStore
	codec    driven.DocumentCodec
	labels   driven.LabelReader
	palettes driven.PaletteReader
	tables   driving.ColorTableService
	settings driving.SettingsService
}

// NewAnnotateService creates a new annotate service.
// settings may be nil, in which case built-in defaults apply.
func NewAnnotateService(
	files driven.FileStore,
	codec driven.DocumentCodec,
	labels driven.LabelReader,
	palettes driven.PaletteReader,
	tables driving.ColorTableService,
	settings driving.SettingsService,
) *AnnotateService {
	return &AnnotateService{
		files:    files,
		codec:    codec,
		labels:   labels,
		palettes: palettes,
		tables:   tables,
		settings: settings,
	}
}

// Annotate parses the input, applies the requested colour source and link
// chains, and writes the result. Output is assembled in memory and only
// written once every step succeeded.
func (s *AnnotateService) Annotate(ctx context.Context, req driving.AnnotateRequest) (*domain.AnnotateResult, error) {
	if req.InputPath == "" {
		return nil, fmt.Errorf("%w: no input marker file", domain.ErrInvalidInput)
	}
	if req.OutputPath == "" && req.Stdout == nil {
		return nil, fmt.Errorf("%w: no output destination", domain.ErrInvalidInput)
	}

	settings := s.currentSettings()

	logger.Section("Parse")
	// Link-only runs never rewrite markers and skip attribute tokenising.
	decode := s.codec.Decode
	if req.Colors == nil {
		decode = s.codec.Scan
	}

	var doc *domain.Document
	err := readWith(s.files, req.InputPath, func(r io.Reader) error {
		var err error
		doc, err = decode(r)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", req.InputPath, err)
	}
	logger.Debug("Lines: %d, markers: %d", len(doc.Lines()), doc.MarkerCount())

	result := &domain.AnnotateResult{Markers: doc.MarkerCount()}

	if req.Colors != nil {
		if err := s.colorize(ctx, doc, *req.Colors, result); err != nil {
			return nil, err
		}
	}

	var links []domain.Link
	if req.WantsLinks() {
		links, err = s.links(ctx, doc, req, settings, result)
		if err != nil {
			return nil, err
		}
	}

	if req.MarkersOnly {
		doc.DropOpaque()
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Section("Write")
	var buf bytes.Buffer
	if err := s.codec.Encode(&buf, doc, links); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}

	if req.OutputPath != "" {
		if err := s.files.WriteFile(req.OutputPath, buf.Bytes()); err != nil {
			return nil, fmt.Errorf("write %s: %w", req.OutputPath, err)
		}
		result.Output = req.OutputPath
	} else {
		if _, err := req.Stdout.Write(buf.Bytes()); err != nil {
			return nil, fmt.Errorf("write output: %w", err)
		}
		result.Output = "-"
	}
	logger.Debug("Wrote %d bytes to %s", buf.Len(), result.Output)

	return result, nil
}

func (s *AnnotateService) colorize(
	ctx context.Context, doc *domain.Document, src driving.ColorSource, result *domain.AnnotateResult,
) error {
	logger.Section("Colorize")
	if err := s.codec.CheckWellFormed(doc); err != nil {
		return err
	}

	table, err := s.tables.Build(ctx, src)
	if err != nil {
		return fmt.Errorf("build color table: %w", err)
	}

	stats, err := Colorize(ctx, doc, table)
	if err != nil {
		return fmt.Errorf("colorize: %w", err)
	}
	result.Colored = stats.Updated
	logger.Info("Colored %d of %d markers", stats.Updated, stats.Markers)

	if stats.Updated == 0 {
		result.Warnings = append(result.Warnings, WarnNoMarkersUpdated)
	}
	return nil
}

func (s *AnnotateService) links(
	ctx context.Context,
	doc *domain.Document,
	req driving.AnnotateRequest,
	settings domain.Settings,
	result *domain.AnnotateResult,
) ([]domain.Link, error) {
	logger.Section("Link Chains")

	var labels domain.ChromosomeLabels
	err := readWith(s.files, req.LabelsPath, func(r io.Reader) error {
		var err error
		labels, err = s.labels.ReadLabels(r)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("read labels: %w", err)
	}

	palette, err := s.palette(req.PalettePath, settings.Links.PalettePath)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	links, err := BuildLinks(labels, palette, settings.Links.Radius)
	if err != nil {
		return nil, fmt.Errorf("build links: %w", err)
	}
	logger.Debug("Bins: %d, chromosomes: %d, links: %d", len(labels), len(labels.Chromosomes()), len(links))

	kept := links[:0]
	skipped := 0
	for _, l := range links {
		if !doc.HasMarker(l.ID1) || !doc.HasMarker(l.ID2) {
			logger.Debug("Skipping link %d-%d: marker missing", l.ID1, l.ID2)
			skipped++
			continue
		}
		kept = append(kept, l)
	}

	result.Links = len(kept)
	result.SkippedLinks = skipped
	if skipped > 0 {
		result.Warnings = append(result.Warnings, fmt.Sprintf(warnSkippedLinks, skipped))
	}
	logger.Info("Added %d links", len(kept))
	return kept, nil
}

// palette resolves the palette override: the request path wins over the
// configured one, and the built-in palette applies when neither is set.
func (s *AnnotateService) palette(requested, configured string) (domain.Palette, error) {
	path := requested
	if path == "" {
		path = configured
	}
	if path == "" {
		return domain.DefaultPalette(), nil
	}

	var palette domain.Palette
	err := readWith(s.files, path, func(r io.Reader) error {
		var err error
		palette, err = s.palettes.ReadPalette(r)
		return err
	})
	if err != nil {
		return domain.Palette{}, fmt.Errorf("read palette: %w", err)
	}
	if palette.Len() == 0 {
		return domain.Palette{}, fmt.Errorf("read palette: %w: %s has no rows", domain.ErrInvalidInput, path)
	}
	logger.Debug("Palette override: %d chromosomes from %s", palette.Len(), path)
	return palette, nil
}

func (s *AnnotateService) currentSettings() domain.Settings {
	if s.settings == nil {
		return domain.DefaultSettings()
	}
	settings, err := s.settings.Get()
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Warn("Falling back to default settings: %v", err)
		}
		return domain.DefaultSettings()
	}
	return *settings
}

package driving

import (
	"context"
	"fmt"
	"io"

	"github.com/custodia-labs/chromcmm/internal/core/domain"
)

// ColorSourceKind identifies one of the colour table providers.
type ColorSourceKind string

// Available colour sources.
const (
	// ColorSourceDirect reads an r,g,b CSV as-is.
	ColorSourceDirect ColorSourceKind = "direct"

	// ColorSourceGroups colours bins by group membership.
	ColorSourceGroups ColorSourceKind = "groups"

	// ColorSourceTrack colours bins by a numeric track through a colormap.
	ColorSourceTrack ColorSourceKind = "track"
)

// ColorSource selects and configures a colour table provider.
type ColorSource struct {
	// Kind selects the provider.
	Kind ColorSourceKind

	// TablePath is the r,g,b CSV (direct).
	TablePath string

	// GroupsPath is the membership CSV (groups).
	GroupsPath string

	// ColorsPath is the group colour CSV (groups).
	ColorsPath string

	// TrackPath is the numeric track (track). Empty reads TrackInput.
	TrackPath string

	// TrackInput is read when TrackPath is empty.
	TrackInput io.Reader

	// Colormap is the colormap name (track). Empty uses the configured default.
	Colormap string
}

// Validate checks the source has the paths its kind needs.
func (s ColorSource) Validate() error {
	switch s.Kind {
	case ColorSourceDirect:
		if s.TablePath == "" {
			return fmt.Errorf("%w: direct color source needs an rgb table", domain.ErrInvalidInput)
		}
	case ColorSourceGroups:
		if s.GroupsPath == "" || s.ColorsPath == "" {
			return fmt.Errorf("%w: group color source needs groups and colors files", domain.ErrInvalidInput)
		}
	case ColorSourceTrack:
		if s.TrackPath == "" && s.TrackInput == nil {
			return fmt.Errorf("%w: track color source needs a track", domain.ErrInvalidInput)
		}
	default:
		return fmt.Errorf("%w: unknown color source %q", domain.ErrInvalidInput, s.Kind)
	}
	return nil
}

// ColorTableService builds colour tables and the CSV artefacts around them.
type ColorTableService interface {
	// Build produces the colour table for a source.
	Build(ctx context.Context, src ColorSource) (domain.ColorTable, error)

	// WriteTable writes a table as an r,g,b CSV.
	WriteTable(w io.Writer, table domain.ColorTable) error

	// Compartments splits an eigenvector track into A (positive) and
	// B (negative) groups. Pass an empty path to read from in.
	Compartments(ctx context.Context, path string, in io.Reader) (domain.Groups, error)

	// WriteGroups writes groups as a CSV consumable by the groups source.
	WriteGroups(w io.Writer, groups domain.Groups) error

	// Colormaps lists the available colormap names.
	Colormaps() []string
}

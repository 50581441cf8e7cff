package domain

// DefaultColormap is the track colormap used when none is configured.
const DefaultColormap = "viridis"

// LinkSettings holds link generation configuration.
type LinkSettings struct {
	// Radius is the radius written on every synthesised link.
	Radius float64

	// PalettePath is an optional palette override CSV.
	PalettePath string
}

// TrackSettings holds track colouring configuration.
type TrackSettings struct {
	// Colormap is the default colormap name.
	Colormap string
}

// Settings holds user configuration.
type Settings struct {
	Links LinkSettings
	Track TrackSettings
}

// DefaultSettings returns settings with defaults applied.
func DefaultSettings() Settings {
	return Settings{
		Links: LinkSettings{
			Radius: DefaultLinkRadius,
		},
		Track: TrackSettings{
			Colormap: DefaultColormap,
		},
	}
}

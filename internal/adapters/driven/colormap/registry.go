// Package colormap resolves named continuous colormaps for track colouring.
package colormap

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/palette/moreland"

	"github.com/custodia-labs/chromcmm/internal/core/domain"
	"github.com/custodia-labs/chromcmm/internal/core/ports/driven"
)

// ReverseSuffix flips any registered map end to end.
const ReverseSuffix = "_r"

// Ensure Registry implements the interface.
var _ driven.ColormapRegistry = (*Registry)(nil)

// brewerSchemes lists the ColorBrewer scheme names served by the brewer package.
var brewerSchemes = []string{
	// sequential
	"Blues", "BuGn", "BuPu", "GnBu", "Greens", "Greys", "Oranges", "OrRd",
	"PuBu", "PuBuGn", "PuRd", "Purples", "RdPu", "Reds", "YlGn", "YlGnBu",
	"YlOrBr", "YlOrRd",
	// diverging
	"BrBG", "PiYG", "PRGn", "PuOr", "RdBu", "RdGy", "RdYlBu", "RdYlGn", "Spectral",
	// qualitative
	"Accent", "Dark2", "Paired", "Pastel1", "Pastel2", "Set1", "Set2", "Set3",
}

type builder func() (driven.Colormap, error)

// Registry holds the colormap builders keyed by name.
type Registry struct {
	builders map[string]builder
}

// NewRegistry creates a registry with every built-in colormap.
func NewRegistry() *Registry {
	r := &Registry{builders: make(map[string]builder)}

	for name, l := range map[string]lut{
		"viridis": viridis,
		"plasma":  plasma,
		"inferno": inferno,
		"magma":   magma,
	} {
		l := l
		r.builders[name] = func() (driven.Colormap, error) { return l, nil }
	}

	for name, fn := range map[string]func() palette.ColorMap{
		"coolwarm":           func() palette.ColorMap { return moreland.SmoothBlueRed() },
		"blackbody":          moreland.BlackBody,
		"extended_blackbody": moreland.ExtendedBlackBody,
		"kindlmann":          moreland.Kindlmann,
		"extended_kindlmann": moreland.ExtendedKindlmann,
	} {
		fn := fn
		r.builders[name] = func() (driven.Colormap, error) { return newGonum(fn()), nil }
	}

	for _, name := range brewerSchemes {
		name := name
		r.builders[name] = func() (driven.Colormap, error) { return newBrewer(name) }
	}
	return r
}

// Lookup returns the named colormap. A "_r" suffix reverses it.
func (r *Registry) Lookup(name string) (driven.Colormap, error) {
	if b, ok := r.builders[name]; ok {
		return b()
	}
	if base, ok := strings.CutSuffix(name, ReverseSuffix); ok {
		if b, ok := r.builders[base]; ok {
			cmap, err := b()
			if err != nil {
				return nil, err
			}
			return reversed{cmap}, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUnknownColormap, name)
}

// Names returns the registered names, sorted. Reversed variants are implied.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// gonumMap adapts a gonum palette.ColorMap spanning [0, 1].
type gonumMap struct {
	cmap palette.ColorMap
}

func newGonum(cmap palette.ColorMap) gonumMap {
	cmap.SetMin(0)
	cmap.SetMax(1)
	cmap.SetAlpha(1)
	return gonumMap{cmap: cmap}
}

func (g gonumMap) At(t float64) (domain.RGB, error) {
	if err := checkUnit(t); err != nil {
		return domain.RGB{}, err
	}
	c, err := g.cmap.At(t)
	if err != nil {
		return domain.RGB{}, fmt.Errorf("colormap at %v: %w", t, err)
	}
	cc, _ := colorful.MakeColor(c)
	return toRGB(cc.Clamped()), nil
}

// newBrewer interpolates across the largest class count the scheme offers.
func newBrewer(name string) (driven.Colormap, error) {
	var lastErr error
	for n := 12; n >= 3; n-- {
		p, err := brewer.GetPalette(brewer.TypeAny, name, n)
		if err != nil {
			lastErr = err
			continue
		}
		return lutFromColors(p.Colors()), nil
	}
	return nil, fmt.Errorf("%w: %q: %v", domain.ErrUnknownColormap, name, lastErr)
}

type reversed struct {
	inner driven.Colormap
}

func (r reversed) At(t float64) (domain.RGB, error) {
	if err := checkUnit(t); err != nil {
		return domain.RGB{}, err
	}
	return r.inner.At(1 - t)
}

package colormap

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/custodia-labs/chromcmm/internal/core/domain"
)

// lut is a colormap defined by evenly spaced control points, blended
// linearly in RGB.
type lut []colorful.Color

func newLUT(stops ...[3]uint8) lut {
	l := make(lut, len(stops))
	for i, s := range stops {
		l[i] = colorful.Color{R: float64(s[0]) / 255, G: float64(s[1]) / 255, B: float64(s[2]) / 255}
	}
	return l
}

// lutFromColors builds a lut from discrete colours such as a brewer scheme.
func lutFromColors(colors []color.Color) lut {
	l := make(lut, 0, len(colors))
	for _, c := range colors {
		cc, _ := colorful.MakeColor(c)
		l = append(l, cc)
	}
	return l
}

func (l lut) At(t float64) (domain.RGB, error) {
	if err := checkUnit(t); err != nil {
		return domain.RGB{}, err
	}
	if len(l) == 1 {
		return toRGB(l[0]), nil
	}

	pos := t * float64(len(l)-1)
	lower := int(pos)
	if lower >= len(l)-1 {
		return toRGB(l[len(l)-1]), nil
	}
	return toRGB(l[lower].BlendRgb(l[lower+1], pos-float64(lower))), nil
}

func checkUnit(t float64) error {
	if math.IsNaN(t) || t < 0 || t > 1 {
		return fmt.Errorf("%w: colormap position %v outside [0, 1]", domain.ErrInvalidInput, t)
	}
	return nil
}

func toRGB(c colorful.Color) domain.RGB {
	return domain.RGB{R: c.R, G: c.G, B: c.B}
}

// matplotlib perceptually uniform maps, sampled at evenly spaced stops.
var (
	viridis = newLUT(
		[3]uint8{68, 1, 84},
		[3]uint8{72, 35, 116},
		[3]uint8{64, 67, 135},
		[3]uint8{52, 94, 141},
		[3]uint8{41, 120, 142},
		[3]uint8{32, 144, 140},
		[3]uint8{34, 167, 132},
		[3]uint8{68, 190, 112},
		[3]uint8{121, 209, 81},
		[3]uint8{189, 222, 38},
		[3]uint8{253, 231, 37},
	)
	plasma = newLUT(
		[3]uint8{13, 8, 135},
		[3]uint8{75, 3, 161},
		[3]uint8{125, 3, 168},
		[3]uint8{168, 34, 150},
		[3]uint8{203, 70, 121},
		[3]uint8{229, 107, 93},
		[3]uint8{248, 148, 65},
		[3]uint8{253, 195, 40},
		[3]uint8{240, 249, 33},
	)
	inferno = newLUT(
		[3]uint8{0, 0, 4},
		[3]uint8{40, 11, 84},
		[3]uint8{101, 21, 110},
		[3]uint8{159, 42, 99},
		[3]uint8{212, 72, 66},
		[3]uint8{245, 125, 21},
		[3]uint8{250, 193, 39},
		[3]uint8{252, 255, 164},
	)
	magma = newLUT(
		[3]uint8{0, 0, 4},
		[3]uint8{28, 16, 68},
		[3]uint8{79, 18, 123},
		[3]uint8{129, 37, 129},
		[3]uint8{181, 54, 122},
		[3]uint8{229, 80, 100},
		[3]uint8{251, 135, 97},
		[3]uint8{254, 194, 135},
		[3]uint8{252, 253, 191},
	)
)

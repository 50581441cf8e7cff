package domain

// Palette maps chromosome ids (1-based) to 8-bit colours.
// A Palette is immutable once built.
type Palette struct {
	colors []RGB8
}

// defaultChromosomeColors are the Chromflock chromosome colours, 1 through 24.
var defaultChromosomeColors = [...]RGB8{
	{240, 163, 255},
	{0, 117, 220},
	{153, 63, 0},
	{76, 0, 92},
	{25, 25, 25},
	{0, 92, 49},
	{43, 206, 72},
	{255, 204, 153},
	{128, 128, 128},
	{148, 255, 181},
	{143, 124, 0},
	{157, 204, 0},
	{194, 0, 136},
	{0, 51, 128},
	{255, 164, 5},
	{255, 168, 187},
	{66, 102, 0},
	{255, 0, 16},
	{94, 241, 242},
	{0, 153, 143},
	{224, 255, 102},
	{116, 10, 255},
	{153, 0, 0},
	{255, 255, 128},
}

// DefaultPalette returns the built-in 24 chromosome palette.
func DefaultPalette() Palette {
	return NewPalette(defaultChromosomeColors[:])
}

// NewPalette builds a palette where rows[i] is the colour of chromosome i+1.
func NewPalette(rows []RGB8) Palette {
	colors := make([]RGB8, len(rows))
	copy(colors, rows)
	return Palette{colors: colors}
}

// Len returns the number of chromosomes with a colour.
func (p Palette) Len() int {
	return len(p.colors)
}

// Color8 returns the 8-bit colour of a chromosome.
func (p Palette) Color8(chromosome int) (RGB8, error) {
	if chromosome < 1 || chromosome > len(p.colors) {
		return RGB8{}, &PaletteError{Chromosome: chromosome, Size: len(p.colors)}
	}
	return p.colors[chromosome-1], nil
}

// Color returns the colour of a chromosome in the 0..1 range, rounded to
// 4 decimals.
func (p Palette) Color(chromosome int) (RGB, error) {
	c, err := p.Color8(chromosome)
	if err != nil {
		return RGB{}, err
	}
	return c.Unit(), nil
}

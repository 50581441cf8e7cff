package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPalette(t *testing.T) {
	p := DefaultPalette()

	assert.Equal(t, 24, p.Len())

	c, err := p.Color8(1)
	require.NoError(t, err)
	assert.Equal(t, RGB8{240, 163, 255}, c)

	c, err = p.Color8(24)
	require.NoError(t, err)
	assert.Equal(t, RGB8{255, 255, 128}, c)
}

func TestPalette_Color(t *testing.T) {
	p := DefaultPalette()

	c, err := p.Color(2)
	require.NoError(t, err)
	assert.Equal(t, RGB{R: 0, G: 0.4588, B: 0.8627}, c)
}

func TestPalette_OutOfRange(t *testing.T) {
	p := DefaultPalette()

	for _, chrom := range []int{0, 25} {
		_, err := p.Color(chrom)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrPaletteMissing))
	}
}

func TestNewPalette_Copies(t *testing.T) {
	rows := []RGB8{{1, 2, 3}}
	p := NewPalette(rows)
	rows[0] = RGB8{9, 9, 9}

	c, err := p.Color8(1)
	require.NoError(t, err)
	assert.Equal(t, RGB8{1, 2, 3}, c)
}

func TestDefaultPalette_Independent(t *testing.T) {
	a := DefaultPalette()
	a.colors[0] = RGB8{}

	c, err := DefaultPalette().Color8(1)
	require.NoError(t, err)
	assert.Equal(t, RGB8{240, 163, 255}, c)
}

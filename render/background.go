package render

import (
	"math/rand"

	"github.com/gdamore/tcell/v2"
)

// starLayer is one parallax depth: a fixed random star field scrolled
// horizontally at its own speed. Purely visual; it reads nothing from the
// simulation except the frame number.
type starLayer struct {
	xs    []int
	ys    []int
	glyph rune
	speed int // frames per one-cell scroll (larger = slower = farther)
	style tcell.Style
}

// Background draws the scrolling star field and the ground line.
type Background struct {
	layers []starLayer
	width  int
	height int
}

// NewBackground seeds the star layers for the given screen size. The fixed
// seed keeps the field stable across restarts.
func NewBackground(width, height int) *Background {
	rng := rand.New(rand.NewSource(7))
	bg := &Background{width: width, height: height}

	layerDefs := []struct {
		count int
		glyph rune
		speed int
		color tcell.Color
	}{
		{width / 10, '.', 8, tcell.ColorGray},
		{width / 16, '+', 4, tcell.ColorDarkGray},
		{width / 24, '*', 2, tcell.ColorSilver},
	}

	for _, def := range layerDefs {
		layer := starLayer{
			glyph: def.glyph,
			speed: def.speed,
			style: tcell.StyleDefault.Foreground(def.color),
		}
		for i := 0; i < def.count; i++ {
			layer.xs = append(layer.xs, rng.Intn(width))
			layer.ys = append(layer.ys, rng.Intn(height))
		}
		bg.layers = append(bg.layers, layer)
	}
	return bg
}

// Resize re-seeds the field for a new screen size.
func (bg *Background) Resize(width, height int) {
	*bg = *NewBackground(width, height)
}

// Draw renders the star layers, scrolled by the frame number, and the ground.
func (bg *Background) Draw(screen tcell.Screen, frame uint64, groundRow int) {
	if bg.width <= 0 {
		return
	}
	for _, layer := range bg.layers {
		offset := int(frame) / layer.speed
		for i := range layer.xs {
			x := (layer.xs[i] - offset) % bg.width
			if x < 0 {
				x += bg.width
			}
			if layer.ys[i] >= groundRow {
				continue
			}
			screen.SetContent(x, layer.ys[i], layer.glyph, nil, layer.style)
		}
	}

	groundStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	groundGlyphs := []rune{'▔', '▔', '▁', '▔'}
	offset := int(frame) / 2
	for x := 0; x < bg.width; x++ {
		g := groundGlyphs[(x+offset)%len(groundGlyphs)]
		screen.SetContent(x, groundRow, g, nil, groundStyle)
	}
}

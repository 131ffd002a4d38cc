package ui

import (
	"fmt"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette is the set of neon colours particles are drawn from. Entries keep
// the spelling they were configured with.
type Palette struct {
	hex    []string
	colors []colorful.Color
}

func NewPalette(hex []string) (Palette, error) {
	if len(hex) == 0 {
		return Palette{}, fmt.Errorf("empty palette")
	}
	p := Palette{hex: append([]string(nil), hex...)}
	for _, h := range hex {
		c, err := colorful.Hex(h)
		if err != nil {
			return Palette{}, fmt.Errorf("palette colour %q: %w", h, err)
		}
		p.colors = append(p.colors, c)
	}
	return p, nil
}

func (p Palette) Len() int { return len(p.hex) }

// Pick returns a uniformly chosen colour.
func (p Palette) Pick(r *rand.Rand) string {
	return p.hex[r.Intn(len(p.hex))]
}

// Contains reports whether css names a palette colour, in any spelling.
func (p Palette) Contains(css string) bool {
	c, err := colorful.Hex(css)
	if err != nil {
		return false
	}
	for _, pc := range p.colors {
		if pc.AlmostEqualRgb(c) {
			return true
		}
	}
	return false
}

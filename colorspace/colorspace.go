package colorspace

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/sgostarter/libsketch/mathutils"
)

type RGB struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
}

// HSL holds hue in degrees [0,360) and saturation/lightness in [0,1].
type HSL struct {
	H float64 `json:"h" yaml:"h"`
	S float64 `json:"s" yaml:"s"`
	L float64 `json:"l" yaml:"l"`
}

func ParseHex(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, err
	}

	return fromColorful(c), nil
}

func (c RGB) Hex() string {
	return c.colorful().Hex()
}

func (c RGB) ToHSL() HSL {
	h, s, l := c.colorful().Hsl()

	return HSL{H: h, S: s, L: l}
}

func (h HSL) ToRGB() RGB {
	return fromColorful(colorful.Hsl(h.H, h.S, h.L).Clamped())
}

// Blend mixes two colors at fraction t in perceptual HCL space, which keeps
// the midpoints from turning muddy the way naive RGB averaging does.
func Blend(a, b RGB, t float64) RGB {
	t = mathutils.Fraction(t)

	return fromColorful(a.colorful().BlendHcl(b.colorful(), t).Clamped())
}

func Lighten(c RGB, amount float64) RGB {
	h := c.ToHSL()
	h.L = mathutils.Fraction(h.L + amount)

	return h.ToRGB()
}

func Darken(c RGB, amount float64) RGB {
	return Lighten(c, -amount)
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.RGB255()

	return RGB{R: r, G: g, B: b}
}

package scene

import (
	"image/color"
	"math"
)

const (
	ambient   = 0x40 / 255.0
	shininess = 50.0
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Shade returns the body colour lit at the given level, where 0 is the unlit
// rim and 1 faces the light head-on. Ambient, diffuse and a white specular
// term are summed per channel.
func Shade(base color.RGBA, level float64) color.RGBA {
	level = clamp01(level)
	diffuse := ambient + (1-ambient)*level
	specular := math.Pow(level, shininess)
	ch := func(c uint8) uint8 {
		return uint8(math.Round(clamp01(float64(c)/255*diffuse+specular) * 255))
	}
	return color.RGBA{R: ch(base.R), G: ch(base.G), B: ch(base.B), A: 255}
}

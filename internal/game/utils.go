package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/rocket-mass-visualization/internal/scene"
	"github.com/iburimskiy/rocket-mass-visualization/internal/ui"
)

const shadeBands = 24

var (
	trackColor   = color.RGBA{R: 60, G: 70, B: 90, A: 255}
	fillColor    = color.RGBA{R: 100, G: 120, B: 160, A: 255}
	focusColor   = color.RGBA{R: 150, G: 170, B: 200, A: 255}
	knobColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	knobRimColor = color.RGBA{R: 100, G: 110, B: 130, A: 255}
)

// drawSphere fakes a lit sphere with concentric discs that shrink toward
// the highlight.
func drawSphere(screen *ebiten.Image, cx, cy, r, dx, dy float64, base color.RGBA) {
	if !(r > 0) {
		return
	}
	for i := 0; i < shadeBands; i++ {
		f := float64(i) / shadeBands
		br := r * (1 - f)
		off := (r - br) * 0.6
		clr := scene.Shade(base, float64(i)/(shadeBands-1))
		vector.DrawFilledCircle(screen, float32(cx+dx*off), float32(cy+dy*off), float32(br), clr, true)
	}
}

func drawSlider(screen *ebiten.Image, s *ui.Slider) {
	x, y, w, h := s.Bounds()
	trackY := y + h/2 - 2
	vector.DrawFilledRect(screen, float32(x), float32(trackY), float32(w), 4, trackColor, false)
	vector.DrawFilledRect(screen, float32(x), float32(trackY), float32(w*s.Fraction()), 4, fillColor, false)
	if s.Focused() {
		vector.StrokeRect(screen, float32(x-2), float32(y), float32(w+4), float32(h), 1, focusColor, false)
	}
	kx := x + w*s.Fraction()
	vector.DrawFilledCircle(screen, float32(kx), float32(y+h/2), 7, knobColor, true)
	vector.StrokeCircle(screen, float32(kx), float32(y+h/2), 7, 2, knobRimColor, true)
}

func drawLabel(screen *ebiten.Image, l ui.Label) {
	ebitenutil.DebugPrintAt(screen, l.Text, int(l.X), int(l.Y))
}

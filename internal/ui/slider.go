// Package ui has the slider and label widgets drawn over the scene.
package ui

import (
	"math"

	"github.com/iburimskiy/rocket-mass-visualization/internal/config"
)

const (
	SliderWidth  = 200
	SliderHeight = 16

	// Distance from the bottom edge to the slider and to its label.
	sliderBottom = 10
	labelBottom  = 50
)

// Pointer is the mouse state for one tick.
type Pointer struct {
	X, Y        int
	Pressed     bool
	JustPressed bool
}

// Slider is a horizontal range control. Value always lies on the step grid
// inside [Min, Max].
type Slider struct {
	Caption string
	Unit    string
	Min     float64
	Max     float64
	Step    float64
	Value   float64

	// Horizontal centre as a fraction of the viewport width.
	Anchor float64

	CenterX float64
	Y       float64 // top of the hit box

	dragging bool
	focused  bool
}

// NewSlider builds a slider over r starting at value.
func NewSlider(caption, unit string, r config.Range, value, anchor float64) *Slider {
	s := &Slider{
		Caption: caption,
		Unit:    unit,
		Min:     r.Min,
		Max:     r.Max,
		Step:    r.Step,
		Anchor:  anchor,
	}
	s.Value = s.snap(value)
	return s
}

// Layout positions the slider for a w x h viewport.
func (s *Slider) Layout(w, h int) {
	s.CenterX = s.Anchor * float64(w)
	s.Y = float64(h) - sliderBottom - SliderHeight
}

// Bounds returns the hit box.
func (s *Slider) Bounds() (x, y, w, h float64) {
	return s.CenterX - SliderWidth/2, s.Y, SliderWidth, SliderHeight
}

// Contains reports whether the pixel lies within the hit box.
func (s *Slider) Contains(px, py int) bool {
	x, y, w, h := s.Bounds()
	fx, fy := float64(px), float64(py)
	return fx >= x && fx <= x+w && fy >= y && fy <= y+h
}

// Fraction is the knob position along the track, 0 at Min and 1 at Max.
func (s *Slider) Fraction() float64 {
	return (s.Value - s.Min) / (s.Max - s.Min)
}

// Focused reports whether arrow keys act on this slider.
func (s *Slider) Focused() bool { return s.focused }

// Focus moves keyboard focus to or away from the slider.
func (s *Slider) Focus(on bool) { s.focused = on }

// Handle applies the pointer and reports whether the value changed. Every
// change during a drag is reported.
func (s *Slider) Handle(p Pointer) bool {
	if p.JustPressed {
		s.dragging = s.Contains(p.X, p.Y)
		s.focused = s.dragging
	}
	if !p.Pressed {
		s.dragging = false
		return false
	}
	if !s.dragging {
		return false
	}
	x, _, w, _ := s.Bounds()
	f := clamp01((float64(p.X) - x) / w)
	return s.Set(s.Min + f*(s.Max-s.Min))
}

// Nudge moves the value by n steps and reports whether it changed.
func (s *Slider) Nudge(n int) bool {
	return s.Set(s.Value + float64(n)*s.Step)
}

// Set snaps v to the grid and reports whether the value changed.
func (s *Slider) Set(v float64) bool {
	v = s.snap(v)
	if v == s.Value {
		return false
	}
	s.Value = v
	return true
}

// Label is the text shown above the slider: the raw value and its unit.
func (s *Slider) Label() Label {
	text := s.Caption + ": " + FormatRaw(s.Value) + " " + s.Unit
	return Label{
		Text: text,
		X:    s.CenterX - TextWidth(text)/2,
		Y:    s.Y + SliderHeight + sliderBottom - labelBottom - LineHeight,
	}
}

func (s *Slider) snap(v float64) float64 {
	if math.IsNaN(v) {
		return s.Min
	}
	v = s.Min + math.Round((v-s.Min)/s.Step)*s.Step
	return math.Max(s.Min, math.Min(s.Max, v))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

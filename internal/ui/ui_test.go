package ui

import (
	"math"
	"testing"

	"github.com/iburimskiy/rocket-mass-visualization/internal/config"
)

func deltaVSlider() *Slider {
	s := NewSlider("Delta Velocity", "m/s", config.Range{Min: 2000, Max: 12000, Step: 100}, 7600, 0.75)
	s.Layout(800, 600)
	return s
}

func TestSliderSnapAndClamp(t *testing.T) {
	s := deltaVSlider()
	for _, tc := range []struct {
		in, exp float64
	}{
		{7649, 7600},
		{7651, 7700},
		{100, 2000},
		{99999, 12000},
		{math.NaN(), 2000},
	} {
		s.Set(tc.in)
		if s.Value != tc.exp {
			t.Fatalf("Set(%v) -> %v, expected %v", tc.in, s.Value, tc.exp)
		}
	}
}

func TestSliderLayout(t *testing.T) {
	s := deltaVSlider()
	x, y, w, h := s.Bounds()
	if s.CenterX != 600 || x != 500 || w != SliderWidth {
		t.Fatalf("horizontal layout x=%f w=%f centre=%f", x, w, s.CenterX)
	}
	if y+h != 590 {
		t.Fatalf("slider bottom at %f", y+h)
	}
	l := s.Label()
	if l.Y+LineHeight != 550 {
		t.Fatalf("label bottom at %f", l.Y+LineHeight)
	}
	if l.X+TextWidth(l.Text)/2 != 600 {
		t.Fatal("label not centred on slider")
	}
}

func TestSliderDrag(t *testing.T) {
	s := deltaVSlider()
	x, y, w, _ := s.Bounds()
	py := int(y) + 4

	// Press outside does nothing.
	if s.Handle(Pointer{X: 10, Y: 10, Pressed: true, JustPressed: true}) {
		t.Fatal("press outside changed the value")
	}
	if s.Handle(Pointer{X: int(x), Y: py, Pressed: true}) {
		t.Fatal("drag without grab changed the value")
	}

	if !s.Handle(Pointer{X: int(x), Y: py, Pressed: true, JustPressed: true}) || s.Value != 2000 {
		t.Fatalf("press at left edge -> %v", s.Value)
	}
	if !s.Focused() {
		t.Fatal("grabbed slider not focused")
	}
	// Dragging past the end keeps reporting until clamped.
	if !s.Handle(Pointer{X: int(x + w/2), Y: 0, Pressed: true}) || s.Value != 7000 {
		t.Fatalf("drag to middle -> %v", s.Value)
	}
	if !s.Handle(Pointer{X: int(x + 2*w), Y: 0, Pressed: true}) || s.Value != 12000 {
		t.Fatalf("drag past end -> %v", s.Value)
	}
	if s.Handle(Pointer{X: int(x + 3*w), Y: 0, Pressed: true}) {
		t.Fatal("clamped drag reported a change")
	}
	if s.Handle(Pointer{X: int(x), Y: py}) {
		t.Fatal("release reported a change")
	}
	if s.Handle(Pointer{X: int(x), Y: py, Pressed: true}) {
		t.Fatal("moving after release changed the value")
	}
}

func TestSliderNudge(t *testing.T) {
	s := deltaVSlider()
	if !s.Nudge(1) || s.Value != 7700 {
		t.Fatalf("nudge up -> %v", s.Value)
	}
	s.Set(2000)
	if s.Nudge(-1) {
		t.Fatal("nudge below min reported a change")
	}
}

func TestFormat(t *testing.T) {
	if got := FormatRaw(7600); got != "7600" {
		t.Fatal(got)
	}
	if got := FormatRaw(1); got != "1" {
		t.Fatal(got)
	}
	if got := FormatTons(15.0938); got != "15.1 tons" {
		t.Fatal(got)
	}
	if got := FormatTons(1); got != "1.0 tons" {
		t.Fatal(got)
	}
	s := NewSlider("Dry Mass", "tons", config.Range{Min: 1, Max: 20, Step: 1}, 1, 0.25)
	if got := s.Label().Text; got != "Dry Mass: 1 tons" {
		t.Fatal(got)
	}
}

package scene

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/iburimskiy/rocket-mass-visualization/internal/config"
)

var (
	DryColor = color.RGBA{R: 0xff, A: 0xff}
	WetColor = color.RGBA{R: 0xff, G: 0xff, A: 0xff}
)

// Body is one sphere. Radius is the eased scale applied to the base
// Geometry radius and starts at 1; Target is the value it eases toward.
type Body struct {
	Name     string
	Position mgl64.Vec3
	Geometry float64
	Color    color.RGBA

	Radius   float64
	Velocity float64
	Target   float64
}

// WorldRadius is the drawn sphere radius in world units.
func (b *Body) WorldRadius() float64 {
	return b.Geometry * b.Radius
}

// Scene owns the camera, the viewport and both bodies.
type Scene struct {
	Camera   *Camera
	Viewport Viewport
	Light    mgl64.Vec3
	Dry      *Body
	Wet      *Body

	easer Easer
}

// New builds the scene for a viewport of w x h pixels.
func New(cfg config.Config, w, h int) *Scene {
	vp := Viewport{Width: w, Height: h}
	var easer Easer = LerpEaser{Factor: cfg.Animation.Factor}
	if cfg.Animation.Easing == "spring" {
		easer = NewSpringEaser(cfg.Animation.TPS, cfg.Animation.SpringFrequency, cfg.Animation.SpringDamping)
	}
	return &Scene{
		Camera:   NewCamera(cfg.Camera.FOV, cfg.Camera.Near, cfg.Camera.Far, cfg.Camera.Z, vp.Aspect()),
		Viewport: vp,
		Light:    mgl64.Vec3{0, 5, 5},
		Dry: &Body{
			Name:     "dry",
			Position: mgl64.Vec3{config.DryBodyX, 0, 0},
			Geometry: 0.3,
			Color:    DryColor,
			Radius:   1,
		},
		Wet: &Body{
			Name:     "wet",
			Position: mgl64.Vec3{config.WetBodyX, 0, 0},
			Geometry: 0.6,
			Color:    WetColor,
			Radius:   1,
		},
		easer: easer,
	}
}

// Bodies returns dry then wet.
func (s *Scene) Bodies() []*Body {
	return []*Body{s.Dry, s.Wet}
}

// SetTargets sets the radius each body eases toward.
func (s *Scene) SetTargets(dry, wet float64) {
	s.Dry.Target = dry
	s.Wet.Target = wet
}

// Step advances both bodies by one frame of easing.
func (s *Scene) Step() {
	for _, b := range s.Bodies() {
		b.Radius, b.Velocity = s.easer.Ease(b.Radius, b.Velocity, b.Target)
	}
}

// Resize updates the camera aspect and the output size together. It reports
// whether anything changed.
func (s *Scene) Resize(w, h int) bool {
	if w <= 0 || h <= 0 {
		return false
	}
	if s.Viewport.Width == w && s.Viewport.Height == h {
		return false
	}
	s.Viewport = Viewport{Width: w, Height: h}
	s.Camera.SetAspect(s.Viewport.Aspect())
	return true
}

// ScreenPosition projects the body centre to pixels, shifted by the offset.
func (s *Scene) ScreenPosition(b *Body, offsetX, offsetY float64) (x, y float64) {
	return s.Viewport.ToPixel(s.Camera.Project(b.Position), offsetX, offsetY)
}

// ScreenRadius is the body's drawn radius in pixels.
func (s *Scene) ScreenRadius(b *Body) float64 {
	d := s.Camera.Eye.Sub(b.Position).Len()
	return b.WorldRadius() * s.Camera.PixelsPerUnit(d, s.Viewport.Height)
}

// HighlightDir is the unit screen-space direction from the body centre
// toward the light, with y growing downwards.
func (s *Scene) HighlightDir(b *Body) (dx, dy float64) {
	d := s.Light.Sub(b.Position)
	n := math.Hypot(d.X(), d.Y())
	if n == 0 {
		return 0, 0
	}
	return d.X() / n, -d.Y() / n
}

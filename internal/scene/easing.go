package scene

import "github.com/charmbracelet/harmonica"

// Easer moves a value one frame toward its target. Velocity is carried for
// easers that need it and ignored by those that don't.
type Easer interface {
	Ease(current, velocity, target float64) (float64, float64)
}

// Lerp returns a + t*(b-a).
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// LerpEaser closes a fixed fraction of the remaining gap every frame. For a
// factor in (0,1] it never overshoots.
type LerpEaser struct {
	Factor float64
}

func (e LerpEaser) Ease(current, _, target float64) (float64, float64) {
	return Lerp(current, target, e.Factor), 0
}

// SpringEaser animates with a damped spring.
type SpringEaser struct {
	spring harmonica.Spring
}

// NewSpringEaser builds a spring stepped at tps frames per second.
func NewSpringEaser(tps int, frequency, damping float64) SpringEaser {
	return SpringEaser{spring: harmonica.NewSpring(harmonica.FPS(tps), frequency, damping)}
}

func (e SpringEaser) Ease(current, velocity, target float64) (float64, float64) {
	return e.spring.Update(current, velocity, target)
}

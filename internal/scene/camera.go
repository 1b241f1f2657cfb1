// Package scene is the 3D side of the visualizer: a perspective camera, the
// two mass bodies and the per-frame easing of their size.
package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a perspective camera on the +Z axis looking at the origin.
type Camera struct {
	FOV    float64 // vertical, degrees
	Near   float64
	Far    float64
	Aspect float64
	Eye    mgl64.Vec3

	view       mgl64.Mat4
	projection mgl64.Mat4
}

// NewCamera places the camera at (0, 0, z).
func NewCamera(fov, near, far, z, aspect float64) *Camera {
	c := &Camera{
		FOV:  fov,
		Near: near,
		Far:  far,
		Eye:  mgl64.Vec3{0, 0, z},
	}
	c.view = mgl64.LookAtV(c.Eye, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 1, 0})
	c.SetAspect(aspect)
	return c
}

// SetAspect changes the aspect ratio and rebuilds the projection matrix.
func (c *Camera) SetAspect(aspect float64) {
	c.Aspect = aspect
	c.projection = mgl64.Perspective(mgl64.DegToRad(c.FOV), aspect, c.Near, c.Far)
}

// Project maps a world point to normalized device coordinates.
func (c *Camera) Project(p mgl64.Vec3) mgl64.Vec3 {
	clip := c.projection.Mul4(c.view).Mul4x1(p.Vec4(1))
	return clip.Vec3().Mul(1 / clip.W())
}

// PixelsPerUnit is the on-screen size of one world unit at distance d from
// the eye, for a viewport of the given pixel height.
func (c *Camera) PixelsPerUnit(d float64, height int) float64 {
	return float64(height) / 2 / (d * math.Tan(mgl64.DegToRad(c.FOV)/2))
}

// Viewport is the size of the output surface in pixels.
type Viewport struct {
	Width, Height int
}

// Aspect returns width/height.
func (v Viewport) Aspect() float64 {
	return float64(v.Width) / float64(v.Height)
}

// ToPixel maps NDC to pixel coordinates with y growing downwards, then
// applies the given offset.
func (v Viewport) ToPixel(ndc mgl64.Vec3, offsetX, offsetY float64) (x, y float64) {
	x = (ndc.X()*0.5+0.5)*float64(v.Width) + offsetX
	y = (1-(ndc.Y()*0.5+0.5))*float64(v.Height) + offsetY
	return x, y
}

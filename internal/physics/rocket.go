// Package physics holds the closed-form rocket and sphere formulas.
package physics

import "math"

// ExhaustVelocity is the effective exhaust speed used by the visualizer, in m/s.
const ExhaustVelocity = 2800.0

// MassRatio returns exp(dv/ve). A non-positive exhaust velocity yields +Inf.
func MassRatio(deltaV, exhaustVelocity float64) float64 {
	if exhaustVelocity <= 0 {
		return math.Inf(1)
	}
	return math.Exp(deltaV / exhaustVelocity)
}

// WetMass is the Tsiolkovsky rocket equation solved for initial mass:
// wet = dry * exp(dv/ve). Units of the result follow dryMass.
func WetMass(dryMass, deltaV, exhaustVelocity float64) float64 {
	return dryMass * MassRatio(deltaV, exhaustVelocity)
}

// PropellantMass is the part of the wet mass that is burned to reach deltaV.
func PropellantMass(dryMass, deltaV, exhaustVelocity float64) float64 {
	return WetMass(dryMass, deltaV, exhaustVelocity) - dryMass
}

// RadiusFromVolume inverts V = 4/3*pi*r^3. Negative volumes return NaN.
func RadiusFromVolume(volume float64) float64 {
	if volume < 0 {
		return math.NaN()
	}
	return math.Cbrt(3 * volume / (4 * math.Pi))
}

// SphereVolume returns 4/3*pi*r^3.
func SphereVolume(radius float64) float64 {
	return 4 / 3. * math.Pi * radius * radius * radius
}

// Package sim owns the rocket inputs and the sphere radii derived from them.
package sim

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/iburimskiy/rocket-mass-visualization/internal/config"
	"github.com/iburimskiy/rocket-mass-visualization/internal/physics"
)

// ErrOutOfRange is returned by Update for non-finite or out-of-bounds inputs.
var ErrOutOfRange = errors.New("input out of range")

// Params fixes the exhaust velocity, the input bounds and the initial inputs.
type Params struct {
	ExhaustVelocity float64
	DryMass         config.Range
	DeltaV          config.Range
	InitialDryMass  float64
	InitialDeltaV   float64
}

// ParamsFromConfig extracts the simulation parameters from cfg.
func ParamsFromConfig(cfg config.Config) Params {
	return Params{
		ExhaustVelocity: cfg.Physics.ExhaustVelocity,
		DryMass:         cfg.Sliders.DryMass,
		DeltaV:          cfg.Sliders.DeltaV,
		InitialDryMass:  cfg.Physics.DryMass,
		InitialDeltaV:   cfg.Physics.DeltaV,
	}
}

// Snapshot is a consistent copy of the state.
type Snapshot struct {
	DryMass         float64 // tons
	DeltaV          float64 // m/s
	ExhaustVelocity float64 // m/s
	WetMass         float64 // tons
	TargetDryRadius float64
	TargetWetRadius float64
}

// State holds the current inputs. The target radii are always derived from
// them and are only ever written together.
type State struct {
	params Params

	mu   sync.RWMutex
	snap Snapshot
}

// New builds a state at the initial inputs with its radii already computed.
func New(p Params) (*State, error) {
	s := &State{params: p}
	s.snap.ExhaustVelocity = p.ExhaustVelocity
	if err := s.Update(p.InitialDryMass, p.InitialDeltaV); err != nil {
		return nil, err
	}
	return s, nil
}

// Update sets both inputs and recomputes both radii. Rejected inputs leave
// the previous state untouched.
func (s *State) Update(dryMass, deltaV float64) error {
	if err := check("dry mass", dryMass, s.params.DryMass); err != nil {
		return err
	}
	if err := check("delta-v", deltaV, s.params.DeltaV); err != nil {
		return err
	}
	wet := physics.WetMass(dryMass, deltaV, s.params.ExhaustVelocity)
	next := Snapshot{
		DryMass:         dryMass,
		DeltaV:          deltaV,
		ExhaustVelocity: s.params.ExhaustVelocity,
		WetMass:         wet,
		TargetDryRadius: physics.RadiusFromVolume(dryMass),
		TargetWetRadius: physics.RadiusFromVolume(wet),
	}
	s.mu.Lock()
	s.snap = next
	s.mu.Unlock()
	return nil
}

// Snapshot returns the current state.
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Params returns the bounds the state was built with.
func (s *State) Params() Params { return s.params }

func check(name string, v float64, r config.Range) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s %v: %w", name, v, ErrOutOfRange)
	}
	if v < r.Min || v > r.Max {
		return fmt.Errorf("%s %v not in [%v,%v]: %w", name, v, r.Min, r.Max, ErrOutOfRange)
	}
	return nil
}

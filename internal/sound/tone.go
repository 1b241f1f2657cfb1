// Package sound plays short feedback blips while the sliders move.
package sound

import (
	"math"

	"github.com/faiface/beep"
)

// tone is a finite sine burst with a linear attack and release so it starts
// and ends at zero amplitude.
type tone struct {
	freq  float64
	gain  float64
	rate  float64
	total int
	pos   int
	ramp  int
}

func newTone(sr beep.SampleRate, freq, gain float64, length int) *tone {
	ramp := length / 8
	if ramp < 1 {
		ramp = 1
	}
	return &tone{
		freq:  freq,
		gain:  gain,
		rate:  float64(sr),
		total: length,
		ramp:  ramp,
	}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.total {
		return 0, false
	}
	n := 0
	for i := range samples {
		if t.pos >= t.total {
			break
		}
		v := t.gain * t.envelope(t.pos) * math.Sin(2*math.Pi*t.freq*float64(t.pos)/t.rate)
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
		n++
	}
	return n, true
}

func (t *tone) Err() error { return nil }

func (t *tone) envelope(i int) float64 {
	switch {
	case i < t.ramp:
		return float64(i) / float64(t.ramp)
	case i >= t.total-t.ramp:
		return float64(t.total-1-i) / float64(t.ramp)
	default:
		return 1
	}
}

// PitchFor maps a mass ratio to a blip frequency: one octave above 220 Hz per
// two e-folds of mass ratio.
func PitchFor(massRatio float64) float64 {
	if !(massRatio >= 1) {
		return 220
	}
	return 220 * math.Pow(2, math.Log(massRatio)/2)
}

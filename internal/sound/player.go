package sound

import (
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	kitlog "github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"

	"github.com/iburimskiy/rocket-mass-visualization/internal/config"
)

const blipLength = 40 * time.Millisecond

// Player owns the speaker. A nil *Player is valid and silent.
type Player struct {
	sr     beep.SampleRate
	volume float64
	logger kitlog.Logger
}

// NewPlayer initialises the speaker. It returns nil when audio is disabled.
func NewPlayer(cfg config.AudioConfig, logger kitlog.Logger) (*Player, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	sr := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("initialising speaker at %d Hz: %w", cfg.SampleRate, err)
	}
	level.Info(logger).Log("msg", "audio enabled", "sample_rate", cfg.SampleRate)
	return &Player{sr: sr, volume: cfg.Volume, logger: logger}, nil
}

// Blip replaces whatever is playing with a short tone pitched for massRatio.
func (p *Player) Blip(massRatio float64) {
	if p == nil {
		return
	}
	freq := PitchFor(massRatio)
	t := newTone(p.sr, freq, p.volume, p.sr.N(blipLength))
	speaker.Clear()
	speaker.Play(t)
	level.Debug(p.logger).Log("msg", "blip", "freq", freq)
}

// Close stops playback.
func (p *Player) Close() {
	if p == nil {
		return
	}
	speaker.Clear()
}

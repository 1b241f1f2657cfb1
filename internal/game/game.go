// Package game wires the rocket state, the 3D scene and the sliders into an
// ebiten.Game.
package game

import (
	"errors"
	"fmt"
	"image/color"
	"sync/atomic"

	kitlog "github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/rocket-mass-visualization/internal/config"
	"github.com/iburimskiy/rocket-mass-visualization/internal/physics"
	"github.com/iburimskiy/rocket-mass-visualization/internal/scene"
	"github.com/iburimskiy/rocket-mass-visualization/internal/sim"
	"github.com/iburimskiy/rocket-mass-visualization/internal/sound"
	"github.com/iburimskiy/rocket-mass-visualization/internal/ui"
)

const helpTitle = "Rocket Equation"

// arrowSteps maps arrow keys to slider steps, applied in this order.
var arrowSteps = []struct {
	key   ebiten.Key
	steps int
}{
	{ebiten.KeyArrowLeft, -1},
	{ebiten.KeyArrowRight, 1},
}

// Game is the ebiten.Game for the visualizer.
type Game struct {
	cfg    config.Config
	logger kitlog.Logger

	state *sim.State
	scene *scene.Scene

	drySlider *ui.Slider
	dvSlider  *ui.Slider

	dryLabel     ui.Label
	wetLabel     ui.Label
	sliderLabels [2]ui.Label

	input  Input
	player *sound.Player
	dialog func(text string) error

	helpOpen atomic.Bool
	lastErr  error
}

// Option customises a Game.
type Option func(*Game)

// WithInput replaces the ebiten mouse and keyboard source.
func WithInput(in Input) Option {
	return func(g *Game) { g.input = in }
}

// WithPlayer enables slider feedback blips.
func WithPlayer(p *sound.Player) Option {
	return func(g *Game) { g.player = p }
}

// WithDialog replaces the help dialog.
func WithDialog(fn func(text string) error) Option {
	return func(g *Game) { g.dialog = fn }
}

// New builds the game at the configured initial inputs. Labels hold their
// computed values from the first frame.
func New(cfg config.Config, logger kitlog.Logger, opts ...Option) (*Game, error) {
	state, err := sim.New(sim.ParamsFromConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("initial state: %w", err)
	}
	g := &Game{
		cfg:       cfg,
		logger:    kitlog.With(logger, "component", "game"),
		state:     state,
		scene:     scene.New(cfg, cfg.Window.Width, cfg.Window.Height),
		drySlider: ui.NewSlider("Dry Mass", "tons", cfg.Sliders.DryMass, cfg.Physics.DryMass, 0.25),
		dvSlider:  ui.NewSlider("Delta Velocity", "m/s", cfg.Sliders.DeltaV, cfg.Physics.DeltaV, 0.75),
		input:     ebitenInput{},
		dialog: func(text string) error {
			return zenity.Info(text, zenity.Title(helpTitle), zenity.InfoIcon)
		},
	}
	for _, o := range opts {
		o(g)
	}
	g.layoutSliders()
	snap := g.state.Snapshot()
	g.scene.SetTargets(snap.TargetDryRadius, snap.TargetWetRadius)
	g.refreshSliderLabels()
	g.refreshBodyLabels(snap)
	return g, nil
}

// State exposes the simulation state.
func (g *Game) State() *sim.State { return g.state }

// Scene exposes the 3D scene.
func (g *Game) Scene() *scene.Scene { return g.scene }

func (g *Game) sliders() []*ui.Slider {
	return []*ui.Slider{g.drySlider, g.dvSlider}
}

func (g *Game) Update() error {
	changed := false
	p := g.input.Pointer()
	for _, s := range g.sliders() {
		if s.Handle(p) {
			changed = true
		}
	}

	if g.input.KeyJustPressed(ebiten.KeyTab) {
		g.cycleFocus()
	}
	for _, a := range arrowSteps {
		if !g.input.KeyJustPressed(a.key) {
			continue
		}
		for _, s := range g.sliders() {
			if s.Focused() && s.Nudge(a.steps) {
				changed = true
			}
		}
	}

	if changed {
		g.applyInputs()
	}

	if g.input.KeyJustPressed(ebiten.KeyH) {
		g.showHelp()
	}
	if g.input.KeyJustPressed(ebiten.KeyEscape) || g.input.KeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.step()
	return nil
}

// applyInputs pushes both slider values into the state. A rejected update
// keeps the previous radii and is shown on the status line.
func (g *Game) applyInputs() {
	dry, dv := g.drySlider.Value, g.dvSlider.Value
	if err := g.state.Update(dry, dv); err != nil {
		g.lastErr = err
		level.Warn(g.logger).Log("msg", "input rejected", "err", err)
		return
	}
	g.lastErr = nil
	snap := g.state.Snapshot()
	level.Debug(g.logger).Log("msg", "state updated", "dry_mass", snap.DryMass, "delta_v", snap.DeltaV, "wet_mass", snap.WetMass)
	g.refreshSliderLabels()
	g.player.Blip(snap.WetMass / snap.DryMass)
}

// step is the per-frame presentation update: ease, then recompute the body
// labels from the current projection.
func (g *Game) step() {
	snap := g.state.Snapshot()
	g.scene.SetTargets(snap.TargetDryRadius, snap.TargetWetRadius)
	g.scene.Step()
	g.refreshBodyLabels(snap)
}

func (g *Game) refreshBodyLabels(snap sim.Snapshot) {
	offX, offY := g.cfg.Labels.OffsetX, g.cfg.Labels.OffsetY

	g.dryLabel.Text = "Dry Mass: " + ui.FormatTons(snap.DryMass)
	g.dryLabel.X, g.dryLabel.Y = g.scene.ScreenPosition(g.scene.Dry, offX, offY)

	g.wetLabel.Text = "Wet Mass: " + ui.FormatTons(snap.WetMass)
	g.wetLabel.X, g.wetLabel.Y = g.scene.ScreenPosition(g.scene.Wet, offX, offY)
}

func (g *Game) refreshSliderLabels() {
	g.sliderLabels[0] = g.drySlider.Label()
	g.sliderLabels[1] = g.dvSlider.Label()
}

func (g *Game) layoutSliders() {
	for _, s := range g.sliders() {
		s.Layout(g.scene.Viewport.Width, g.scene.Viewport.Height)
	}
	g.refreshSliderLabels()
}

func (g *Game) cycleFocus() {
	switch {
	case g.drySlider.Focused():
		g.drySlider.Focus(false)
		g.dvSlider.Focus(true)
	case g.dvSlider.Focused():
		g.dvSlider.Focus(false)
	default:
		g.drySlider.Focus(true)
	}
}

// showHelp opens the help dialog off the game loop. Only one is open at a time.
func (g *Game) showHelp() {
	if !g.helpOpen.CompareAndSwap(false, true) {
		return
	}
	text := helpText(g.state.Snapshot())
	go func() {
		defer g.helpOpen.Store(false)
		if err := g.dialog(text); err != nil && !errors.Is(err, zenity.ErrCanceled) {
			level.Warn(g.logger).Log("msg", "help dialog failed", "err", err)
		}
	}()
}

func helpText(s sim.Snapshot) string {
	ratio := physics.MassRatio(s.DeltaV, s.ExhaustVelocity)
	return fmt.Sprintf(
		"Tsiolkovsky rocket equation\n\n"+
			"  m_wet = m_dry * exp(dv / ve)\n\n"+
			"dry mass         %s\n"+
			"delta-v          %s m/s\n"+
			"exhaust velocity %s m/s\n"+
			"mass ratio       %.2f\n"+
			"propellant       %s\n"+
			"wet mass         %s\n\n"+
			"Sphere volume stands in for mass: r = cbrt(3V / 4pi).\n"+
			"Drag a slider, or Tab to focus one and use the arrow keys.",
		ui.FormatTons(s.DryMass), ui.FormatRaw(s.DeltaV), ui.FormatRaw(s.ExhaustVelocity),
		ratio, ui.FormatTons(physics.PropellantMass(s.DryMass, s.DeltaV, s.ExhaustVelocity)),
		ui.FormatTons(s.WetMass),
	)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	for _, b := range g.scene.Bodies() {
		cx, cy := g.scene.ScreenPosition(b, 0, 0)
		dx, dy := g.scene.HighlightDir(b)
		drawSphere(screen, cx, cy, g.scene.ScreenRadius(b), dx, dy, b.Color)
	}

	drawLabel(screen, g.dryLabel)
	drawLabel(screen, g.wetLabel)
	for _, s := range g.sliders() {
		drawSlider(screen, s)
	}
	for _, l := range g.sliderLabels {
		drawLabel(screen, l)
	}

	status := "H: help | Tab: focus slider | Left/Right: adjust | Esc/Q: quit"
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

// Layout follows the window size. A change resizes the camera and the output
// before the next Update.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.scene.Resize(outsideWidth, outsideHeight) {
		level.Debug(g.logger).Log("msg", "resize", "width", outsideWidth, "height", outsideHeight, "aspect", g.scene.Camera.Aspect)
		g.layoutSliders()
	}
	return g.scene.Viewport.Width, g.scene.Viewport.Height
}

// Labels returns the two body labels then the two slider labels.
func (g *Game) Labels() []ui.Label {
	return []ui.Label{g.dryLabel, g.wetLabel, g.sliderLabels[0], g.sliderLabels[1]}
}

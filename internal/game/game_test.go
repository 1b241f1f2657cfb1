package game

import (
	"errors"
	"testing"
	"time"

	kitlog "github.com/go-kit/kit/log"
	"github.com/hajimehoshi/ebiten/v2"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/iburimskiy/rocket-mass-visualization/internal/config"
	"github.com/iburimskiy/rocket-mass-visualization/internal/physics"
	"github.com/iburimskiy/rocket-mass-visualization/internal/ui"
)

type fakeInput struct {
	pointer ui.Pointer
	keys    map[ebiten.Key]bool
}

func (f *fakeInput) Pointer() ui.Pointer { return f.pointer }

func (f *fakeInput) KeyJustPressed(k ebiten.Key) bool { return f.keys[k] }

// tick runs one Update and clears edge-triggered input.
func (f *fakeInput) tick(t *testing.T, g *Game) error {
	t.Helper()
	err := g.Update()
	f.pointer.JustPressed = false
	f.keys = nil
	return err
}

func newGame(t *testing.T, opts ...Option) (*Game, *fakeInput) {
	t.Helper()
	in := &fakeInput{}
	g, err := New(config.Defaults(), kitlog.NewNopLogger(), append([]Option{WithInput(in)}, opts...)...)
	if err != nil {
		t.Fatalf("New: %s", err)
	}
	g.Layout(800, 600)
	return g, in
}

func TestInitialLabels(t *testing.T) {
	g, _ := newGame(t)
	want := []string{"Dry Mass: 1.0 tons", "Wet Mass: 15.1 tons", "Dry Mass: 1 tons", "Delta Velocity: 7600 m/s"}
	for i, l := range g.Labels() {
		if l.Text != want[i] {
			t.Fatalf("label %d = %q, expected %q", i, l.Text, want[i])
		}
	}
}

func TestDragDrySlider(t *testing.T) {
	g, in := newGame(t)
	x, y, w, _ := g.drySlider.Bounds()
	in.pointer = ui.Pointer{X: int(x + w/2), Y: int(y) + 4, Pressed: true, JustPressed: true}
	if err := in.tick(t, g); err != nil {
		t.Fatal(err)
	}
	mid := g.drySlider.Value
	if g.State().Snapshot().DryMass != mid || mid == 1 {
		t.Fatalf("state dry mass %v, slider %v", g.State().Snapshot().DryMass, mid)
	}

	in.pointer = ui.Pointer{X: int(x + 2*w), Y: 0, Pressed: true}
	if err := in.tick(t, g); err != nil {
		t.Fatal(err)
	}
	snap := g.State().Snapshot()
	if snap.DryMass != 20 || snap.DeltaV != 7600 {
		t.Fatalf("unexpected state %+v", snap)
	}
	labels := g.Labels()
	if labels[2].Text != "Dry Mass: 20 tons" {
		t.Fatalf("slider label %q", labels[2].Text)
	}
	if labels[0].Text != "Dry Mass: 20.0 tons" {
		t.Fatalf("body label %q", labels[0].Text)
	}
	if exp := "Wet Mass: " + ui.FormatTons(physics.WetMass(20, 7600, 2800)); labels[1].Text != exp {
		t.Fatalf("wet label %q, expected %q", labels[1].Text, exp)
	}
}

func TestKeyboardAdjust(t *testing.T) {
	g, in := newGame(t)
	in.keys = map[ebiten.Key]bool{ebiten.KeyTab: true}
	_ = in.tick(t, g)
	in.keys = map[ebiten.Key]bool{ebiten.KeyTab: true}
	_ = in.tick(t, g)
	if !g.dvSlider.Focused() {
		t.Fatal("second Tab should focus delta-v")
	}
	in.keys = map[ebiten.Key]bool{ebiten.KeyArrowLeft: true}
	_ = in.tick(t, g)
	if dv := g.State().Snapshot().DeltaV; dv != 7500 {
		t.Fatalf("delta-v %v after left arrow", dv)
	}
	if g.Labels()[3].Text != "Delta Velocity: 7500 m/s" {
		t.Fatalf("slider label %q", g.Labels()[3].Text)
	}
}

func TestFramesEaseTowardTargets(t *testing.T) {
	g, in := newGame(t)
	snap := g.State().Snapshot()
	for i := 0; i < 300; i++ {
		_ = in.tick(t, g)
	}
	sc := g.Scene()
	if !scalar.EqualWithinAbs(sc.Dry.Radius, snap.TargetDryRadius, 1e-6) {
		t.Fatalf("dry radius %f, target %f", sc.Dry.Radius, snap.TargetDryRadius)
	}
	if !scalar.EqualWithinAbs(sc.Wet.Radius, snap.TargetWetRadius, 1e-6) {
		t.Fatalf("wet radius %f, target %f", sc.Wet.Radius, snap.TargetWetRadius)
	}
}

func TestResizeBeforeNextFrame(t *testing.T) {
	g, in := newGame(t)
	if w, h := g.Layout(1000, 500); w != 1000 || h != 500 {
		t.Fatalf("layout returned %dx%d", w, h)
	}
	if g.Scene().Camera.Aspect != 2 {
		t.Fatalf("aspect %f", g.Scene().Camera.Aspect)
	}
	_ = in.tick(t, g)
	// Wet body at x=4, camera at z=8 with a 90 degree fov: ndc x = 4/(8*2).
	wet := g.Labels()[1]
	if exp := (0.25*0.5+0.5)*1000 - 50; !scalar.EqualWithinAbs(wet.X, exp, 1e-6) {
		t.Fatalf("wet label x %f, expected %f", wet.X, exp)
	}
	if exp := 0.5*500 - 220; !scalar.EqualWithinAbs(wet.Y, exp, 1e-6) {
		t.Fatalf("wet label y %f, expected %f", wet.Y, exp)
	}
	if g.drySlider.CenterX != 250 || g.dvSlider.CenterX != 750 {
		t.Fatal("sliders not laid out for the new size")
	}
}

func TestQuit(t *testing.T) {
	g, in := newGame(t)
	in.keys = map[ebiten.Key]bool{ebiten.KeyEscape: true}
	if err := in.tick(t, g); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("expected termination, got %v", err)
	}
}

func TestHelpDialog(t *testing.T) {
	shown := make(chan string, 2)
	release := make(chan struct{})
	g, in := newGame(t, WithDialog(func(text string) error {
		shown <- text
		<-release
		return nil
	}))
	in.keys = map[ebiten.Key]bool{ebiten.KeyH: true}
	_ = in.tick(t, g)
	in.keys = map[ebiten.Key]bool{ebiten.KeyH: true}
	_ = in.tick(t, g)

	select {
	case text := <-shown:
		if text != helpText(g.State().Snapshot()) {
			t.Fatalf("unexpected help text %q", text)
		}
	case <-time.After(time.Second):
		t.Fatal("help dialog not shown")
	}
	select {
	case <-shown:
		t.Fatal("second dialog opened while the first was showing")
	case <-time.After(50 * time.Millisecond):
	}
	close(release)
}

func TestArrowKeysApplyInOrder(t *testing.T) {
	g, in := newGame(t)
	g.dvSlider.Set(12000)
	g.applyInputs()
	g.dvSlider.Focus(true)
	// Left then right: 12000 -> 11900 -> 12000, whatever the tick.
	in.keys = map[ebiten.Key]bool{ebiten.KeyArrowLeft: true, ebiten.KeyArrowRight: true}
	_ = in.tick(t, g)
	if dv := g.State().Snapshot().DeltaV; dv != 12000 {
		t.Fatalf("delta-v %v after left+right at max", dv)
	}
}

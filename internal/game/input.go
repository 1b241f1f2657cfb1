package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/rocket-mass-visualization/internal/ui"
)

// Input is the per-tick view of mouse and keyboard the game reads from.
type Input interface {
	Pointer() ui.Pointer
	KeyJustPressed(k ebiten.Key) bool
}

type ebitenInput struct{}

func (ebitenInput) Pointer() ui.Pointer {
	x, y := ebiten.CursorPosition()
	return ui.Pointer{
		X:           x,
		Y:           y,
		Pressed:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		JustPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	}
}

func (ebitenInput) KeyJustPressed(k ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(k)
}

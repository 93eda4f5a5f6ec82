package reed

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestNewGradientTooFewStopsPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for a single stop, got none")
		}
	}()
	NewGradient(GradientStop{Position: 0, Color: Color{R: 1, A: 1}})
}

func TestNewGradientSortsStops(t *testing.T) {
	g := NewGradient(
		GradientStop{Position: 1, Color: Color{R: 1, G: 1, B: 1, A: 1}},
		GradientStop{Position: 0, Color: Color{A: 1}},
	)
	assertNear(t, "start r", g.ColorAt(0).R, 0)
	assertNear(t, "end r", g.ColorAt(1).R, 1)
}

func TestNewGradientClampsPositions(t *testing.T) {
	g := NewGradient(
		GradientStop{Position: -2, Color: Color{R: 1, A: 1}},
		GradientStop{Position: 3, Color: Color{B: 1, A: 1}},
	)
	mid := g.ColorAt(0.5)
	assertNear(t, "mid r", mid.R, 0.5)
	assertNear(t, "mid b", mid.B, 0.5)
}

func TestGradientColorAtClampsToEnds(t *testing.T) {
	g := NewGradient(
		GradientStop{Position: 0.25, Color: Color{R: 1, A: 1}},
		GradientStop{Position: 0.75, Color: Color{B: 1, A: 1}},
	)
	assertNear(t, "below first", g.ColorAt(0.1).R, 1)
	assertNear(t, "above last", g.ColorAt(0.9).B, 1)
	assertNear(t, "t below zero", g.ColorAt(-5).R, 1)
	assertNear(t, "t above one", g.ColorAt(5).B, 1)
}

func TestGradientColorAtInterpolates(t *testing.T) {
	g := NewGradient(
		GradientStop{Position: 0, Color: Color{}},
		GradientStop{Position: 1, Color: Color{R: 1, G: 1, B: 1, A: 1}},
	)
	mid := g.ColorAt(0.5)
	assertNear(t, "r", mid.R, 0.5)
	assertNear(t, "g", mid.G, 0.5)
	assertNear(t, "b", mid.B, 0.5)
	assertNear(t, "a", mid.A, 0.5)
}

func TestGradientColorAtInnerSegment(t *testing.T) {
	g := NewGradient(
		GradientStop{Position: 0, Color: Color{R: 1, A: 1}},
		GradientStop{Position: 0.5, Color: Color{G: 1, A: 1}},
		GradientStop{Position: 1, Color: Color{B: 1, A: 1}},
	)
	got := g.ColorAt(0.75)
	assertNear(t, "r", got.R, 0)
	assertNear(t, "g", got.G, 0.5)
	assertNear(t, "b", got.B, 0.5)
	assertNear(t, "a", got.A, 1)
}

func TestGradientPresets(t *testing.T) {
	fire := FireGradient()
	start := fire.ColorAt(0)
	assertNear(t, "fire start r", start.R, 1)
	assertNear(t, "fire start g", start.G, 1)
	assertNear(t, "fire start b", start.B, 0)
	end := fire.ColorAt(1)
	assertNear(t, "fire end r", end.R, 1)
	assertNear(t, "fire end g", end.G, 0)

	assertNear(t, "ocean start b", OceanGradient().ColorAt(0).B, 200.0/255)
	assertNear(t, "forest end g", ForestGradient().ColorAt(1).G, 100.0/255)
	assertNear(t, "sunset mid g", SunsetGradient().ColorAt(0.5).G, 100.0/255)
}

func TestGradientDraw(t *testing.T) {
	g := FireGradient()
	dst := ebiten.NewImage(200, 200)

	g.DrawHorizontal(dst, Rect{X: 10, Y: 10, Width: 100, Height: 50})
	g.DrawVertical(dst, Rect{X: 10, Y: 70, Width: 100, Height: 50})
	g.DrawRadial(dst, Vec2{X: 100, Y: 150}, 40)

	// Degenerate shapes must not panic.
	g.DrawHorizontal(dst, Rect{X: 0, Y: 0, Width: 0, Height: 10})
	g.DrawVertical(dst, Rect{X: 0, Y: 0, Width: 10, Height: 0})
	g.DrawRadial(dst, Vec2{}, 0)
}

func TestLerp(t *testing.T) {
	assertNear(t, "quarter", lerp(0, 10, 0.25), 2.5)
	assertNear(t, "flat", lerp(5, 5, 0.9), 5)
	assertNear(t, "full", lerp(-1, 1, 1), 1)
}

package reed

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GradientStop pins a color at a position along a gradient, with 0 at the
// start and 1 at the end.
type GradientStop struct {
	Position float64
	Color    Color
}

// Gradient interpolates between a sorted set of color stops.
type Gradient struct {
	stops []GradientStop
}

// NewGradient builds a gradient from at least two stops. Stops may be given
// in any order; positions outside [0, 1] are clamped.
func NewGradient(stops ...GradientStop) Gradient {
	if len(stops) < 2 {
		panic("reed: gradient needs at least two stops")
	}
	sorted := make([]GradientStop, len(stops))
	copy(sorted, stops)
	for i := range sorted {
		sorted[i].Position = clamp01(sorted[i].Position)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Position < sorted[j].Position
	})
	return Gradient{stops: sorted}
}

// ColorAt returns the interpolated color at t, clamped to the gradient's
// ends.
func (g Gradient) ColorAt(t float64) Color {
	t = clamp01(t)
	if t <= g.stops[0].Position {
		return g.stops[0].Color
	}
	last := g.stops[len(g.stops)-1]
	if t >= last.Position {
		return last.Color
	}
	for i := 0; i < len(g.stops)-1; i++ {
		a, b := g.stops[i], g.stops[i+1]
		if t > b.Position {
			continue
		}
		span := b.Position - a.Position
		if span == 0 {
			return b.Color
		}
		f := (t - a.Position) / span
		return Color{
			R: lerp(a.Color.R, b.Color.R, f),
			G: lerp(a.Color.G, b.Color.G, f),
			B: lerp(a.Color.B, b.Color.B, f),
			A: lerp(a.Color.A, b.Color.A, f),
		}
	}
	return last.Color
}

// DrawHorizontal fills bounds with the gradient running left to right.
func (g Gradient) DrawHorizontal(dst *ebiten.Image, bounds Rect) {
	cols := int(bounds.Width)
	for x := 0; x < cols; x++ {
		t := 0.0
		if cols > 1 {
			t = float64(x) / float64(cols-1)
		}
		vector.DrawFilledRect(dst,
			float32(bounds.X)+float32(x), float32(bounds.Y),
			1, float32(bounds.Height),
			g.ColorAt(t).toRGBA(), false)
	}
}

// DrawVertical fills bounds with the gradient running top to bottom.
func (g Gradient) DrawVertical(dst *ebiten.Image, bounds Rect) {
	rows := int(bounds.Height)
	for y := 0; y < rows; y++ {
		t := 0.0
		if rows > 1 {
			t = float64(y) / float64(rows-1)
		}
		vector.DrawFilledRect(dst,
			float32(bounds.X), float32(bounds.Y)+float32(y),
			float32(bounds.Width), 1,
			g.ColorAt(t).toRGBA(), false)
	}
}

// DrawRadial fills a disc at center with the gradient running outward from
// t=0 at the middle to t=1 at radius.
func (g Gradient) DrawRadial(dst *ebiten.Image, center Vec2, radius float64) {
	steps := int(radius * 2)
	if steps < 1 {
		steps = 1
	}
	// Outermost ring first so inner rings paint over the overlap.
	for i := steps; i >= 1; i-- {
		t := float64(i) / float64(steps)
		vector.StrokeCircle(dst,
			float32(center.X), float32(center.Y), float32(radius*t),
			1.5, g.ColorAt(t).toRGBA(), false)
	}
}

// SunsetGradient fades from warm yellow through coral into dusk purple.
func SunsetGradient() Gradient {
	return NewGradient(
		GradientStop{Position: 0, Color: Color{R: 1, G: 200.0 / 255, B: 100.0 / 255, A: 1}},
		GradientStop{Position: 0.5, Color: Color{R: 1, G: 100.0 / 255, B: 100.0 / 255, A: 1}},
		GradientStop{Position: 1, Color: Color{R: 100.0 / 255, G: 50.0 / 255, B: 150.0 / 255, A: 1}},
	)
}

// OceanGradient fades from shallow blue into the deep.
func OceanGradient() Gradient {
	return NewGradient(
		GradientStop{Position: 0, Color: Color{R: 0, G: 100.0 / 255, B: 200.0 / 255, A: 1}},
		GradientStop{Position: 0.5, Color: Color{R: 0, G: 50.0 / 255, B: 150.0 / 255, A: 1}},
		GradientStop{Position: 1, Color: Color{R: 0, G: 0, B: 100.0 / 255, A: 1}},
	)
}

// ForestGradient fades from pale leaf green into dark undergrowth.
func ForestGradient() Gradient {
	return NewGradient(
		GradientStop{Position: 0, Color: Color{R: 100.0 / 255, G: 200.0 / 255, B: 100.0 / 255, A: 1}},
		GradientStop{Position: 0.5, Color: Color{R: 50.0 / 255, G: 150.0 / 255, B: 50.0 / 255, A: 1}},
		GradientStop{Position: 1, Color: Color{R: 0, G: 100.0 / 255, B: 0, A: 1}},
	)
}

// FireGradient fades from yellow through orange into red.
func FireGradient() Gradient {
	return NewGradient(
		GradientStop{Position: 0, Color: Color{R: 1, G: 1, B: 0, A: 1}},
		GradientStop{Position: 0.5, Color: Color{R: 1, G: 100.0 / 255, B: 0, A: 1}},
		GradientStop{Position: 1, Color: Color{R: 1, G: 0, B: 0, A: 1}},
	)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

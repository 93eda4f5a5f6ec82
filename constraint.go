package reed

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Constraint is a distance constraint between two points of a Simulation,
// referenced by index into the shared point slice. Repeated Solve passes
// relax the pair toward RestLength without making the link fully rigid, which
// is what gives shapes their soft-body look.
type Constraint struct {
	P1, P2     int
	RestLength float64
	Stiffness  float64 // fraction of the error corrected per pass, in [0, 1]
	Color      Color
}

// NewConstraint returns a constraint holding points p1 and p2 at restLength
// apart. Stiffness is clamped to [0, 1]. Panics if p1 == p2, since a
// constraint needs two distinct endpoints to define a direction.
func NewConstraint(p1, p2 int, restLength, stiffness float64) Constraint {
	if p1 == p2 {
		panic("reed: constraint endpoints must be distinct")
	}
	return Constraint{
		P1:         p1,
		P2:         p2,
		RestLength: restLength,
		Stiffness:  clamp01(stiffness),
		Color:      ColorWhite,
	}
}

// Solve applies one relaxation pass, nudging both endpoints toward
// RestLength. The correction splits between them by the opposite point's
// share of the combined mass, so the heavier point moves less; a fixed
// endpoint gives its whole share to the free one. Out-of-range indices and
// coincident endpoints are skipped.
func (c *Constraint) Solve(points []Point) {
	if c.P1 < 0 || c.P1 >= len(points) || c.P2 < 0 || c.P2 >= len(points) {
		return
	}
	p1 := &points[c.P1]
	p2 := &points[c.P2]

	dx := p2.Position.X - p1.Position.X
	dy := p2.Position.Y - p1.Position.Y
	distance := math.Sqrt(dx*dx + dy*dy)
	if distance == 0 {
		return
	}

	diff := (distance - c.RestLength) / distance
	correctionX := dx * diff * c.Stiffness
	correctionY := dy * diff * c.Stiffness

	fixed1 := p1.IsFixed()
	fixed2 := p2.IsFixed()

	var ratio1, ratio2 float64
	switch {
	case fixed1 && fixed2:
		return
	case fixed1:
		ratio2 = 1
	case fixed2:
		ratio1 = 1
	default:
		total := p1.Mass + p2.Mass
		ratio1 = p2.Mass / total
		ratio2 = p1.Mass / total
	}

	if !fixed1 {
		p1.Position.X += correctionX * ratio1
		p1.Position.Y += correctionY * ratio1
	}
	if !fixed2 {
		p2.Position.X -= correctionX * ratio2
		p2.Position.Y -= correctionY * ratio2
	}
}

// Draw renders the constraint as a line between its endpoints. Constraints
// referencing out-of-range indices draw nothing.
func (c *Constraint) Draw(dst *ebiten.Image, points []Point) {
	if c.P1 < 0 || c.P1 >= len(points) || c.P2 < 0 || c.P2 >= len(points) {
		return
	}
	p1 := &points[c.P1]
	p2 := &points[c.P2]
	vector.StrokeLine(dst,
		float32(p1.Position.X), float32(p1.Position.Y),
		float32(p2.Position.X), float32(p2.Position.Y),
		2, c.Color.toRGBA(), true)
}

package reed

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Point is a single particle, the basic unit of the physics simulation.
// Points integrate under accumulated force, collide as circles, and may be
// pinned in place with Fixed. A non-positive mass also pins the point, since
// integration and impulse response divide by mass.
type Point struct {
	Position Vec2
	Velocity Vec2
	Force    Vec2 // accumulated force, cleared after each integration step
	Mass     float64
	Radius   float64
	Fixed    bool
	Color    Color

	components []Component
}

// NewPoint returns a movable Point at the given position.
func NewPoint(position Vec2, mass, radius float64) Point {
	return Point{
		Position: position,
		Mass:     mass,
		Radius:   radius,
		Color:    ColorWhite,
	}
}

// IsFixed reports whether the point is pinned, either explicitly or through a
// non-positive mass.
func (p *Point) IsFixed() bool {
	return p.Fixed || p.Mass <= 0
}

// Vel returns the point's velocity.
func (p *Point) Vel() Vec2 { return p.Velocity }

// SetVel replaces the point's velocity.
func (p *Point) SetVel(v Vec2) { p.Velocity = v }

// ApplyForce accumulates f into the force consumed by the next Update.
func (p *Point) ApplyForce(f Vec2) {
	p.Force.X += f.X
	p.Force.Y += f.Y
}

// AddComponent attaches c to the point. Panics if c is nil.
func (p *Point) AddComponent(c Component) {
	if c == nil {
		panic("reed: nil component")
	}
	p.components = append(p.components, c)
}

// RemoveComponent detaches c, comparing by identity, and reports whether it
// was attached.
func (p *Point) RemoveComponent(c Component) bool {
	for i, pc := range p.components {
		if pc == c {
			p.components = append(p.components[:i], p.components[i+1:]...)
			return true
		}
	}
	return false
}

// UpdateComponents runs one update pass over the point's components and drops
// any one-shot forces that fired.
func (p *Point) UpdateComponents() {
	p.components = runComponents(p, p.components)
}

// Update advances the point by dt seconds using semi-implicit Euler: velocity
// absorbs the accumulated force first, then position absorbs velocity. The
// accumulated force is cleared afterward. Fixed points do not move.
func (p *Point) Update(dt float64) {
	if p.IsFixed() {
		return
	}
	p.Velocity.X += p.Force.X / p.Mass * dt
	p.Velocity.Y += p.Force.Y / p.Mass * dt
	p.Position.X += p.Velocity.X * dt
	p.Position.Y += p.Velocity.Y * dt
	p.Force = Vec2{}
}

// IsCollidingWith reports whether p and other overlap. Touching exactly at
// the sum of the radii does not count.
func (p *Point) IsCollidingWith(other *Point) bool {
	dx := other.Position.X - p.Position.X
	dy := other.Position.Y - p.Position.Y
	return math.Sqrt(dx*dx+dy*dy) < p.Radius+other.Radius
}

// ResolveCollision applies impulse response between two overlapping points.
// Approaching contacts exchange an impulse scaled by restitution; contacts
// already separating keep their velocities and receive only the positional
// correction. Fixed points absorb neither.
func (p *Point) ResolveCollision(other *Point, restitution float64) {
	if p.IsFixed() && other.IsFixed() {
		return
	}

	dx := other.Position.X - p.Position.X
	dy := other.Position.Y - p.Position.Y
	distance := math.Sqrt(dx*dx + dy*dy)
	if distance == 0 {
		return
	}

	overlap := (p.Radius + other.Radius) - distance
	if overlap <= 0 {
		return
	}

	nx := dx / distance
	ny := dy / distance

	// Relative velocity along the contact normal. Negative means the points
	// are approaching.
	rvx := other.Velocity.X - p.Velocity.X
	rvy := other.Velocity.Y - p.Velocity.Y
	velAlongNormal := rvx*nx + rvy*ny

	im1 := p.inverseMass()
	im2 := other.inverseMass()

	if velAlongNormal < 0 {
		j := -(1 + restitution) * velAlongNormal / (im1 + im2)
		if !p.IsFixed() {
			p.Velocity.X -= j * nx * im1
			p.Velocity.Y -= j * ny * im1
		}
		if !other.IsFixed() {
			other.Velocity.X += j * nx * im2
			other.Velocity.Y += j * ny * im2
		}
	}

	// Positional correction keeps overlapping points from sinking into each
	// other while they remain in contact.
	correction := (overlap / distance) * 0.2
	cx := nx * correction
	cy := ny * correction
	if !p.IsFixed() {
		p.Position.X -= cx
		p.Position.Y -= cy
	}
	if !other.IsFixed() {
		other.Position.X += cx
		other.Position.Y += cy
	}
}

func (p *Point) inverseMass() float64 {
	if p.IsFixed() {
		return 0
	}
	return 1 / p.Mass
}

// Draw renders the point as a filled circle.
func (p *Point) Draw(dst *ebiten.Image) {
	vector.DrawFilledCircle(dst, float32(p.Position.X), float32(p.Position.Y), float32(p.Radius), p.Color.toRGBA(), true)
}

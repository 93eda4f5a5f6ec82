package reed

import "math"

const (
	// slopeContactSlack widens the slope contact test beyond the point radius.
	slopeContactSlack = 5.0
	// slopeStick is added to the vertical velocity to hold a sliding point
	// against the slope.
	slopeStick = 0.1
)

// Collision resolves contact between its owner and another body of the same
// kind. Point pairs use the same impulse and positional-correction scheme as
// Point.ResolveCollision, with the component's Bounce as restitution. Quad
// pairs approximate overlap by center distance against the mean of the two
// widths. Mixed pairs are ignored.
//
// Beyond the bounce response, a Collision component can make its owner follow
// a sloped constraint segment; see ApplySlope.
type Collision struct {
	Bounce        float64 // restitution for the impulse response, in [0, 1]
	SlopeFriction float64 // velocity damping while sliding on a slope, in [0, 1]
}

// NewCollision returns a Collision component. Both coefficients are clamped
// to [0, 1].
func NewCollision(bounce, slopeFriction float64) *Collision {
	return &Collision{
		Bounce:        clamp01(bounce),
		SlopeFriction: clamp01(slopeFriction),
	}
}

// Update is a no-op; Collision acts only on contact.
func (c *Collision) Update(b Body) {}

// OnCollide resolves the contact between me and other.
func (c *Collision) OnCollide(me, other Body) {
	switch m := me.(type) {
	case *Point:
		if o, ok := other.(*Point); ok {
			m.ResolveCollision(o, c.Bounce)
		}
	case *Quad:
		if o, ok := other.(*Quad); ok {
			c.collideQuads(m, o)
		}
	}
}

// collideQuads pushes two overlapping quads apart. Overlap is approximated by
// the distance between centers against the mean of the two widths, which is
// cheaper than exact AABB separation and close enough for roughly square
// bodies.
func (c *Collision) collideQuads(me, other *Quad) {
	if me.Fixed && other.Fixed {
		return
	}

	mc := me.Center()
	oc := other.Center()
	dx := oc.X - mc.X
	dy := oc.Y - mc.Y
	distance := math.Sqrt(dx*dx + dy*dy)
	minDistance := (me.Size.X + other.Size.X) * 0.5
	if distance == 0 || distance >= minDistance {
		return
	}

	nx := dx / distance
	ny := dy / distance

	rvx := other.Velocity.X - me.Velocity.X
	rvy := other.Velocity.Y - me.Velocity.Y
	velAlongNormal := rvx*nx + rvy*ny
	if velAlongNormal >= 0 {
		return
	}

	// Quads carry no mass, so the impulse hits the velocities undivided.
	impulse := -(1 + c.Bounce) * velAlongNormal
	ix := impulse * nx
	iy := impulse * ny
	if !me.Fixed {
		me.Velocity.X -= ix
		me.Velocity.Y -= iy
	}
	if !other.Fixed {
		other.Velocity.X += ix
		other.Velocity.Y += iy
	}

	overlap := minDistance - distance
	if !me.Fixed {
		me.Position.X -= nx * overlap * 0.5
		me.Position.Y -= ny * overlap * 0.5
	}
	if !other.Fixed {
		other.Position.X += nx * overlap * 0.5
		other.Position.Y += ny * overlap * 0.5
	}
}

// ApplySlope makes p follow the slope segment from a to b when p rests on it:
// p's velocity is projected onto the segment direction, damped by
// SlopeFriction, and given a small downward push to keep contact. It reports
// whether slope physics were applied. Fixed points and degenerate segments
// are left alone.
func (c *Collision) ApplySlope(p, a, b *Point) bool {
	if p.IsFixed() || !isOnSlope(p, a, b) {
		return false
	}

	dx := b.Position.X - a.Position.X
	dy := b.Position.Y - a.Position.Y
	length := math.Sqrt(dx*dx + dy*dy)
	dirX := dx / length
	dirY := dy / length

	proj := p.Velocity.X*dirX + p.Velocity.Y*dirY
	p.Velocity.X = dirX * proj * c.SlopeFriction
	p.Velocity.Y = dirY * proj * c.SlopeFriction
	p.Velocity.Y += slopeStick
	return true
}

// isOnSlope reports whether p lies on the segment between a and b, within
// p.Radius plus a small tolerance of the line.
func isOnSlope(p, a, b *Point) bool {
	dx := b.Position.X - a.Position.X
	dy := b.Position.Y - a.Position.Y
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		return false
	}

	// Project p onto the segment and reject projections past either end.
	t := ((p.Position.X-a.Position.X)*dx + (p.Position.Y-a.Position.Y)*dy) / lengthSq
	if t < 0 || t > 1 {
		return false
	}

	projX := a.Position.X + t*dx
	projY := a.Position.Y + t*dy
	ddx := p.Position.X - projX
	ddy := p.Position.Y - projY
	return math.Sqrt(ddx*ddx+ddy*ddy) < p.Radius+slopeContactSlack
}

package reed

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Quad is an axis-aligned rectangular body. Unlike a Point it has no mass: it
// moves at whatever velocity its components give it, or not at all when
// Fixed, which makes it useful for platforms and walls.
type Quad struct {
	Position Vec2 // top-left corner
	Size     Vec2
	Velocity Vec2
	Fixed    bool
	Color    Color

	components []Component
}

// NewQuad returns a movable Quad with its top-left corner at position.
// Panics unless both size dimensions are positive.
func NewQuad(position, size Vec2) Quad {
	if size.X <= 0 || size.Y <= 0 {
		panic("reed: quad size must be positive")
	}
	return Quad{
		Position: position,
		Size:     size,
		Color:    ColorWhite,
	}
}

// IsFixed reports whether the quad is pinned in place.
func (q *Quad) IsFixed() bool { return q.Fixed }

// Vel returns the quad's velocity.
func (q *Quad) Vel() Vec2 { return q.Velocity }

// SetVel replaces the quad's velocity.
func (q *Quad) SetVel(v Vec2) { q.Velocity = v }

// Bounds returns the quad's extent as a Rect.
func (q *Quad) Bounds() Rect {
	return Rect{X: q.Position.X, Y: q.Position.Y, Width: q.Size.X, Height: q.Size.Y}
}

// Center returns the quad's center point.
func (q *Quad) Center() Vec2 {
	return Vec2{X: q.Position.X + q.Size.X/2, Y: q.Position.Y + q.Size.Y/2}
}

// AddComponent attaches c to the quad. Panics if c is nil.
func (q *Quad) AddComponent(c Component) {
	if c == nil {
		panic("reed: nil component")
	}
	q.components = append(q.components, c)
}

// RemoveComponent detaches c, comparing by identity, and reports whether it
// was attached.
func (q *Quad) RemoveComponent(c Component) bool {
	for i, qc := range q.components {
		if qc == c {
			q.components = append(q.components[:i], q.components[i+1:]...)
			return true
		}
	}
	return false
}

// UpdateComponents runs one update pass over the quad's components and drops
// any one-shot forces that fired.
func (q *Quad) UpdateComponents() {
	q.components = runComponents(q, q.components)
}

// IsCollidingWith reports whether the two quads overlap. Touching edges do
// not count.
func (q *Quad) IsCollidingWith(other *Quad) bool {
	return q.Position.X < other.Position.X+other.Size.X &&
		q.Position.X+q.Size.X > other.Position.X &&
		q.Position.Y < other.Position.Y+other.Size.Y &&
		q.Position.Y+q.Size.Y > other.Position.Y
}

// Draw renders the quad as a filled rectangle.
func (q *Quad) Draw(dst *ebiten.Image) {
	vector.DrawFilledRect(dst, float32(q.Position.X), float32(q.Position.Y), float32(q.Size.X), float32(q.Size.Y), q.Color.toRGBA(), true)
}

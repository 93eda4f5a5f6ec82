package reed

// Body is the view a Component takes of the object that owns it. Both Point
// and Quad implement it.
type Body interface {
	// Vel returns the body's current velocity.
	Vel() Vec2
	// SetVel replaces the body's velocity.
	SetVel(v Vec2)
	// IsFixed reports whether the body is pinned in place. Fixed bodies are
	// never moved by components, constraints, or collision response.
	IsFixed() bool
}

// Component is a behavior attached to a Point or Quad. Update runs once per
// simulation step, before integration; OnCollide runs when the owner overlaps
// another body. Components hold no reference to their owner — the owner is
// passed in on each call.
type Component interface {
	Update(b Body)
	OnCollide(me, other Body)
}

// Gravity accelerates its owner downward by a constant amount each step.
type Gravity struct {
	Strength float64 // added to the vertical velocity every step
}

// NewGravity returns a Gravity component with the given per-step strength.
func NewGravity(strength float64) *Gravity {
	return &Gravity{Strength: strength}
}

// Update applies the gravitational acceleration to b.
func (g *Gravity) Update(b Body) {
	if b.IsFixed() {
		return
	}
	v := b.Vel()
	v.Y += g.Strength
	b.SetVel(v)
}

// OnCollide is a no-op; Gravity does not react to collisions.
func (g *Gravity) OnCollide(me, other Body) {}

// Friction damps its owner's velocity by a multiplicative factor each step.
type Friction struct {
	Coefficient float64 // velocity multiplier per step, typically just under 1
}

// NewFriction returns a Friction component with the given damping coefficient.
func NewFriction(coefficient float64) *Friction {
	return &Friction{Coefficient: coefficient}
}

// Update scales b's velocity by the coefficient.
func (f *Friction) Update(b Body) {
	if b.IsFixed() {
		return
	}
	v := b.Vel()
	v.X *= f.Coefficient
	v.Y *= f.Coefficient
	b.SetVel(v)
}

// OnCollide is a no-op; Friction does not react to collisions.
func (f *Friction) OnCollide(me, other Body) {}

// Force adds a force vector to its owner's velocity. A one-shot Force applies
// once and removes itself; a permanent Force applies every step until removed.
type Force struct {
	Vector    Vec2
	Permanent bool

	spent bool
}

// NewForce returns a one-shot Force that applies on the next step and then
// expires.
func NewForce(v Vec2) *Force {
	return &Force{Vector: v}
}

// NewPermanentForce returns a Force that applies every step until removed.
func NewPermanentForce(v Vec2) *Force {
	return &Force{Vector: v, Permanent: true}
}

// Update adds the force vector to b's velocity. A one-shot Force marks itself
// spent and is dropped by the owner at the end of the component pass, even
// when the owner is fixed.
func (f *Force) Update(b Body) {
	if f.spent {
		return
	}
	if !b.IsFixed() {
		v := b.Vel()
		v.X += f.Vector.X
		v.Y += f.Vector.Y
		b.SetVel(v)
	}
	if !f.Permanent {
		f.spent = true
	}
}

// OnCollide is a no-op; Force does not react to collisions.
func (f *Force) OnCollide(me, other Body) {}

// findCollision returns the first Collision component in comps, or nil.
func findCollision(comps []Component) *Collision {
	for _, c := range comps {
		if col, ok := c.(*Collision); ok {
			return col
		}
	}
	return nil
}

// runComponents runs one update pass over comps and drops any one-shot forces
// that fired, returning the retained slice.
func runComponents(b Body, comps []Component) []Component {
	for _, c := range comps {
		c.Update(b)
	}
	kept := comps[:0]
	for _, c := range comps {
		if f, ok := c.(*Force); ok && f.spent {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

package reed

import "testing"

func TestNewCollisionClamps(t *testing.T) {
	c := NewCollision(1.5, -0.2)
	if c.Bounce != 1 {
		t.Errorf("bounce = %v, want clamped to 1", c.Bounce)
	}
	if c.SlopeFriction != 0 {
		t.Errorf("slope friction = %v, want clamped to 0", c.SlopeFriction)
	}
}

func TestCollisionResolvesPointPair(t *testing.T) {
	a := NewPoint(Vec2{}, 1, 10)
	b := NewPoint(Vec2{X: 15}, 1, 10)
	a.Velocity = Vec2{X: 5}
	b.Velocity = Vec2{X: -5}

	c := NewCollision(0.8, 0.85)
	c.OnCollide(&a, &b)

	// Same outcome as calling ResolveCollision with Bounce as restitution.
	assertNear(t, "a.vx", a.Velocity.X, -4)
	assertNear(t, "b.vx", b.Velocity.X, 4)
}

func TestCollisionIgnoresMixedPair(t *testing.T) {
	p := NewPoint(Vec2{}, 1, 10)
	p.Velocity = Vec2{X: 5}
	q := NewQuad(Vec2{X: 5, Y: -5}, Vec2{X: 20, Y: 20})

	c := NewCollision(0.8, 0.85)
	c.OnCollide(&p, &q)

	if p.Velocity.X != 5 || q.Velocity != (Vec2{}) {
		t.Error("mixed point/quad pair should be ignored")
	}
}

func TestCollisionQuadImpulse(t *testing.T) {
	me := NewQuad(Vec2{}, Vec2{X: 40, Y: 40})
	other := NewQuad(Vec2{X: 30}, Vec2{X: 40, Y: 40})
	me.Velocity = Vec2{X: 5}
	other.Velocity = Vec2{X: -5}

	c := NewCollision(0.5, 0.85)
	c.OnCollide(&me, &other)

	// Centers sit 30 apart against a 40 unit minimum: closing speed 10
	// becomes an undivided impulse of 15 on each side.
	assertNear(t, "me.vx", me.Velocity.X, -10)
	assertNear(t, "other.vx", other.Velocity.X, 10)

	// Both shift by half the 10 unit overlap.
	assertNear(t, "me.x", me.Position.X, -5)
	assertNear(t, "other.x", other.Position.X, 35)
}

func TestCollisionQuadAgainstFixed(t *testing.T) {
	me := NewQuad(Vec2{}, Vec2{X: 40, Y: 40})
	me.Velocity = Vec2{X: 5}
	wall := NewQuad(Vec2{X: 30}, Vec2{X: 40, Y: 40})
	wall.Fixed = true

	c := NewCollision(0, 0.85)
	c.OnCollide(&me, &wall)

	assertNear(t, "me.vx", me.Velocity.X, 0)
	assertNear(t, "me.x", me.Position.X, -5)
	if wall.Velocity != (Vec2{}) || wall.Position.X != 30 {
		t.Error("fixed quad should not move")
	}
}

func TestCollisionQuadSeparating(t *testing.T) {
	me := NewQuad(Vec2{}, Vec2{X: 40, Y: 40})
	other := NewQuad(Vec2{X: 30}, Vec2{X: 40, Y: 40})
	me.Velocity = Vec2{X: -3}
	other.Velocity = Vec2{X: 3}

	c := NewCollision(0.5, 0.85)
	c.OnCollide(&me, &other)

	// Already separating: no impulse and no push.
	assertNear(t, "me.vx", me.Velocity.X, -3)
	assertNear(t, "other.vx", other.Velocity.X, 3)
	assertNear(t, "me.x", me.Position.X, 0)
	assertNear(t, "other.x", other.Position.X, 30)
}

func TestCollisionQuadBothFixed(t *testing.T) {
	me := NewQuad(Vec2{}, Vec2{X: 40, Y: 40})
	me.Fixed = true
	other := NewQuad(Vec2{X: 30}, Vec2{X: 40, Y: 40})
	other.Fixed = true

	c := NewCollision(0.5, 0.85)
	c.OnCollide(&me, &other)

	if me.Position.X != 0 || other.Position.X != 30 {
		t.Error("fixed quads should not move")
	}
}

func TestApplySlopeOnFlatSegment(t *testing.T) {
	a := NewPoint(Vec2{X: 0, Y: 100}, 1, 5)
	b := NewPoint(Vec2{X: 100, Y: 100}, 1, 5)
	p := NewPoint(Vec2{X: 50, Y: 95}, 1, 10)
	p.Velocity = Vec2{X: 4, Y: 3}

	c := NewCollision(0.2, 0.5)
	if !c.ApplySlope(&p, &a, &b) {
		t.Fatal("point resting on the segment should follow it")
	}

	// Velocity projects onto the segment, is damped, and gets the small
	// downward stick.
	assertNear(t, "vx", p.Velocity.X, 2)
	assertNear(t, "vy", p.Velocity.Y, slopeStick)
}

func TestApplySlopeOnIncline(t *testing.T) {
	a := NewPoint(Vec2{X: 0, Y: 0}, 1, 5)
	b := NewPoint(Vec2{X: 100, Y: 100}, 1, 5)
	p := NewPoint(Vec2{X: 50, Y: 50}, 1, 10)
	p.Velocity = Vec2{X: 6}

	c := NewCollision(0.2, 1)
	if !c.ApplySlope(&p, &a, &b) {
		t.Fatal("point on the incline should follow it")
	}

	// Projection of (6,0) onto the 45 degree direction keeps 3 on each
	// axis.
	assertNear(t, "vx", p.Velocity.X, 3)
	assertNear(t, "vy", p.Velocity.Y, 3+slopeStick)
}

func TestApplySlopeRejectsOffSegment(t *testing.T) {
	a := NewPoint(Vec2{X: 0, Y: 100}, 1, 5)
	b := NewPoint(Vec2{X: 100, Y: 100}, 1, 5)
	p := NewPoint(Vec2{X: 150, Y: 100}, 1, 10)
	p.Velocity = Vec2{X: 4}

	c := NewCollision(0.2, 0.5)
	if c.ApplySlope(&p, &a, &b) {
		t.Error("point past the segment end should not follow it")
	}
	assertNear(t, "vx", p.Velocity.X, 4)
}

func TestApplySlopeRejectsDistantPoint(t *testing.T) {
	a := NewPoint(Vec2{X: 0, Y: 100}, 1, 5)
	b := NewPoint(Vec2{X: 100, Y: 100}, 1, 5)
	p := NewPoint(Vec2{X: 50, Y: 70}, 1, 10)

	c := NewCollision(0.2, 0.5)
	if c.ApplySlope(&p, &a, &b) {
		t.Error("point floating above the segment should not follow it")
	}
}

func TestApplySlopeRejectsFixedPoint(t *testing.T) {
	a := NewPoint(Vec2{X: 0, Y: 100}, 1, 5)
	b := NewPoint(Vec2{X: 100, Y: 100}, 1, 5)
	p := NewPoint(Vec2{X: 50, Y: 100}, 1, 10)
	p.Fixed = true

	c := NewCollision(0.2, 0.5)
	if c.ApplySlope(&p, &a, &b) {
		t.Error("fixed point should not follow a slope")
	}
}

func TestApplySlopeRejectsDegenerateSegment(t *testing.T) {
	a := NewPoint(Vec2{X: 50, Y: 100}, 1, 5)
	b := NewPoint(Vec2{X: 50, Y: 100}, 1, 5)
	p := NewPoint(Vec2{X: 50, Y: 100}, 1, 10)

	c := NewCollision(0.2, 0.5)
	if c.ApplySlope(&p, &a, &b) {
		t.Error("zero-length segment should be ignored")
	}
}

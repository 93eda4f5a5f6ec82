package reed

import (
	"math"
	"testing"
)

func TestDefaultShapeConfig(t *testing.T) {
	c := DefaultShapeConfig()
	if c.Color != ColorWhite {
		t.Errorf("color = %+v, want white", c.Color)
	}
	assertNear(t, "gravity", c.Gravity, 10)
	assertNear(t, "friction", c.Friction, 0.95)
	assertNear(t, "bounce", c.Bounce, 0.2)
	assertNear(t, "slope friction", c.SlopeFriction, 0.85)
	assertNear(t, "point radius", c.PointRadius, 15)
	assertNear(t, "point mass", c.PointMass, 1)
	assertNear(t, "stiffness", c.ConstraintStiffness, 0.95)
	if c.Fixed {
		t.Error("default config should not be fixed")
	}
}

func TestShapeConfigPresets(t *testing.T) {
	tests := []struct {
		name                      string
		config                    ShapeConfig
		gravity, friction, bounce float64
	}{
		{"low gravity", LowGravityConfig(), 2, 0.8, 0.7},
		{"high friction", HighFrictionConfig(), 9.81, 0.95, 0.2},
		{"bouncy", BouncyConfig(), 9.81, 0.5, 0.9},
		{"space like", SpaceLikeConfig(), 0.1, 0.1, 0.8},
	}
	for _, tt := range tests {
		assertNear(t, tt.name+" gravity", tt.config.Gravity, tt.gravity)
		assertNear(t, tt.name+" friction", tt.config.Friction, tt.friction)
		assertNear(t, tt.name+" bounce", tt.config.Bounce, tt.bounce)
		// Presets only override the motion feel.
		assertNear(t, tt.name+" point radius", tt.config.PointRadius, 15)
		assertNear(t, tt.name+" stiffness", tt.config.ConstraintStiffness, 0.95)
	}
}

func TestNewTriangleShape(t *testing.T) {
	center := Vec2{X: 100, Y: 100}
	s := NewTriangleShape(center, Vec2{X: 160, Y: 100}, DefaultShapeConfig())

	if len(s.Points) != 3 {
		t.Fatalf("points = %d, want 3", len(s.Points))
	}
	if len(s.Constraints) != 3 {
		t.Fatalf("constraints = %d, want 3", len(s.Constraints))
	}

	// The first vertex lands on the size point; all vertices share the
	// circumradius.
	assertNear(t, "v0.x", s.Points[0].Position.X, 160)
	assertNear(t, "v0.y", s.Points[0].Position.Y, 100)
	for i := range s.Points {
		dx := s.Points[i].Position.X - center.X
		dy := s.Points[i].Position.Y - center.Y
		assertNear(t, "circumradius", math.Sqrt(dx*dx+dy*dy), 60)
	}

	for _, c := range s.Constraints {
		got := pointDistance(&s.Points[c.P1], &s.Points[c.P2])
		assertNear(t, "edge rest length", c.RestLength, got)
		assertNear(t, "edge length", got, 60*math.Sqrt(3))
	}
}

func TestNewSquareShape(t *testing.T) {
	s := NewSquareShape(Vec2{}, Vec2{X: 50}, DefaultShapeConfig())

	if len(s.Points) != 4 {
		t.Fatalf("points = %d, want 4", len(s.Points))
	}
	if len(s.Constraints) != 6 {
		t.Fatalf("constraints = %d, want 4 edges plus 2 diagonals", len(s.Constraints))
	}

	for i := 0; i < 4; i++ {
		c := s.Constraints[i]
		assertNear(t, "edge rest length", c.RestLength, 50*math.Sqrt2)
	}

	// Diagonals brace opposite corners at the measured corner distance,
	// which crosses the center.
	d1, d2 := s.Constraints[4], s.Constraints[5]
	if d1.P1 != 0 || d1.P2 != 2 || d2.P1 != 1 || d2.P2 != 3 {
		t.Errorf("diagonals connect %d-%d and %d-%d, want 0-2 and 1-3", d1.P1, d1.P2, d2.P1, d2.P2)
	}
	assertNear(t, "diagonal 0-2", d1.RestLength, 100)
	assertNear(t, "diagonal 1-3", d2.RestLength, 100)
}

func TestNewSquareShapeRotated(t *testing.T) {
	// An off-axis size point rotates the whole square with it.
	s := NewSquareShape(Vec2{}, Vec2{X: 30, Y: 40}, DefaultShapeConfig())

	assertNear(t, "v0.x", s.Points[0].Position.X, 30)
	assertNear(t, "v0.y", s.Points[0].Position.Y, 40)
	assertNear(t, "diagonal", s.Constraints[4].RestLength, 100)
}

func TestNewCircleShape(t *testing.T) {
	center := Vec2{X: 200, Y: 200}
	s := NewCircleShape(center, Vec2{X: 240, Y: 200}, 8, DefaultShapeConfig())

	if len(s.Points) != 8 {
		t.Fatalf("points = %d, want 8", len(s.Points))
	}
	if len(s.Constraints) != 16 {
		t.Fatalf("constraints = %d, want 8 edges plus 8 braces", len(s.Constraints))
	}

	for i := range s.Points {
		dx := s.Points[i].Position.X - center.X
		dy := s.Points[i].Position.Y - center.Y
		assertNear(t, "radius", math.Sqrt(dx*dx+dy*dy), 40)
	}

	// Braces pair each point with its opposite across the center.
	for i := 8; i < 16; i++ {
		c := s.Constraints[i]
		if c.P2 != (c.P1+4)%8 {
			t.Errorf("brace %d connects %d-%d, want opposite points", i, c.P1, c.P2)
		}
		assertNear(t, "brace length", c.RestLength, 80)
	}
}

func TestNewCircleShapeTooFewPointsPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for a two point circle, got none")
		}
	}()
	NewCircleShape(Vec2{}, Vec2{X: 40}, 2, DefaultShapeConfig())
}

func TestNewLineShape(t *testing.T) {
	s := NewLineShape(Vec2{}, Vec2{X: 90}, 4, DefaultShapeConfig())

	if len(s.Points) != 4 {
		t.Fatalf("points = %d, want 4", len(s.Points))
	}
	if len(s.Constraints) != 3 {
		t.Fatalf("constraints = %d, want 3", len(s.Constraints))
	}

	for i, want := range []float64{0, 30, 60, 90} {
		assertNear(t, "x", s.Points[i].Position.X, want)
		assertNear(t, "y", s.Points[i].Position.Y, 0)
	}
	for _, c := range s.Constraints {
		assertNear(t, "segment rest length", c.RestLength, 30)
	}

	// A movable line carries the physics components.
	s.Points[0].UpdateComponents()
	assertNear(t, "vy after gravity and friction", s.Points[0].Velocity.Y, 10*0.95)
}

func TestNewLineShapeFixed(t *testing.T) {
	cfg := DefaultShapeConfig()
	cfg.Fixed = true
	s := NewLineShape(Vec2{}, Vec2{X: 90}, 4, cfg)

	for i := range s.Points {
		if !s.Points[i].Fixed {
			t.Fatalf("point %d not fixed", i)
		}
	}

	// Fixed lines skip the components entirely: unpinning a point later
	// does not make it fall.
	s.Points[0].Fixed = false
	s.Points[0].UpdateComponents()
	if s.Points[0].Velocity.Y != 0 {
		t.Errorf("vy = %v, want 0 on a component-free point", s.Points[0].Velocity.Y)
	}
}

func TestNewLineShapeTooFewPointsPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for a one point line, got none")
		}
	}()
	NewLineShape(Vec2{}, Vec2{X: 90}, 1, DefaultShapeConfig())
}

func TestShapeConfigColorApplied(t *testing.T) {
	cfg := DefaultShapeConfig()
	cfg.Color = Color{R: 1, G: 0.5, B: 0.25, A: 1}
	s := NewSquareShape(Vec2{}, Vec2{X: 50}, cfg)

	for i := range s.Points {
		if s.Points[i].Color != cfg.Color {
			t.Fatalf("point %d color = %+v", i, s.Points[i].Color)
		}
	}
	for i := range s.Constraints {
		if s.Constraints[i].Color != cfg.Color {
			t.Fatalf("constraint %d color = %+v", i, s.Constraints[i].Color)
		}
	}
}

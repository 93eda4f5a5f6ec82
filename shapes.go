package reed

import "math"

// ShapeConfig carries the construction parameters shared by the shape
// factories. Start from DefaultShapeConfig and override what you need.
type ShapeConfig struct {
	Color               Color
	Gravity             float64
	Friction            float64
	Bounce              float64
	SlopeFriction       float64
	PointRadius         float64
	PointMass           float64
	ConstraintStiffness float64
	Fixed               bool
}

// DefaultShapeConfig returns the baseline shape configuration: unit mass,
// soft but stable constraints, and a mild bounce.
func DefaultShapeConfig() ShapeConfig {
	return ShapeConfig{
		Color:               ColorWhite,
		Gravity:             10,
		Friction:            0.95,
		Bounce:              0.2,
		SlopeFriction:       0.85,
		PointRadius:         15,
		PointMass:           1,
		ConstraintStiffness: 0.95,
	}
}

// LowGravityConfig returns a floaty, bouncy configuration.
func LowGravityConfig() ShapeConfig {
	c := DefaultShapeConfig()
	c.Gravity = 2
	c.Friction = 0.8
	c.Bounce = 0.7
	return c
}

// HighFrictionConfig returns a configuration that settles quickly.
func HighFrictionConfig() ShapeConfig {
	c := DefaultShapeConfig()
	c.Gravity = 9.81
	c.Friction = 0.95
	c.Bounce = 0.2
	return c
}

// BouncyConfig returns a configuration with lively collisions.
func BouncyConfig() ShapeConfig {
	c := DefaultShapeConfig()
	c.Gravity = 9.81
	c.Friction = 0.5
	c.Bounce = 0.9
	return c
}

// SpaceLikeConfig returns a near-weightless configuration.
func SpaceLikeConfig() ShapeConfig {
	c := DefaultShapeConfig()
	c.Gravity = 0.1
	c.Friction = 0.1
	c.Bounce = 0.8
	return c
}

// Shape is a set of points plus the constraints binding them, produced by the
// shape factories. Constraint indices are local to Points until the shape is
// added to a Simulation, which rebases them into its own point slice.
type Shape struct {
	Points      []Point
	Constraints []Constraint
}

// NewTriangleShape builds a triangle centered on center with its first vertex
// at sizePoint, which sets both the circumradius and the starting angle. The
// three edges are constrained at their constructed lengths.
func NewTriangleShape(center, sizePoint Vec2, config ShapeConfig) Shape {
	s := newPolygonShape(center, sizePoint, 3, config)
	attachShapeComponents(s.Points, config)
	return s
}

// NewSquareShape builds a square centered on center with its first vertex at
// sizePoint, which sets both the circumradius and the starting angle. The
// four edges plus both diagonals are constrained at their constructed
// lengths; the diagonals brace the square against shearing.
func NewSquareShape(center, sizePoint Vec2, config ShapeConfig) Shape {
	s := newPolygonShape(center, sizePoint, 4, config)

	d1 := NewConstraint(0, 2, pointDistance(&s.Points[0], &s.Points[2]), config.ConstraintStiffness)
	d1.Color = config.Color
	d2 := NewConstraint(1, 3, pointDistance(&s.Points[1], &s.Points[3]), config.ConstraintStiffness)
	d2.Color = config.Color
	s.Constraints = append(s.Constraints, d1, d2)

	attachShapeComponents(s.Points, config)
	return s
}

// NewCircleShape builds numPoints points evenly spaced on the circle through
// sizePoint, with adjacent points chained by constraints and every point
// braced against its opposite. Panics if numPoints < 3.
func NewCircleShape(center, sizePoint Vec2, numPoints int, config ShapeConfig) Shape {
	if numPoints < 3 {
		panic("reed: circle needs at least three points")
	}

	dx := sizePoint.X - center.X
	dy := sizePoint.Y - center.Y
	radius := math.Sqrt(dx*dx + dy*dy)

	var s Shape
	for i := 0; i < numPoints; i++ {
		angle := float64(i) * 2 * math.Pi / float64(numPoints)
		p := NewPoint(Vec2{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		}, config.PointMass, config.PointRadius)
		p.Fixed = config.Fixed
		p.Color = config.Color
		s.Points = append(s.Points, p)
	}

	for i := 0; i < numPoints; i++ {
		next := (i + 1) % numPoints
		c := NewConstraint(i, next, pointDistance(&s.Points[i], &s.Points[next]), config.ConstraintStiffness)
		c.Color = config.Color
		s.Constraints = append(s.Constraints, c)
	}

	for i := 0; i < numPoints; i++ {
		opposite := (i + numPoints/2) % numPoints
		c := NewConstraint(i, opposite, pointDistance(&s.Points[i], &s.Points[opposite]), config.ConstraintStiffness)
		c.Color = config.Color
		s.Constraints = append(s.Constraints, c)
	}

	attachShapeComponents(s.Points, config)
	return s
}

// NewLineShape builds numPoints points spaced evenly from start to end, with
// adjacent points chained by constraints. A Fixed config pins every point and
// skips the physics components, which makes the line a static rope or slope.
// Panics if numPoints < 2.
func NewLineShape(start, end Vec2, numPoints int, config ShapeConfig) Shape {
	if numPoints < 2 {
		panic("reed: line needs at least two points")
	}

	var s Shape
	for i := 0; i < numPoints; i++ {
		t := float64(i) / float64(numPoints-1)
		p := NewPoint(Vec2{
			X: start.X + (end.X-start.X)*t,
			Y: start.Y + (end.Y-start.Y)*t,
		}, config.PointMass, config.PointRadius)
		p.Fixed = config.Fixed
		p.Color = config.Color
		s.Points = append(s.Points, p)
	}

	for i := 0; i < numPoints-1; i++ {
		c := NewConstraint(i, i+1, pointDistance(&s.Points[i], &s.Points[i+1]), config.ConstraintStiffness)
		c.Color = config.Color
		s.Constraints = append(s.Constraints, c)
	}

	if !config.Fixed {
		attachShapeComponents(s.Points, config)
	}
	return s
}

// newPolygonShape builds a regular polygon with its first vertex at
// sizePoint and edge constraints at their constructed lengths.
func newPolygonShape(center, sizePoint Vec2, sides int, config ShapeConfig) Shape {
	dx := sizePoint.X - center.X
	dy := sizePoint.Y - center.Y
	radius := math.Sqrt(dx*dx + dy*dy)
	start := math.Atan2(dy, dx)

	var s Shape
	for i := 0; i < sides; i++ {
		angle := start + float64(i)*2*math.Pi/float64(sides)
		p := NewPoint(Vec2{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		}, config.PointMass, config.PointRadius)
		p.Fixed = config.Fixed
		p.Color = config.Color
		s.Points = append(s.Points, p)
	}

	for i := 0; i < sides; i++ {
		next := (i + 1) % sides
		c := NewConstraint(i, next, pointDistance(&s.Points[i], &s.Points[next]), config.ConstraintStiffness)
		c.Color = config.Color
		s.Constraints = append(s.Constraints, c)
	}
	return s
}

func attachShapeComponents(points []Point, config ShapeConfig) {
	for i := range points {
		p := &points[i]
		p.AddComponent(NewGravity(config.Gravity))
		p.AddComponent(NewFriction(config.Friction))
		p.AddComponent(NewCollision(config.Bounce, config.SlopeFriction))
	}
}

func pointDistance(a, b *Point) float64 {
	dx := b.Position.X - a.Position.X
	dy := b.Position.Y - a.Position.Y
	return math.Sqrt(dx*dx + dy*dy)
}

package reed

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// EventSink is the interface for optional ECS integration. When set on a
// Simulation, collision events are forwarded to the ECS.
type EventSink interface {
	EmitEvent(event CollisionEvent)
}

// CollisionKind tells which body slice a CollisionEvent indexes into.
type CollisionKind uint8

const (
	CollisionPoints CollisionKind = iota // A and B index Simulation.Points
	CollisionQuads                       // A and B index Simulation.Quads
)

// CollisionEvent carries contact data for the ECS bridge.
type CollisionEvent struct {
	Kind CollisionKind
	A, B int
	X, Y float64 // contact midpoint
}

const (
	defaultRestitution  = 0.8
	defaultSolverPasses = 8

	// collisionWindow widens pair detection slightly beyond touching so
	// grazing contacts are still resolved.
	collisionWindow = 1.05
	// separationThreshold is the fraction of the combined radii below which
	// a pair is pushed apart before impulse resolution.
	separationThreshold = 0.95
	separationPush      = 0.2

	// fastVelocity splits the separation damping into two tiers: points
	// moving faster than this on either axis are damped harder.
	fastVelocity = 3.0
	hardDamping  = 0.3
	softDamping  = 0.5
)

// Simulation owns the particle world: the shared point arena, the constraints
// referencing it by index, and the quads. Step advances the world one frame;
// Draw renders it.
type Simulation struct {
	Points      []Point
	Constraints []Constraint
	Quads       []Quad

	// Restitution is the bounce coefficient applied when neither point of a
	// colliding pair carries a Collision component.
	Restitution float64
	// SolverPasses is the number of constraint relaxation passes per Step.
	SolverPasses int

	sink       EventSink
	debug      bool
	updateFunc func() error

	slopeDone []bool // scratch: points already slope-adjusted this step
}

// NewSimulation returns an empty world with the default restitution and
// solver pass count.
func NewSimulation() *Simulation {
	return &Simulation{
		Restitution:  defaultRestitution,
		SolverPasses: defaultSolverPasses,
	}
}

// SetUpdateFunc registers a callback run at the start of every Step, before
// any physics. This is where input polling and per-frame game logic belong.
// A non-nil error from the callback aborts the step and is returned by Step.
func (s *Simulation) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// SetEventSink sets the optional ECS bridge.
func (s *Simulation) SetEventSink(sink EventSink) {
	s.sink = sink
}

// SetDebugMode enables or disables debug mode. When enabled, per-step timing
// and contact stats are logged to stderr.
func (s *Simulation) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// AddPoint appends a point and returns its index.
func (s *Simulation) AddPoint(p Point) int {
	s.Points = append(s.Points, p)
	return len(s.Points) - 1
}

// AddConstraint appends a constraint between points already in the
// simulation.
func (s *Simulation) AddConstraint(c Constraint) {
	s.Constraints = append(s.Constraints, c)
}

// AddQuad appends a quad and returns its index.
func (s *Simulation) AddQuad(q Quad) int {
	s.Quads = append(s.Quads, q)
	return len(s.Quads) - 1
}

// AddShape copies a shape's points and constraints into the simulation,
// rebasing the constraint indices from shape-local to simulation-global. It
// returns the index of the shape's first point.
func (s *Simulation) AddShape(shape Shape) int {
	base := len(s.Points)
	s.Points = append(s.Points, shape.Points...)
	for _, c := range shape.Constraints {
		c.P1 += base
		c.P2 += base
		s.Constraints = append(s.Constraints, c)
	}
	return base
}

// RemovePoint deletes the point at index i along with every constraint
// referencing it. The last point moves into the vacated slot and constraints
// referencing it are remapped, so callers must not assume point indices
// survive a removal.
func (s *Simulation) RemovePoint(i int) {
	if i < 0 || i >= len(s.Points) {
		return
	}
	last := len(s.Points) - 1
	s.Points[i] = s.Points[last]
	s.Points = s.Points[:last]

	kept := s.Constraints[:0]
	for _, c := range s.Constraints {
		if c.P1 == i || c.P2 == i {
			continue
		}
		if c.P1 == last {
			c.P1 = i
		}
		if c.P2 == last {
			c.P2 = i
		}
		kept = append(kept, c)
	}
	s.Constraints = kept
}

// AttractPoints adds a one-shot force to every point within radius of center,
// pulling it toward center scaled by strength times the offset. Useful for
// pointer interaction.
func (s *Simulation) AttractPoints(center Vec2, radius, strength float64) {
	for i := range s.Points {
		p := &s.Points[i]
		dx := center.X - p.Position.X
		dy := center.Y - p.Position.Y
		if math.Sqrt(dx*dx+dy*dy) < radius {
			p.AddComponent(NewForce(Vec2{X: dx * strength, Y: dy * strength}))
		}
	}
}

// Step advances the world one frame: the update callback runs first, then
// components, integration, constraint relaxation, and collision resolution,
// in that order. The callback's error aborts the step and is returned.
func (s *Simulation) Step() error {
	dt := 1.0 / float64(ebiten.TPS())

	if s.updateFunc != nil {
		if err := s.updateFunc(); err != nil {
			return err
		}
	}

	var stats debugStats
	var t0 time.Time

	if s.debug {
		t0 = time.Now()
	}

	for i := range s.Points {
		s.Points[i].UpdateComponents()
	}
	for i := range s.Quads {
		s.Quads[i].UpdateComponents()
	}

	if s.debug {
		stats.componentTime = time.Since(t0)
		t0 = time.Now()
	}

	for i := range s.Points {
		s.Points[i].Update(dt)
	}
	for i := range s.Quads {
		q := &s.Quads[i]
		if !q.Fixed {
			q.Position.X += q.Velocity.X * dt
			q.Position.Y += q.Velocity.Y * dt
		}
	}

	if s.debug {
		stats.integrateTime = time.Since(t0)
		t0 = time.Now()
	}

	for n := 0; n < s.SolverPasses; n++ {
		for i := range s.Constraints {
			s.Constraints[i].Solve(s.Points)
		}
	}

	if s.debug {
		stats.solveTime = time.Since(t0)
		t0 = time.Now()
	}

	contacts := s.collidePoints()
	contacts += s.collideQuads()

	if s.debug {
		stats.collideTime = time.Since(t0)
		stats.pointCount = len(s.Points)
		stats.constraintCount = len(s.Constraints)
		stats.quadCount = len(s.Quads)
		stats.contactCount = contacts
		s.debugLog(stats)
	}
	return nil
}

// collidePoints checks every point pair, separates deep overlaps, and
// dispatches contact resolution. It returns the number of contacts.
func (s *Simulation) collidePoints() int {
	if cap(s.slopeDone) < len(s.Points) {
		s.slopeDone = make([]bool, len(s.Points))
	}
	s.slopeDone = s.slopeDone[:len(s.Points)]
	for i := range s.slopeDone {
		s.slopeDone[i] = false
	}

	contacts := 0
	for i := 0; i < len(s.Points); i++ {
		for j := i + 1; j < len(s.Points); j++ {
			pi := &s.Points[i]
			pj := &s.Points[j]

			dx := pi.Position.X - pj.Position.X
			dy := pi.Position.Y - pj.Position.Y
			distance := math.Sqrt(dx*dx + dy*dy)
			minDistance := pi.Radius + pj.Radius
			if distance >= minDistance*collisionWindow {
				continue
			}
			contacts++

			// Deeply overlapped pairs are pushed apart before the impulse,
			// with the velocities damped so the push does not add energy.
			if distance > 0 && distance < minDistance*separationThreshold {
				nx := dx / distance
				ny := dy / distance
				push := (minDistance - distance) * separationPush
				if !pi.IsFixed() {
					pi.Position.X += nx * push
					pi.Position.Y += ny * push
					damp := separationDamping(pi.Velocity)
					pi.Velocity.X *= damp
					pi.Velocity.Y *= damp
				}
				if !pj.IsFixed() {
					pj.Position.X -= nx * push
					pj.Position.Y -= ny * push
					damp := separationDamping(pj.Velocity)
					pj.Velocity.X *= damp
					pj.Velocity.Y *= damp
				}
			}

			s.dispatchPointCollision(i, j, pi, pj)

			if s.sink != nil {
				s.sink.EmitEvent(CollisionEvent{
					Kind: CollisionPoints,
					A:    i,
					B:    j,
					X:    (pi.Position.X + pj.Position.X) / 2,
					Y:    (pi.Position.Y + pj.Position.Y) / 2,
				})
			}
		}
	}
	return contacts
}

// dispatchPointCollision resolves one contact. A pair where either point
// carries a Collision component is handed to that point's components, owner
// side first; otherwise the default impulse response runs with the
// simulation's restitution.
func (s *Simulation) dispatchPointCollision(i, j int, pi, pj *Point) {
	switch {
	case findCollision(pi.components) != nil:
		for _, c := range pi.components {
			c.OnCollide(pi, pj)
		}
	case findCollision(pj.components) != nil:
		for _, c := range pj.components {
			c.OnCollide(pj, pi)
		}
	default:
		pi.ResolveCollision(pj, s.Restitution)
	}

	s.applySlope(i, pi, j)
	s.applySlope(j, pj, i)
}

// applySlope lets a colliding point follow the constraint segments incident
// to the point it hit, at most once per step.
func (s *Simulation) applySlope(i int, p *Point, otherIdx int) {
	if s.slopeDone[i] {
		return
	}
	col := findCollision(p.components)
	if col == nil {
		return
	}
	for k := range s.Constraints {
		cons := &s.Constraints[k]
		if cons.P1 != otherIdx && cons.P2 != otherIdx {
			continue
		}
		// Never slide a point along its own constraints.
		if cons.P1 == i || cons.P2 == i {
			continue
		}
		if cons.P1 < 0 || cons.P1 >= len(s.Points) || cons.P2 < 0 || cons.P2 >= len(s.Points) {
			continue
		}
		if col.ApplySlope(p, &s.Points[cons.P1], &s.Points[cons.P2]) {
			s.slopeDone[i] = true
			return
		}
	}
}

// collideQuads checks every quad pair and hands overlapping ones to their
// Collision components. Pairs where neither quad carries one only produce an
// event. It returns the number of contacts.
func (s *Simulation) collideQuads() int {
	contacts := 0
	for i := 0; i < len(s.Quads); i++ {
		for j := i + 1; j < len(s.Quads); j++ {
			qi := &s.Quads[i]
			qj := &s.Quads[j]
			if !qi.IsCollidingWith(qj) {
				continue
			}
			contacts++

			switch {
			case findCollision(qi.components) != nil:
				for _, c := range qi.components {
					c.OnCollide(qi, qj)
				}
			case findCollision(qj.components) != nil:
				for _, c := range qj.components {
					c.OnCollide(qj, qi)
				}
			}

			if s.sink != nil {
				ci := qi.Center()
				cj := qj.Center()
				s.sink.EmitEvent(CollisionEvent{
					Kind: CollisionQuads,
					A:    i,
					B:    j,
					X:    (ci.X + cj.X) / 2,
					Y:    (ci.Y + cj.Y) / 2,
				})
			}
		}
	}
	return contacts
}

func separationDamping(v Vec2) float64 {
	if math.Abs(v.X) > fastVelocity || math.Abs(v.Y) > fastVelocity {
		return hardDamping
	}
	return softDamping
}

// Draw renders the world: quads first, then constraints, then points, so
// points sit on top of the links binding them.
func (s *Simulation) Draw(screen *ebiten.Image) {
	for i := range s.Quads {
		s.Quads[i].Draw(screen)
	}
	for i := range s.Constraints {
		s.Constraints[i].Draw(screen, s.Points)
	}
	for i := range s.Points {
		s.Points[i].Draw(screen)
	}
}

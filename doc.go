// Package reed is a particle-physics 2D game engine for [Ebitengine].
//
// Reed simulates soft bodies as point masses joined by distance constraints,
// resolves collisions between them, and wraps the simulation in a window
// loop, a themed widget toolkit, and gradient rendering.
//
// Full documentation, tutorials, and examples are available at:
//
// https://phloemgames.github.io/reed/
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	sim := reed.NewSimulation()
//	sim.AddShape(reed.NewSquareShape(
//		reed.Vec2{X: 400, Y: 100}, reed.Vec2{X: 80, Y: 80},
//		reed.DefaultShapeConfig(),
//	))
//	reed.Run(sim, reed.RunConfig{
//		Title: "My Game", Width: 800, Height: 600,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Simulation.Step] and [Simulation.Draw] directly:
//
//	type Game struct{ sim *reed.Simulation }
//
//	func (g *Game) Update() error         { return g.sim.Step() }
//	func (g *Game) Draw(s *ebiten.Image)  { g.sim.Draw(s) }
//	func (g *Game) Layout(w, h int) (int, int) { return w, h }
//
// # Simulation
//
// A [Simulation] owns three pools: [Point] masses, distance [Constraint]
// links between them, and axis-aligned [Quad] boxes. Each frame it updates
// behavior components, integrates velocities, relaxes every constraint over
// several solver passes, and resolves collisions.
//
// Behavior attaches to points and quads as [Component] values: [Gravity],
// [Friction], one-shot or permanent [Force], and [Collision] response.
//
//	p := reed.NewPoint(reed.Vec2{X: 100, Y: 50}, 1, 10)
//	p.AddComponent(reed.NewGravity(10))
//	p.AddComponent(reed.NewCollision(0.5, 0.9))
//	sim.AddPoint(p)
//
// Prefabricated bodies come from the shape factory: [NewTriangleShape],
// [NewSquareShape], [NewCircleShape], and [NewLineShape], each configured
// by a [ShapeConfig] preset.
//
// # Key features
//
// Reed includes mass-weighted constraint relaxation, impulse collision
// response with slope following, physics presets, a widget toolkit
// ([Button], [Slider], [TextInput], [Dropdown], and friends) with eased
// transitions (via [gween]), multi-stop [Gradient] fills, and ECS
// integration (via [Donburi] adapter in reed/ecs).
//
// See the full docs for guides on each feature:
// https://phloemgames.github.io/reed/
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package reed

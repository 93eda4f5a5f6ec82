package reed

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const (
	defaultWindowWidth  = 800
	defaultWindowHeight = 600
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool // draw an FPS/TPS counter in the top-left corner
}

// Run opens a window and drives the simulation until the window closes or the
// simulation's update callback returns an error. Each frame runs one Step
// followed by one Draw. Zero width or height fall back to a default window
// size.
func Run(sim *Simulation, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = defaultWindowWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = defaultWindowHeight
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(&game{
		sim:     sim,
		showFPS: cfg.ShowFPS,
		width:   cfg.Width,
		height:  cfg.Height,
	})
}

// game adapts a Simulation to the ebiten game loop.
type game struct {
	sim     *Simulation
	showFPS bool
	width   int
	height  int
}

func (g *game) Update() error {
	return g.sim.Step()
}

func (g *game) Draw(screen *ebiten.Image) {
	g.sim.Draw(screen)
	if g.showFPS {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.0f  TPS: %.0f",
			ebiten.ActualFPS(), ebiten.ActualTPS()), 4, 4)
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

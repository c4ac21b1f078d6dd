//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"infoca/internal/core"
	"infoca/internal/eca"
	"infoca/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// engineSim is implemented by sims backed by an eca.Engine.
type engineSim interface {
	Engine() *eca.Engine
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	pace    *core.FixedStep

	onColor  color.Color
	offColor color.Color

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
	title    string
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	gp := render.NewGridPainter(sim.Size().W, sim.Size().H)
	return &Game{
		sim:      sim,
		painter:  gp,
		pace:     core.NewFixedStep(cfg.Rate),
		onColor:  color.Black,
		offColor: color.White,
		scale:    cfg.Scale,
		seed:     cfg.Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	step := g.tickOnce || (!g.paused && g.pace.ShouldStep())
	if step {
		g.sim.Step()
		g.tickOnce = false
		g.updateTitle()
	}
	return nil
}

func (g *Game) updateTitle() {
	es, ok := g.sim.(engineSim)
	if !ok {
		return
	}
	e := es.Engine()
	m, err := e.Metrics()
	if err != nil {
		return
	}
	title := fmt.Sprintf("rule %d  H=%.3f  H(X,Y)=%.3f  I=%.3f", e.Rule(), m.Entropy, m.JointUncertainty, m.MutualInformation)
	if title != g.title {
		g.title = title
		ebiten.SetWindowTitle(title)
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}

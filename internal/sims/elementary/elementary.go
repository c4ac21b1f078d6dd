// Package elementary projects an eca.Engine onto a scrolling 2D window for
// the viewer: the newest generation is the top row and history moves down.
package elementary

import (
	"strconv"

	"infoca/internal/core"
	"infoca/internal/eca"
)

// Config holds parameters for the projected automaton.
type Config struct {
	Width  int
	Height int
	Rule   int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Rule: 126}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Rule = parsed
		}
	}
	return c
}

// historyLimit bounds how many generations the engine keeps per window row
// before it is rebased onto its latest state.
const historyLimit = 4

// Elementary renders an engine's trajectory as a scrolling grid.
type Elementary struct {
	engine *eca.Engine
	grid   *core.ByteGrid
}

// New creates a projection of width cells and height rows under rule.
func New(width, height, rule int) (*Elementary, error) {
	e, err := eca.New(width, rule)
	if err != nil {
		return nil, err
	}
	return &Elementary{engine: e, grid: core.NewByteGrid(width, height)}, nil
}

// Name returns the simulation identifier.
func (e *Elementary) Name() string { return "elementary" }

// Size returns the window dimensions.
func (e *Elementary) Size() core.Size { return core.Size{W: e.grid.W, H: e.grid.H} }

// Cells exposes the render buffer.
func (e *Elementary) Cells() []uint8 { return e.grid.Cells() }

// Engine exposes the underlying automaton for metric queries.
func (e *Elementary) Engine() *eca.Engine { return e.engine }

// Reset reseeds the engine and clears the window down to the initial state.
func (e *Elementary) Reset(seed int64) {
	_ = e.engine.Reinitialize(seed)
	e.grid.Clear()
	if s, err := e.engine.Last(); err == nil {
		e.grid.SetRow(0, s)
	}
}

// Step computes the next generation and scrolls history downwards.
func (e *Elementary) Step() {
	if e.engine.Phase() == eca.PhaseUninitialized {
		return
	}
	if e.engine.Len() >= historyLimit*e.grid.H {
		e.rebase()
	}
	if err := e.engine.UpdateAll(1); err != nil {
		return
	}
	s, _ := e.engine.Last()
	cells := e.grid.Cells()
	w := e.grid.W
	copy(cells[w:], cells[:w*(e.grid.H-1)])
	e.grid.SetRow(0, s)
}

// rebase restarts the trajectory from its latest state.
func (e *Elementary) rebase() {
	last, err := e.engine.Last()
	if err != nil {
		return
	}
	e.engine.ClearTrajectory()
	_ = e.engine.SetState(last)
}

func init() {
	core.Register("elementary", func(cfg map[string]string) (core.Sim, error) {
		c := FromMap(cfg)
		sim, err := New(c.Width, c.Height, c.Rule)
		if err != nil {
			return nil, err
		}
		return sim, nil
	})
}

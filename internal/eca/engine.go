package eca

import (
	"fmt"
	"io"
	"log/slog"

	"infoca/internal/core"
	"infoca/internal/render"
)

// State is one time slice of the lattice: N cells holding 0 or 1.
type State []uint8

// Phase describes whether the engine holds any states.
type Phase int

const (
	// PhaseUninitialized means the trajectory is empty.
	PhaseUninitialized Phase = iota
	// PhaseReady means at least one state has been recorded.
	PhaseReady
)

func (p Phase) String() string {
	if p == PhaseReady {
		return "ready"
	}
	return "uninitialized"
}

// Engine evolves a ring of cells under a fixed elementary rule and records
// every generation. An Engine is not safe for concurrent use; give each
// goroutine its own.
type Engine struct {
	size       int
	rule       uint8
	table      RuleTable
	trajectory []State
	log        *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger routes engine diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// New creates an engine for size cells under rule. The trajectory starts empty.
func New(size, rule int, opts ...Option) (*Engine, error) {
	if size <= 0 {
		return nil, paramErr("size", size, "must be positive")
	}
	if rule < 0 || rule > 255 {
		return nil, paramErr("rule", rule, "must be in [0,255]")
	}
	e := &Engine{
		size:  size,
		rule:  uint8(rule),
		table: RuleToBinary(uint8(rule)),
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// NewFromConfig creates an engine from the size and rule of cfg.
func NewFromConfig(cfg Config, opts ...Option) (*Engine, error) {
	return New(cfg.Size, cfg.Rule, opts...)
}

// Size returns the number of cells per state.
func (e *Engine) Size() int { return e.size }

// Rule returns the Wolfram rule number.
func (e *Engine) Rule() uint8 { return e.rule }

// Table returns the decoded rule table.
func (e *Engine) Table() RuleTable { return e.table }

// Len returns the number of recorded states.
func (e *Engine) Len() int { return len(e.trajectory) }

// Phase reports whether the engine has been seeded.
func (e *Engine) Phase() Phase {
	if len(e.trajectory) == 0 {
		return PhaseUninitialized
	}
	return PhaseReady
}

// SetInitialState seeds the trajectory with N uniform random bits derived from
// seed. The same seed always yields the same state.
func (e *Engine) SetInitialState(seed int64) error {
	if len(e.trajectory) > 0 {
		return ErrAlreadyInitialized
	}
	e.trajectory = append(e.trajectory, State(core.NewRNG(seed).Binary(e.size)))
	return nil
}

// SetState seeds the trajectory with an explicit state.
func (e *Engine) SetState(state []uint8) error {
	if len(e.trajectory) > 0 {
		return ErrAlreadyInitialized
	}
	if len(state) != e.size {
		return paramErr("state length", len(state), fmt.Sprintf("must equal size %d", e.size))
	}
	for i, v := range state {
		if v > 1 {
			return paramErr(fmt.Sprintf("state[%d]", i), int(v), "must be 0 or 1")
		}
	}
	e.trajectory = append(e.trajectory, append(State(nil), state...))
	return nil
}

// Reinitialize clears the trajectory and seeds it again.
func (e *Engine) Reinitialize(seed int64) error {
	e.ClearTrajectory()
	return e.SetInitialState(seed)
}

// Update computes the successor of current. Every cell reads the same current
// state; the lattice wraps at both ends.
func (e *Engine) Update(current State) State {
	n := len(current)
	next := make(State, n)
	for i := 0; i < n; i++ {
		left := current[(i-1+n)%n]
		center := current[i]
		right := current[(i+1)%n]
		next[i] = e.table.Next(left, center, right)
	}
	return next
}

// UpdateAll appends n successive generations to the trajectory.
func (e *Engine) UpdateAll(n int) error {
	if n < 0 {
		return paramErr("steps", n, "must be non-negative")
	}
	if len(e.trajectory) == 0 {
		e.log.Warn("update requested before initialization", "rule", e.rule, "steps", n)
		return ErrNotInitialized
	}
	for ; n > 0; n-- {
		e.trajectory = append(e.trajectory, e.Update(e.trajectory[len(e.trajectory)-1]))
	}
	return nil
}

// Trajectory returns a copy of every recorded state in time order.
func (e *Engine) Trajectory() []State {
	out := make([]State, len(e.trajectory))
	for i, s := range e.trajectory {
		out[i] = append(State(nil), s...)
	}
	return out
}

// Last returns a copy of the most recent state.
func (e *Engine) Last() (State, error) {
	s, err := e.last()
	if err != nil {
		return nil, err
	}
	return append(State(nil), s...), nil
}

func (e *Engine) last() (State, error) {
	if len(e.trajectory) == 0 {
		return nil, ErrNotInitialized
	}
	return e.trajectory[len(e.trajectory)-1], nil
}

// ClearTrajectory drops every recorded state.
func (e *Engine) ClearTrajectory() {
	e.trajectory = nil
}

// ShowTrajectory writes one line per state, '_' for 0 and '*' for 1.
func (e *Engine) ShowTrajectory(w io.Writer) error {
	rows := make([][]uint8, len(e.trajectory))
	for i, s := range e.trajectory {
		rows[i] = s
	}
	return render.WriteGlyphs(w, rows, '_', '*')
}

package core

import "time"

// FixedStep paces generations at a steady rate independent of the frame rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep targeting the given generations per second.
func NewFixedStep(rate int) *FixedStep {
	fs := &FixedStep{}
	fs.SetRate(rate)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the generation rate. Non-positive values fall back to 30.
func (f *FixedStep) SetRate(rate int) {
	if rate <= 0 {
		rate = 30
	}
	f.step = time.Second / time.Duration(rate)
}

// ShouldStep reports whether the automaton should advance by one generation.
func (f *FixedStep) ShouldStep() bool {
	return f.ShouldStepAt(time.Now())
}

// ShouldStepAt is ShouldStep with an explicit clock reading.
func (f *FixedStep) ShouldStepAt(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

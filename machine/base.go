// SPDX-License-Identifier: MIT

package machine

// Base carries the bookkeeping every machine shares: name, phase, tick
// counter, status message and the write-once Result. Implementations embed
// it and drive it from their Step and Reset methods:
//
//	func (m *Foo) Step() {
//		if !m.Begin() {
//			return // already complete
//		}
//		...
//		m.Finish(res, "done")
//	}
type Base struct {
	name    string
	phase   Phase
	steps   int
	message string
	result  *Result
}

// NewBase returns a Base in the given initial phase.
func NewBase(name string, initial Phase, message string) Base {
	return Base{name: name, phase: initial, message: message}
}

// Name returns the machine name.
func (b *Base) Name() string { return b.name }

// Phase returns the current phase.
func (b *Base) Phase() Phase { return b.phase }

// Steps returns the ticks consumed since construction or Reset.
func (b *Base) Steps() int { return b.steps }

// Message returns the human-readable status line of the last tick.
func (b *Base) Message() string { return b.message }

// IsComplete reports whether the machine reached Complete.
func (b *Base) IsComplete() bool { return b.phase == Complete }

// Result returns a copy of the terminal Result once complete.
func (b *Base) Result() (Result, bool) {
	if b.result == nil {
		return Result{}, false
	}

	return b.result.Clone(), true
}

// Begin counts a tick and reports whether the caller should do work.
// It returns false, without counting, once the machine is complete.
func (b *Base) Begin() bool {
	if b.phase == Complete {
		return false
	}
	b.steps++

	return true
}

// Enter moves to phase p with a status message.
// Complete cannot be entered this way; use Finish.
func (b *Base) Enter(p Phase, message string) {
	if p == Complete || b.phase == Complete {
		return
	}
	b.phase = p
	b.message = message
}

// Say replaces the status message.
func (b *Base) Say(message string) { b.message = message }

// Finish stores r as the terminal Result and enters Complete.
// Only the first call has an effect.
func (b *Base) Finish(r Result, message string) {
	if b.phase == Complete {
		return
	}
	c := r.Clone()
	b.result = &c
	b.phase = Complete
	b.message = message
}

// Restart rewinds the bookkeeping to a fresh initial phase.
func (b *Base) Restart(initial Phase, message string) {
	b.phase = initial
	b.steps = 0
	b.message = message
	b.result = nil
}

// Snapshot assembles a Snapshot from the bookkeeping and the given registers.
// Registers must already be copies.
func (b *Base) Snapshot(regs ...Register) Snapshot {
	return Snapshot{
		Machine:   b.name,
		Phase:     b.phase,
		Steps:     b.steps,
		Message:   b.message,
		Complete:  b.phase == Complete,
		Registers: regs,
	}
}

// Run ticks m until it completes or limit ticks were issued (limit <= 0
// means no limit). It returns the number of ticks issued.
func Run(m Machine, limit int) int {
	var n int
	for !m.IsComplete() {
		if limit > 0 && n >= limit {
			break
		}
		m.Step()
		n++
	}

	return n
}

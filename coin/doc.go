// SPDX-License-Identifier: MIT

// Package coin implements the coin-toss machine pair:
//
//	Classical - one fair Heads/Tails toss per tick.
//	Quantum   - each toss walks a qubit through init, hadamard and
//	            superposition, and is measured as |0⟩ or |1⟩ on the fourth tick.
//
// Outcomes come from a math/rand stream seeded at construction and again
// on Reset, so a machine replays identically. Seed 0 selects the default
// seed 1. The quantum stream is derived from the seed with a SplitMix64
// mix so both machines built from one seed do not mirror each other.
package coin

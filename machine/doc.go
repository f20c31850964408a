// SPDX-License-Identifier: MIT

// Package machine defines the contract shared by every stepwise algorithm
// state machine in qstep.
//
// A Machine is built from validated input, advanced by exactly one unit of
// work per Step call (a "tick"), and inspected through read-only Snapshots.
// When its phase reaches Complete it produces a Result exactly once; further
// ticks are no-ops. Reset rewinds the machine to the state it had right after
// construction, re-derived from the stored input, so the same input driven
// by the same tick sequence always yields the same Result.
//
// Machines are single-owner values: nothing in this package or its
// implementations is safe for concurrent mutation, and nothing needs to be.
// The tick source lives outside the machine (see package clock).
//
// Errors:
//
//	ErrInvalidInput - root of every construction-time validation failure.
//	                  Packages wrap it in their own sentinels, so both
//	                  errors.Is(err, pkg.ErrX) and
//	                  errors.Is(err, machine.ErrInvalidInput) hold.
package machine

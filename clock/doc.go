// SPDX-License-Identifier: MIT

// Package clock supplies the external tick source that drives machines.
//
// A Clock blocks until the next period may start:
//
//	Immediate - never waits; runs machines flat out.
//	Manual    - waits for Tick() from another goroutine (step buttons, tests).
//	Paced     - one period per interval, via golang.org/x/time/rate.
//
// Drive ticks every incomplete machine once per period, in argument order,
// and stops when all are complete, the period limit is reached, or ctx is
// cancelled. Cancellation is observed only between periods; a Step is never
// interrupted.
package clock

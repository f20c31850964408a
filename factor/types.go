// SPDX-License-Identifier: MIT

package factor

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qstep/machine"
)

// Accepted input range.
const (
	MinN = 2
	MaxN = math.MaxInt32
)

// ErrOutOfRange is returned for n outside [MinN, MaxN].
var ErrOutOfRange = machine.InvalidInput("factor: n out of range")

// PhaseRunning is the only non-terminal phase.
const PhaseRunning machine.Phase = "running"

// Machine names.
const (
	NameTrial = "trial-division"
	NameShor  = "shor"
)

// Complexity labels.
const (
	ComplexityTrial = "O(√n)"
	ComplexityShor  = "O((log n)^3)"
)

// Register names exposed in snapshots.
const (
	RegFactors  = "factors"
	RegState    = "state" // trial: [remainder, divisor]
	RegStages   = "stages"
	RegSequence = "sequence"
)

func validate(n int) error {
	if n < MinN || n > MaxN {
		return fmt.Errorf("%w: n=%d, want %d..%d", ErrOutOfRange, n, MinN, MaxN)
	}

	return nil
}

func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// modPow computes base^exp mod m by square-and-multiply; m < 2^31 keeps
// every product inside int64.
func modPow(base, exp, m int64) int64 {
	result := int64(1) % m
	base %= m
	for exp > 0 {
		if exp&1 == 1 {
			result = result * base % m
		}
		base = base * base % m
		exp >>= 1
	}

	return result
}

// primeFactors returns the ascending prime factorization of n (empty for n < 2).
func primeFactors(n int64) []int {
	var out []int
	for d := int64(2); d*d <= n; d++ {
		for n%d == 0 {
			out = append(out, int(d))
			n /= d
		}
	}
	if n > 1 {
		out = append(out, int(n))
	}

	return out
}

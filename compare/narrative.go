// SPDX-License-Identifier: MIT

package compare

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/katalvlaran/qstep/machine"
)

const (
	pendingText   = "Run the simulation to see a detailed analysis of both algorithms."
	zeroStepsText = "Both algorithms finished without taking a step, so the input was already solved. "
)

// narrate renders the templated explanation for c.
func narrate(c Comparison, classical, quantum machine.Result) string {
	if !c.ClassicalDone && !c.QuantumDone {
		return pendingText
	}
	var b strings.Builder
	switch c.Problem {
	case Search:
		searchText(&b, c, classical, quantum)
	case Linear:
		linearText(&b, c, classical, quantum)
	case Path:
		pathText(&b, c, classical, quantum)
	case Factor:
		factorText(&b, c, classical, quantum)
	case Coin:
		coinText(&b, c, classical, quantum)
	default:
		fmt.Fprintf(&b, "Classical took %d steps, quantum-inspired took %d steps. ", c.ClassicalSteps, c.QuantumSteps)
	}

	return strings.TrimSpace(b.String())
}

func onlyOne(b *strings.Builder, c Comparison, classicalName, quantumName, unit string) bool {
	switch {
	case c.ClassicalDone && c.QuantumDone && c.ClassicalSteps == 0 && c.QuantumSteps == 0:
		b.WriteString(zeroStepsText)
	case c.ClassicalDone && c.QuantumDone:
		return false
	case c.ClassicalDone:
		fmt.Fprintf(b, "The %s finished after %d %s. The quantum simulation has not completed yet. ", classicalName, c.ClassicalSteps, unit)
	default:
		fmt.Fprintf(b, "The %s finished after %d %s. The classical simulation has not completed yet. ", quantumName, c.QuantumSteps, unit)
	}

	return true
}

func searchText(b *strings.Builder, c Comparison, classical, quantum machine.Result) {
	root := math.Sqrt(float64(c.Size))
	if !onlyOne(b, c, "classical linear search", "Grover search", "steps") {
		if c.QuantumWins {
			fmt.Fprintf(b, "In this simulation with %d elements, Grover's search demonstrated a %sx speedup over linear search. ", c.Size, c.SpeedupLabel)
			if c.Speedup < root {
				fmt.Fprintf(b, "The theoretical maximum for this size is about %.2fx. ", root)
			} else {
				fmt.Fprintf(b, "This matches the theoretical speedup of %.2fx for this size. ", root)
			}
		} else {
			b.WriteString("In this simulation, Grover's search did not beat linear search. ")
			if classical.Solved && float64(classical.Index) < root {
				fmt.Fprintf(b, "The target sits early in the sequence (index %d), the best case for a linear scan. ", classical.Index)
			} else {
				b.WriteString("Small inputs do not show the advantage of amplitude amplification yet. ")
			}
		}
		switch {
		case classical.Solved && quantum.Solved:
			fmt.Fprintf(b, "Both algorithms found the target at index %d. ", classical.Index)
		case classical.Solved:
			fmt.Fprintf(b, "Only the classical algorithm found the target at index %d. ", classical.Index)
		case quantum.Solved:
			fmt.Fprintf(b, "Only the quantum algorithm found the target at index %d. ", quantum.Index)
		default:
			b.WriteString("Neither algorithm found the target. ")
		}
	}
	b.WriteString("Grover's algorithm gives a quadratic speedup: classical search needs O(n) checks, Grover needs O(√n) iterations.")
}

func linearText(b *strings.Builder, c Comparison, classical, quantum machine.Result) {
	if !onlyOne(b, c, "Gaussian elimination", "HHL simulation", "steps") {
		if c.QuantumWins {
			fmt.Fprintf(b, "With a %d×%d matrix, the HHL simulation demonstrated a %sx speedup over Gaussian elimination. ", c.Size, c.Size, c.SpeedupLabel)
		} else {
			fmt.Fprintf(b, "With a small %d×%d matrix, Gaussian elimination performed better than the HHL simulation. ", c.Size, c.Size)
		}
		if !classical.Solved {
			fmt.Fprintf(b, "Gaussian elimination stopped: %s. ", classical.Reason)
		}
		if c.HasError {
			pct := c.RelativeError * 100
			switch {
			case pct < CloseErrorPct:
				fmt.Fprintf(b, "Both solutions agree closely, with %s relative error. ", c.ErrorLabel)
			case pct < ModerateErrorPct:
				fmt.Fprintf(b, "The solutions differ by %s relative error, expected from the approximations in the quantum simulation. ", c.ErrorLabel)
			default:
				fmt.Fprintf(b, "The solutions differ significantly (%s relative error) because of the simplified quantum simulation. ", c.ErrorLabel)
			}
		}
	}
	b.WriteString("Classical methods need O(n^3) operations, while HHL needs O(log n) under strong assumptions on state preparation and measurement.")
}

func pathText(b *strings.Builder, c Comparison, classical, quantum machine.Result) {
	if !onlyOne(b, c, "depth-first search", "layered breadth-first search", "steps") {
		fmt.Fprintf(b, "Depth-first search took %d steps and layered search took %d layers on a graph with %d vertices. ", c.ClassicalSteps, c.QuantumSteps, c.Size)
		switch {
		case classical.Solved && quantum.Solved && len(quantum.Path) < len(classical.Path):
			fmt.Fprintf(b, "The layered search found a shorter path (%d vs %d vertices). ", len(quantum.Path), len(classical.Path))
		case classical.Solved && quantum.Solved:
			fmt.Fprintf(b, "Both found a path of %d vertices. ", len(quantum.Path))
		case !classical.Solved && !quantum.Solved:
			b.WriteString("The end vertex is unreachable from the start. ")
		}
	}
	b.WriteString("Layered search explores each frontier at once, the way a superposition would, and always returns a shortest path.")
}

func factorText(b *strings.Builder, c Comparison, classical, quantum machine.Result) {
	if !onlyOne(b, c, "trial division", "Shor simulation", "steps") {
		if c.QuantumWins {
			fmt.Fprintf(b, "Factoring %d, the Shor simulation demonstrated a %sx speedup over trial division. ", c.Size, c.SpeedupLabel)
		} else {
			fmt.Fprintf(b, "Factoring %d, trial division needed fewer steps than the Shor simulation. ", c.Size)
		}
		if slices.Equal(classical.Factors, quantum.Factors) {
			fmt.Fprintf(b, "Both report the factors %v. ", classical.Factors)
		} else {
			fmt.Fprintf(b, "The factor lists differ: %v vs %v. ", classical.Factors, quantum.Factors)
		}
	}
	b.WriteString("Trial division needs O(√n) checks; Shor's period finding needs O((log n)^3) operations.")
}

func coinText(b *strings.Builder, c Comparison, classical, quantum machine.Result) {
	if !onlyOne(b, c, "classical coin", "quantum coin", "ticks") {
		fmt.Fprintf(b, "%d classical tosses gave %s; %d qubit measurements gave %s. ",
			len(classical.Outcomes), tally(classical.Outcomes), len(quantum.Outcomes), tally(quantum.Outcomes))
	}
	b.WriteString("A qubit in equal superposition measures |0⟩ or |1⟩ with probability 1/2, the same odds as a fair coin.")
}

func tally(outcomes []string) string {
	counts := map[string]int{}
	var order []string
	for _, o := range outcomes {
		if counts[o] == 0 {
			order = append(order, o)
		}
		counts[o]++
	}
	parts := make([]string, 0, len(order))
	for _, o := range order {
		parts = append(parts, fmt.Sprintf("%s %d", o, counts[o]))
	}

	return strings.Join(parts, ", ")
}

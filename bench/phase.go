// Package bench drives the engine comparison: it runs each kernel under
// cycle/instruction measurement, verifies accelerated results against the
// scalar references, and renders the summary table with the aggregate
// pass/fail outcome.
package bench

import (
	"log/slog"

	"github.com/sarchlab/hetbench/hw"
)

// Measurement is the counter delta observed across one kernel run.
type Measurement struct {
	Cycles uint64
	Instrs uint64
}

// RunPhase reinitializes a phase's data, brackets the kernel with counter
// reads, and returns the deltas. The counters are monotonic, so the deltas
// are always well defined.
func RunPhase(name string, ctrs hw.Counters, init, run func()) Measurement {
	if init != nil {
		init()
	}

	startCycles := ctrs.Cycles()
	startInstrs := ctrs.Instret()

	run()

	m := Measurement{
		Cycles: ctrs.Cycles() - startCycles,
		Instrs: ctrs.Instret() - startInstrs,
	}

	slog.Debug("phase complete",
		"name", name, "cycles", m.Cycles, "instructions", m.Instrs)

	return m
}

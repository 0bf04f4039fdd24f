package model

import (
	"math"

	"github.com/sarchlab/akita/v4/sim"
)

// virtualClock is the model's pair of free-running counters. Cycle time has
// two sources: work charged directly by the scalar core and vector unit, and
// event-engine time accumulated while the matrix accelerator drains. Both
// only ever grow, so the counters are monotonic within a run.
type virtualClock struct {
	engine sim.Engine
	freq   sim.Freq
	cpi    uint64

	charged uint64
	instret uint64
}

func (c *virtualClock) engineCycles() uint64 {
	return uint64(math.Round(float64(c.engine.CurrentTime()) * float64(c.freq)))
}

// Cycles reads the free-running cycle counter.
func (c *virtualClock) Cycles() uint64 {
	return c.charged + c.engineCycles()
}

// Instret reads the free-running retired-instruction counter.
func (c *virtualClock) Instret() uint64 {
	return c.instret
}

// Retire accounts instrs scalar instructions at the configured CPI.
func (c *virtualClock) Retire(instrs uint64) {
	c.instret += instrs
	c.charged += instrs * c.cpi
}

// charge accounts coprocessor work directly, bypassing the scalar CPI.
func (c *virtualClock) charge(cycles, instrs uint64) {
	c.charged += cycles
	c.instret += instrs
}

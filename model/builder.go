// Package model provides a deterministic software model of the
// heterogeneous platform: a virtual cycle/instruction clock, a vector
// coprocessor, and a systolic-array matrix accelerator driven by an Akita
// event engine. It stands in for the simulator/hardware collaborator so the
// benchmark driver and kernels can run and be tested anywhere.
package model

import (
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/hetbench/hw"
)

// Platform is the software model of one chip.
type Platform struct {
	clock  *virtualClock
	vector *vectorUnit
	matrix *systolicUnit
}

// Counters returns the platform's free-running counters.
func (p *Platform) Counters() hw.Counters { return p.clock }

// Scalar returns the scalar-core cost model.
func (p *Platform) Scalar() hw.ScalarCore { return p.clock }

// Vector returns the vector coprocessor model.
func (p *Platform) Vector() hw.VectorUnit { return p.vector }

// Matrix returns the systolic-array accelerator model.
func (p *Platform) Matrix() hw.MatrixUnit { return p.matrix }

// PlatformBuilder can build model platforms.
type PlatformBuilder struct {
	engine    sim.Engine
	freq      sim.Freq
	maxVLen   int
	lanes     int
	scalarCPI uint64
}

// NewPlatformBuilder returns a builder with the default platform shape:
// a 256-element vector unit with 8 lanes and a single-issue scalar core.
func NewPlatformBuilder() PlatformBuilder {
	return PlatformBuilder{
		freq:      1 * sim.GHz,
		maxVLen:   256,
		lanes:     8,
		scalarCPI: 1,
	}
}

// WithEngine sets the event engine that drives the accelerator model.
func (b PlatformBuilder) WithEngine(engine sim.Engine) PlatformBuilder {
	b.engine = engine
	return b
}

// WithFreq sets the clock frequency of the platform.
func (b PlatformBuilder) WithFreq(freq sim.Freq) PlatformBuilder {
	b.freq = freq
	return b
}

// WithMaxVLen sets the vector unit's maximum vector length.
func (b PlatformBuilder) WithMaxVLen(maxVLen int) PlatformBuilder {
	b.maxVLen = maxVLen
	return b
}

// WithVectorLanes sets the number of parallel vector lanes.
func (b PlatformBuilder) WithVectorLanes(lanes int) PlatformBuilder {
	b.lanes = lanes
	return b
}

// WithScalarCPI sets the cycles charged per retired scalar instruction.
func (b PlatformBuilder) WithScalarCPI(cpi uint64) PlatformBuilder {
	b.scalarCPI = cpi
	return b
}

// Build creates a platform model.
func (b PlatformBuilder) Build(name string) *Platform {
	if b.engine == nil {
		panic("platform model needs an event engine")
	}
	if b.maxVLen <= 0 || b.lanes <= 0 {
		panic("vector unit needs positive length and lane count")
	}
	if b.scalarCPI == 0 {
		panic("scalar CPI must be at least 1")
	}

	clock := &virtualClock{
		engine: b.engine,
		freq:   b.freq,
		cpi:    b.scalarCPI,
	}

	p := &Platform{
		clock: clock,
		vector: &vectorUnit{
			clock:   clock,
			maxVLen: b.maxVLen,
			lanes:   b.lanes,
		},
		matrix: &systolicUnit{clock: clock},
	}
	p.matrix.TickingComponent = sim.NewTickingComponent(
		name+".Systolic", b.engine, b.freq, p.matrix)

	return p
}

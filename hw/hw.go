// Package hw defines the commonly used data structures and capability
// interfaces for the heterogeneous compute platform: the scalar core's
// performance counters, the vector coprocessor, and the systolic-array
// matrix accelerator. The benchmark code is written entirely against these
// interfaces; the concrete instruction encodings live behind them.
package hw

// Elem is the accelerator's native matrix element.
type Elem int8

// Acc is the wide accumulator type used for dot-product partial sums.
type Acc int32

// Matrix is one accelerator-native tile.
type Matrix [Dim][Dim]Elem

// SpAddr is an address into the accelerator's scratchpad row store.
type SpAddr uint32

// Dataflow selects the systolic mesh dataflow mode.
type Dataflow int

const (
	OutputStationary Dataflow = iota
	WeightStationary
)

// Name returns the name of the dataflow mode.
func (d Dataflow) Name() string {
	switch d {
	case OutputStationary:
		return "OutputStationary"
	case WeightStationary:
		return "WeightStationary"
	default:
		panic("invalid dataflow")
	}
}

// Counters reads the free-running cycle and instruction counters. Reads have
// no side effect. Both counters are monotonically non-decreasing within a
// run and wide enough not to wrap on a benchmark's timescale.
type Counters interface {
	Cycles() uint64
	Instret() uint64
}

// ScalarCore accounts instructions retired by the scalar core. Real hardware
// counts them implicitly and implements Retire as a no-op; a software model
// of the platform advances its virtual clock here.
type ScalarCore interface {
	Retire(instrs uint64)
}

// VectorUnit is the vector coprocessor. All operations complete before the
// next one is issued; there is no asynchronous state to synchronize.
type VectorUnit interface {
	// Enable turns on vector execution mode. It must be called once before
	// any other operation and is idempotent.
	Enable()

	// SetVL negotiates the vector length for the following operations. The
	// returned length is at most avl and at most the hardware maximum.
	SetVL(avl int) int

	// Load fills register vd with the first vl elements of src.
	Load(vd int, src []int32)

	// MulScalar writes factor*vs element-wise into vd.
	MulScalar(vd, vs int, factor int32)

	// Add writes va+vb element-wise into vd.
	Add(vd, va, vb int)

	// Store writes the first vl elements of register vs over dst.
	Store(vs int, dst []int32)
}

// MatrixUnit is the systolic-array matrix accelerator. The operations form a
// strict protocol: strides are configured before any data movement, both
// operands are moved in before ConfigExecute/Preload/Compute, the result is
// moved out after Compute, and Fence blocks until everything issued so far
// has retired. MoveIn, Compute, and MoveOut are asynchronous; only Fence
// guarantees their completion. Issuing the steps out of order is undefined
// hardware behavior and is not detected by this layer.
type MatrixUnit interface {
	// Flush invalidates any address state the accelerator cached from a
	// previous run. Safe to call redundantly.
	Flush()

	// ConfigLoad sets the byte stride used when streaming rows in.
	ConfigLoad(strideBytes uint32)

	// ConfigStore sets the byte stride used when streaming rows out.
	ConfigStore(strideBytes uint32)

	// MoveIn streams a matrix from main memory into the scratchpad rows
	// [addr, addr+Dim).
	MoveIn(src *Matrix, addr SpAddr)

	// ConfigExecute selects the dataflow mode, the result right-shift, and
	// the activation applied by the mesh.
	ConfigExecute(mode Dataflow, shift, act int32)

	// Preload stages a zero bias tile into the scratchpad rows
	// [addr, addr+Dim), defining the mesh's initial accumulator state.
	Preload(addr SpAddr)

	// Compute triggers the systolic multiply of the tiles at a and b,
	// accumulating into the preloaded destination.
	Compute(a, b SpAddr)

	// MoveOut streams the scratchpad rows [addr, addr+Dim) back into dst.
	MoveOut(dst *Matrix, addr SpAddr)

	// Fence stalls until all previously issued accelerator operations have
	// retired. This is the only synchronization primitive; there is no
	// timeout, and a hung accelerator hangs the caller.
	Fence()
}

// Platform bundles the capabilities of one chip. It is created once at
// startup and injected into the benchmark driver.
type Platform interface {
	Counters() Counters
	Scalar() ScalarCore
	Vector() VectorUnit
	Matrix() MatrixUnit
}

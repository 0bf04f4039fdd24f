package kernels

import "github.com/sarchlab/hetbench/hw"

// Scratchpad layout for one tile multiply. The three regions must stay
// disjoint within a single compute issue.
const (
	SpadBaseA hw.SpAddr = 0
	SpadBaseB hw.SpAddr = hw.Dim
	SpadBaseC hw.SpAddr = 2 * hw.Dim
)

// MatMulAccel runs one c = a*b tile multiply on the matrix accelerator. The
// steps form a fixed sequence: configure the load and store strides, move
// both operands into disjoint scratchpad regions, select output-stationary
// dataflow with zero shift and zero activation, preload a zero bias tile
// into the destination region, trigger the systolic compute, stream the
// destination back to main memory, and fence so every issued operation has
// retired before the caller stops its timers.
//
// The caller flushes the accelerator before the first use in a run.
// Reordering these steps is undefined hardware behavior; correctness is
// established after the fact by verifying c against the scalar reference.
func MatMulAccel(mu hw.MatrixUnit, a, b, c *hw.Matrix) {
	mu.ConfigLoad(hw.Dim * hw.ElemBytes)
	mu.ConfigStore(hw.Dim * hw.ElemBytes)

	mu.MoveIn(a, SpadBaseA)
	mu.MoveIn(b, SpadBaseB)

	mu.ConfigExecute(hw.OutputStationary, 0, 0)
	mu.Preload(SpadBaseC)
	mu.Compute(SpadBaseA, SpadBaseB)

	mu.MoveOut(c, SpadBaseC)
	mu.Fence()
}

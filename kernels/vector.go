package kernels

import "github.com/sarchlab/hetbench/hw"

// Vector register assignment for the SAXPY sequence. The kernel owns the
// register file for its duration; nothing else issues vector instructions
// between chunks.
const (
	vregX    = 1
	vregY    = 2
	vregProd = 3
)

// SaxpyVector computes y = alpha*x + y on the vector engine. Each iteration
// negotiates an effective vector length for the remaining elements, loads a
// chunk of x and y, multiplies x by the broadcast scalar, accumulates, and
// stores back over y's chunk. The final iteration negotiates a shorter
// length when the element count is not a multiple of the hardware width.
//
// The vector unit must have been enabled once, process-wide, before the
// first call. x is read-only; y is mutated in place.
func SaxpyVector(vu hw.VectorUnit, alpha int32, x, y []int32) {
	n := len(y)
	if len(x) < n {
		n = len(x)
	}

	off := 0
	for n > 0 {
		vl := vu.SetVL(n)

		vu.Load(vregX, x[off:off+vl])
		vu.Load(vregY, y[off:off+vl])
		vu.MulScalar(vregProd, vregX, alpha)
		vu.Add(vregY, vregProd, vregY)
		vu.Store(vregY, y[off:off+vl])

		off += vl
		n -= vl
	}
}

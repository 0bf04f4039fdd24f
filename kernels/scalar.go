// Package kernels implements the same workloads for each compute engine on
// the chip: straightforward scalar loops that define ground truth, the
// vector coprocessor's chunked SAXPY, and the matrix accelerator's
// orchestration protocol.
package kernels

import "github.com/sarchlab/hetbench/hw"

// Saturate clamps a wide accumulator to the representable range of an Elem.
func Saturate(sum hw.Acc) hw.Elem {
	if sum > hw.ElemMax {
		return hw.ElemMax
	}
	if sum < hw.ElemMin {
		return hw.ElemMin
	}
	return hw.Elem(sum)
}

// SaxpyRef computes y = alpha*x + y in place, in the vectors' native width.
// This is the ground truth the vector engine is compared against.
func SaxpyRef(alpha int32, x, y []int32) {
	n := len(y)
	if len(x) < n {
		n = len(x)
	}
	for i := 0; i < n; i++ {
		y[i] = alpha*x[i] + y[i]
	}
}

// MatMulWideRef computes c = a*b for n x n row-major wide-integer matrices,
// accumulating in 64 bits and truncating to 32 on store. The bounded test
// inputs keep the wide result in range, so there is no saturation here.
func MatMulWideRef(a, b, c []int32, n int) {
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var sum int64
			for k := 0; k < n; k++ {
				sum += int64(a[i*n+k]) * int64(b[k*n+j])
			}
			c[i*n+j] = int32(sum)
		}
	}
}

// MatMulNarrowRef computes c = a*b for accelerator-native tiles,
// accumulating each dot product in a wide sum and saturating to the element
// range on store. This is the bit-accurate reference for the accelerator.
func MatMulNarrowRef(a, b, c *hw.Matrix) {
	for i := 0; i < hw.Dim; i++ {
		for j := 0; j < hw.Dim; j++ {
			var sum hw.Acc
			for k := 0; k < hw.Dim; k++ {
				sum += hw.Acc(a[i][k]) * hw.Acc(b[k][j])
			}
			c[i][j] = Saturate(sum)
		}
	}
}

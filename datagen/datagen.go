// Package datagen produces the deterministic workloads the benchmark phases
// run on. Every filler is pure in its seed, so a phase can regenerate the
// exact same data before each engine runs and verification stays meaningful.
package datagen

import "github.com/sarchlab/hetbench/hw"

// FillMatrix writes ((seed + i*Dim + j) % 16) - 8 into each cell, covering
// [-8, 7]. The asymmetric range deliberately produces dot products on both
// sides of the saturation boundaries.
func FillMatrix(m *hw.Matrix, seed uint32) {
	for i := 0; i < hw.Dim; i++ {
		for j := 0; j < hw.Dim; j++ {
			m[i][j] = hw.Elem(int32((seed+uint32(i*hw.Dim+j))%16) - 8)
		}
	}
}

// FillWide writes ((seed + i) % 64) - 32 into each element, covering
// [-32, 31]. Used for the wide-integer matrix operands.
func FillWide(v []int32, seed uint32) {
	for i := range v {
		v[i] = int32((seed+uint32(i))%64) - 32
	}
}

// FillVector writes ((seed + i) % 100) - 50 into each element, covering
// [-50, 49]. Used for the SAXPY vectors.
func FillVector(v []int32, seed uint32) {
	for i := range v {
		v[i] = int32((seed+uint32(i))%100) - 50
	}
}

// ZeroMatrix overwrites every cell with zero.
func ZeroMatrix(m *hw.Matrix) {
	for i := 0; i < hw.Dim; i++ {
		for j := 0; j < hw.Dim; j++ {
			m[i][j] = 0
		}
	}
}

// ZeroWide overwrites every element with zero.
func ZeroWide(v []int32) {
	for i := range v {
		v[i] = 0
	}
}

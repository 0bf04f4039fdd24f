package bench

import (
	"fmt"
	"io"

	"github.com/sarchlab/hetbench/hw"
)

// maxReportedMismatches bounds the per-cell output; the return value still
// counts every mismatch.
const maxReportedMismatches = 5

// VerifyNarrow compares an accelerator tile against the scalar reference.
// Cells may differ by up to tol: the mesh's accumulation order can
// legitimately land one off from the scalar loop near the saturation
// boundary. Returns the total mismatch count; zero means pass.
func VerifyNarrow(got, want *hw.Matrix, tol int, w io.Writer) int {
	mismatches := 0
	for i := 0; i < hw.Dim; i++ {
		for j := 0; j < hw.Dim; j++ {
			diff := int(got[i][j]) - int(want[i][j])
			if diff < -tol || diff > tol {
				if mismatches < maxReportedMismatches {
					fmt.Fprintf(w,
						"  Mismatch at [%d][%d]: got %d, expected %d\n",
						i, j, got[i][j], want[i][j])
				}
				mismatches++
			}
		}
	}

	return mismatches
}

// VerifyWide compares a vector-engine result element-wise against the scalar
// reference. The vector unit computes in the same width as the scalar core,
// so the comparison is exact.
func VerifyWide(got, want []int32, w io.Writer) int {
	n := len(want)
	if len(got) < n {
		n = len(got)
	}

	mismatches := 0
	for i := 0; i < n; i++ {
		if got[i] != want[i] {
			if mismatches < maxReportedMismatches {
				fmt.Fprintf(w, "  Mismatch at [%d]: got %d, expected %d\n",
					i, got[i], want[i])
			}
			mismatches++
		}
	}

	return mismatches
}

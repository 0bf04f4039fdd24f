package bench

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Result is one row of the comparison summary.
type Result struct {
	Engine   string
	Workload string
	DataType string
	Cycles   uint64
	Instrs   uint64
	Speedup  string
}

// Speedup formats baseline/cycles with one decimal place. A phase measured
// at zero cycles (degenerate or very fast simulation) has no defined ratio,
// so the function returns a sentinel instead of dividing by zero.
func Speedup(baseline, cycles uint64) string {
	if cycles == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%d.%dx", baseline/cycles, baseline*10/cycles%10)
}

// OpsPerKCycle reports integer throughput as ops*1000/cycles, or zero when
// the cycle delta is degenerate.
func OpsPerKCycle(ops, cycles uint64) uint64 {
	if cycles == 0 {
		return 0
	}
	return ops * 1000 / cycles
}

// WriteSummary renders the engine comparison table.
func WriteSummary(w io.Writer, results []Result) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetTitle("Performance Summary")
	tw.AppendHeader(table.Row{
		"Engine", "Workload", "Data Type", "Cycles", "Instructions",
		"Speedup vs Scalar",
	})

	for _, r := range results {
		tw.AppendRow(table.Row{
			r.Engine, r.Workload, r.DataType, r.Cycles, r.Instrs, r.Speedup,
		})
	}

	tw.Render()
}

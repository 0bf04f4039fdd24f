package model

import (
	"fmt"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/hetbench/hw"
	"github.com/sarchlab/hetbench/kernels"
)

// meshSteps is the number of cycles a tile multiply occupies the mesh:
// operands stream in over Dim cycles and partial sums drain over another Dim.
const meshSteps = 2 * hw.Dim

// systolicUnit models the matrix accelerator as a ticking component. Issued
// operations become queued tasks; each tick retires one row of data movement
// or one mesh step, in issue order. Fence drains the event engine, which is
// what makes the asynchronous operations observable to the scalar core.
type systolicUnit struct {
	*sim.TickingComponent

	clock *virtualClock
	spad  [hw.SpadRows][hw.Dim]hw.Elem

	ldStride uint32
	stStride uint32
	mode     hw.Dataflow
	shift    int32
	act      int32

	preloadAddr hw.SpAddr
	hasPreload  bool

	tasks []spadTask
}

type spadTask interface {
	step(u *systolicUnit)
	done() bool
}

type mvinTask struct {
	src  *hw.Matrix
	base hw.SpAddr
	row  int
}

func (t *mvinTask) step(u *systolicUnit) {
	u.spad[int(t.base)+t.row] = t.src[t.row]
	t.row++
}

func (t *mvinTask) done() bool { return t.row >= hw.Dim }

type preloadTask struct {
	base hw.SpAddr
	row  int
}

func (t *preloadTask) step(u *systolicUnit) {
	u.spad[int(t.base)+t.row] = [hw.Dim]hw.Elem{}
	t.row++
}

func (t *preloadTask) done() bool { return t.row >= hw.Dim }

type computeTask struct {
	a, b, dst hw.SpAddr
	steps     int
}

func (t *computeTask) step(u *systolicUnit) {
	t.steps++
	if t.steps < meshSteps {
		return
	}

	// Last mesh step: the drained partial sums land in the destination
	// region on top of the preloaded bias.
	for i := 0; i < hw.Dim; i++ {
		for j := 0; j < hw.Dim; j++ {
			sum := hw.Acc(u.spad[int(t.dst)+i][j])
			for k := 0; k < hw.Dim; k++ {
				sum += hw.Acc(u.spad[int(t.a)+i][k]) *
					hw.Acc(u.spad[int(t.b)+k][j])
			}
			u.spad[int(t.dst)+i][j] = kernels.Saturate(sum >> u.shift)
		}
	}
}

func (t *computeTask) done() bool { return t.steps >= meshSteps }

type mvoutTask struct {
	dst  *hw.Matrix
	base hw.SpAddr
	row  int
}

func (t *mvoutTask) step(u *systolicUnit) {
	t.dst[t.row] = u.spad[int(t.base)+t.row]
	t.row++
}

func (t *mvoutTask) done() bool { return t.row >= hw.Dim }

// Tick retires one unit of work from the oldest outstanding task.
func (u *systolicUnit) Tick() (madeProgress bool) {
	if len(u.tasks) == 0 {
		return false
	}

	task := u.tasks[0]
	task.step(u)
	if task.done() {
		u.tasks = u.tasks[1:]
	}

	return true
}

func (u *systolicUnit) checkAddr(addr hw.SpAddr) {
	if int(addr)+hw.Dim > hw.SpadRows {
		panic(fmt.Sprintf("scratchpad region [%d, %d) out of range",
			addr, int(addr)+hw.Dim))
	}
}

// Flush drops all cached address state and scratchpad contents. Calling it
// with operations still in flight is a protocol violation.
func (u *systolicUnit) Flush() {
	if len(u.tasks) > 0 {
		panic("flush issued with outstanding accelerator operations")
	}

	u.spad = [hw.SpadRows][hw.Dim]hw.Elem{}
	u.ldStride = 0
	u.stStride = 0
	u.hasPreload = false
	u.clock.charge(1, 1)

	Trace("Systolic", "Behavior", "Flush")
}

// ConfigLoad sets the move-in row stride in bytes.
func (u *systolicUnit) ConfigLoad(strideBytes uint32) {
	if strideBytes == 0 {
		panic("zero load stride")
	}
	u.ldStride = strideBytes
	u.clock.charge(1, 1)

	Trace("Systolic", "Behavior", "ConfigLoad", "Stride", strideBytes)
}

// ConfigStore sets the move-out row stride in bytes.
func (u *systolicUnit) ConfigStore(strideBytes uint32) {
	if strideBytes == 0 {
		panic("zero store stride")
	}
	u.stStride = strideBytes
	u.clock.charge(1, 1)

	Trace("Systolic", "Behavior", "ConfigStore", "Stride", strideBytes)
}

// MoveIn queues the transfer of src into the scratchpad rows at addr.
func (u *systolicUnit) MoveIn(src *hw.Matrix, addr hw.SpAddr) {
	if u.ldStride == 0 {
		panic("move-in issued before load stride was configured")
	}
	u.checkAddr(addr)

	u.tasks = append(u.tasks, &mvinTask{src: src, base: addr})
	u.clock.charge(1, 1)

	Trace("Systolic", "Behavior", "MoveIn", "SpAddr", uint32(addr))
}

// ConfigExecute selects the dataflow mode and result post-processing.
func (u *systolicUnit) ConfigExecute(mode hw.Dataflow, shift, act int32) {
	if mode != hw.OutputStationary {
		panic("only output-stationary dataflow is supported")
	}
	if shift < 0 {
		panic("negative result shift")
	}

	u.mode = mode
	u.shift = shift
	u.act = act
	u.clock.charge(1, 1)

	Trace("Systolic", "Behavior", "ConfigExecute",
		"Mode", mode.Name(), "Shift", shift, "Act", act)
}

// Preload queues the staging of a zero bias tile at addr and marks it as the
// destination of the next compute.
func (u *systolicUnit) Preload(addr hw.SpAddr) {
	u.checkAddr(addr)

	u.preloadAddr = addr
	u.hasPreload = true
	u.tasks = append(u.tasks, &preloadTask{base: addr})
	u.clock.charge(1, 1)

	Trace("Systolic", "Behavior", "Preload", "SpAddr", uint32(addr))
}

// Compute queues the systolic multiply of the tiles at a and b into the
// preloaded destination region.
func (u *systolicUnit) Compute(a, b hw.SpAddr) {
	if !u.hasPreload {
		panic("compute issued without a preloaded destination")
	}
	u.checkAddr(a)
	u.checkAddr(b)

	u.tasks = append(u.tasks, &computeTask{a: a, b: b, dst: u.preloadAddr})
	u.hasPreload = false
	u.clock.charge(1, 1)

	Trace("Systolic", "Behavior", "Compute",
		"A", uint32(a), "B", uint32(b), "Dst", uint32(u.preloadAddr))
}

// MoveOut queues the transfer of the scratchpad rows at addr into dst.
func (u *systolicUnit) MoveOut(dst *hw.Matrix, addr hw.SpAddr) {
	if u.stStride == 0 {
		panic("move-out issued before store stride was configured")
	}
	u.checkAddr(addr)

	u.tasks = append(u.tasks, &mvoutTask{dst: dst, base: addr})
	u.clock.charge(1, 1)

	Trace("Systolic", "Behavior", "MoveOut", "SpAddr", uint32(addr))
}

// Fence runs the event engine until every queued task has retired. The
// elapsed engine time shows up on the cycle counter through the clock.
// TickLater rather than TickNow: after a drain the scheduler's next-tick
// mark sits at the engine's current time, and TickNow would refuse to
// schedule the wake-up tick for any later fence.
func (u *systolicUnit) Fence() {
	u.TickLater()
	u.Engine.Run()
	u.clock.charge(1, 1)

	Trace("Systolic", "Behavior", "Fence",
		"Time", float64(u.Engine.CurrentTime()*1e9))
}

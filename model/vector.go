package model

import "fmt"

const numVRegs = 32

// vectorUnit models the vector coprocessor. Instructions complete before the
// next is issued, so the model is plain synchronous code; each instruction
// charges the clock for the lanes it occupies.
type vectorUnit struct {
	clock   *virtualClock
	maxVLen int
	lanes   int

	enabled bool
	vl      int
	regs    [numVRegs][]int32
}

// Enable turns on vector execution mode. Calling it again is a no-op.
func (u *vectorUnit) Enable() {
	if u.enabled {
		return
	}
	u.enabled = true
	u.clock.charge(1, 1)
	Trace("Vector", "Behavior", "Enable", "MaxVLen", u.maxVLen)
}

func (u *vectorUnit) checkEnabled() {
	if !u.enabled {
		panic("vector instruction issued before vector mode was enabled")
	}
}

func (u *vectorUnit) checkReg(v int) {
	if v < 0 || v >= numVRegs {
		panic(fmt.Sprintf("invalid vector register v%d", v))
	}
}

// opCycles is the occupancy of one vector instruction at the current vl.
func (u *vectorUnit) opCycles() uint64 {
	if u.vl == 0 {
		return 1
	}
	return uint64(1 + (u.vl-1)/u.lanes)
}

// SetVL negotiates the vector length for subsequent instructions.
func (u *vectorUnit) SetVL(avl int) int {
	u.checkEnabled()
	if avl < 0 {
		panic("negative application vector length")
	}

	vl := avl
	if vl > u.maxVLen {
		vl = u.maxVLen
	}
	u.vl = vl
	u.clock.charge(1, 1)

	return vl
}

// Load fills register vd from src.
func (u *vectorUnit) Load(vd int, src []int32) {
	u.checkEnabled()
	u.checkReg(vd)
	if len(src) < u.vl {
		panic("vector load source shorter than vl")
	}

	u.regs[vd] = append(u.regs[vd][:0], src[:u.vl]...)
	u.clock.charge(u.opCycles(), 1)
}

// MulScalar writes factor*vs into vd.
func (u *vectorUnit) MulScalar(vd, vs int, factor int32) {
	u.checkEnabled()
	u.checkReg(vd)
	u.checkReg(vs)
	if len(u.regs[vs]) < u.vl {
		panic("vector source register not filled to vl")
	}

	u.regs[vd] = u.regs[vd][:0]
	for i := 0; i < u.vl; i++ {
		u.regs[vd] = append(u.regs[vd], factor*u.regs[vs][i])
	}
	u.clock.charge(u.opCycles(), 1)
}

// Add writes va+vb into vd.
func (u *vectorUnit) Add(vd, va, vb int) {
	u.checkEnabled()
	u.checkReg(vd)
	u.checkReg(va)
	u.checkReg(vb)
	if len(u.regs[va]) < u.vl || len(u.regs[vb]) < u.vl {
		panic("vector source register not filled to vl")
	}

	sum := make([]int32, u.vl)
	for i := 0; i < u.vl; i++ {
		sum[i] = u.regs[va][i] + u.regs[vb][i]
	}
	u.regs[vd] = sum
	u.clock.charge(u.opCycles(), 1)
}

// Store writes register vs over dst.
func (u *vectorUnit) Store(vs int, dst []int32) {
	u.checkEnabled()
	u.checkReg(vs)
	if len(u.regs[vs]) < u.vl || len(dst) < u.vl {
		panic("vector store shorter than vl")
	}

	copy(dst[:u.vl], u.regs[vs][:u.vl])
	u.clock.charge(u.opCycles(), 1)
}

package kernels

import (
	gomock "github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/hetbench/hw"
)

var _ = Describe("MatMulAccel", func() {
	var (
		mockCtrl *gomock.Controller
		mu       *MockMatrixUnit
		a, b, c  hw.Matrix
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		mu = NewMockMatrixUnit(mockCtrl)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should issue the protocol steps in exactly the required order", func() {
		gomock.InOrder(
			mu.EXPECT().ConfigLoad(uint32(hw.Dim*hw.ElemBytes)),
			mu.EXPECT().ConfigStore(uint32(hw.Dim*hw.ElemBytes)),
			mu.EXPECT().MoveIn(&a, SpadBaseA),
			mu.EXPECT().MoveIn(&b, SpadBaseB),
			mu.EXPECT().ConfigExecute(hw.OutputStationary, int32(0), int32(0)),
			mu.EXPECT().Preload(SpadBaseC),
			mu.EXPECT().Compute(SpadBaseA, SpadBaseB),
			mu.EXPECT().MoveOut(&c, SpadBaseC),
			mu.EXPECT().Fence(),
		)

		MatMulAccel(mu, &a, &b, &c)
	})

	It("should use disjoint scratchpad regions for A, B, and C", func() {
		Expect(int(SpadBaseB) - int(SpadBaseA)).To(BeNumerically(">=", hw.Dim))
		Expect(int(SpadBaseC) - int(SpadBaseB)).To(BeNumerically(">=", hw.Dim))
		Expect(int(SpadBaseC) + hw.Dim).To(BeNumerically("<=", hw.SpadRows))
	})
})

var _ = Describe("SaxpyVector", func() {
	var (
		mockCtrl *gomock.Controller
		vu       *MockVectorUnit
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		vu = NewMockVectorUnit(mockCtrl)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should negotiate a shorter final chunk", func() {
		x := []int32{1, 2, 3, 4, 5, 6}
		y := make([]int32, 6)

		gomock.InOrder(
			vu.EXPECT().SetVL(6).Return(4),
			vu.EXPECT().Load(vregX, x[0:4]),
			vu.EXPECT().Load(vregY, y[0:4]),
			vu.EXPECT().MulScalar(vregProd, vregX, int32(5)),
			vu.EXPECT().Add(vregY, vregProd, vregY),
			vu.EXPECT().Store(vregY, y[0:4]),
			vu.EXPECT().SetVL(2).Return(2),
			vu.EXPECT().Load(vregX, x[4:6]),
			vu.EXPECT().Load(vregY, y[4:6]),
			vu.EXPECT().MulScalar(vregProd, vregX, int32(5)),
			vu.EXPECT().Add(vregY, vregProd, vregY),
			vu.EXPECT().Store(vregY, y[4:6]),
		)

		SaxpyVector(vu, 5, x, y)
	})

	It("should issue nothing for an empty vector", func() {
		SaxpyVector(vu, 3, nil, nil)
	})
})

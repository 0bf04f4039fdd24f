package hw

// Parameters of the target platform. On real silicon these come out of the
// header emitted by the hardware generator; the values here match the default
// 16x16 mesh build.
const (
	// Dim is the native tile dimension of the systolic mesh. Every matrix
	// moved through the accelerator is Dim x Dim.
	Dim = 16

	// ElemBytes is the width of a scratchpad element in bytes.
	ElemBytes = 1

	// AccBytes is the width of a mesh accumulator in bytes.
	AccBytes = 4

	// ElemMin and ElemMax bound the representable range of an Elem.
	// Results outside this range saturate, they do not wrap.
	ElemMin = -128
	ElemMax = 127

	// SpadRows is the number of addressable rows in the accelerator
	// scratchpad. A row holds Dim elements.
	SpadRows = 4 * Dim
)

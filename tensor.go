package bigearthnet

// Tensor is a dense float32 array with row-major layout. Decoded samples are
// 3-D (channels, height, width); transform stages may temporarily introduce
// a fourth axis.
type Tensor struct {
	Shape []int
	Data  []float32
}

// NewTensor allocates a zero-filled tensor of the given shape.
func NewTensor(shape ...int) *Tensor {
	n := 1
	for _, d := range shape {
		n *= d
	}
	s := make([]int, len(shape))
	copy(s, shape)
	return &Tensor{Shape: s, Data: make([]float32, n)}
}

// Numel returns the total element count.
func (t *Tensor) Numel() int {
	n := 1
	for _, d := range t.Shape {
		n *= d
	}
	return n
}

// Clone returns a deep copy.
func (t *Tensor) Clone() *Tensor {
	out := NewTensor(t.Shape...)
	copy(out.Data, t.Data)
	return out
}

// Sample is one (image, label) pair as passed through a transform pipeline.
// Label is a multi-hot vector over the active vocabulary.
type Sample struct {
	Image *Tensor
	Label []int64
}

// Transform rewrites a sample. It mirrors the torchvision-style callable
// hook: stages neither fail nor see the dataset, they only map one sample to
// another.
type Transform func(Sample) Sample

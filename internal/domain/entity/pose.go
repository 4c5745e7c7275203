package entity

import "fmt"

// PoseSequence is a dense (Samples, Joints, Dims) array of joint positions for
// one view. Data is laid out row-major; it is treated as immutable once loaded.
type PoseSequence struct {
	Samples int
	Joints  int
	Dims    int
	Data    []float64
}

// NewPoseSequence shapes a flat archive array into (samples, joints, dims),
// deriving the sample count from the element count. A length that does not
// divide evenly is a malformed archive, not a condition to truncate around.
func NewPoseSequence(data []float64, joints, dims int) (*PoseSequence, error) {
	stride := joints * dims
	if stride <= 0 {
		return nil, fmt.Errorf("entity: invalid pose shape (%d joints, %d dims)", joints, dims)
	}
	if len(data)%stride != 0 {
		return nil, fmt.Errorf("entity: pose array length %d does not reshape to (n, %d, %d)", len(data), joints, dims)
	}
	return &PoseSequence{
		Samples: len(data) / stride,
		Joints:  joints,
		Dims:    dims,
		Data:    data,
	}, nil
}

// Sample returns the flat (Joints*Dims) row for one time step. The returned
// slice aliases the sequence data.
func (p *PoseSequence) Sample(i int) []float64 {
	stride := p.Joints * p.Dims
	return p.Data[i*stride : (i+1)*stride]
}

// At returns one coordinate of one joint at one time step.
func (p *PoseSequence) At(sample, joint, dim int) float64 {
	return p.Data[(sample*p.Joints+joint)*p.Dims+dim]
}

// Select returns a new sequence holding copies of the given sample rows, in
// the given order.
func (p *PoseSequence) Select(indices []int) *PoseSequence {
	stride := p.Joints * p.Dims
	out := make([]float64, 0, len(indices)*stride)
	for _, i := range indices {
		out = append(out, p.Sample(i)...)
	}
	return &PoseSequence{
		Samples: len(indices),
		Joints:  p.Joints,
		Dims:    p.Dims,
		Data:    out,
	}
}

package usecase

import "github.com/tranorrepository/h36m-fetch/internal/domain/entity"

const (
	// denseEvalStride is the fixed subsampling stride for dense-eval subjects.
	denseEvalStride = 64

	// moveThreshold is the squared displacement (mm²) at least one joint must
	// cover since the last selected sample before another sample is kept.
	moveThreshold = 40 * 40
)

// SelectFrameIndices picks the sample indices of a view to retain. Dense-eval
// subjects are sampled at a fixed stride regardless of motion. All other
// subjects get a greedy one-pass scan: sample 0 is always kept, and a later
// sample is kept only once some joint has moved at least moveThreshold
// (squared, summed over coordinates) relative to the last kept sample.
func SelectFrameIndices(catalog *entity.Catalog, subject string, poses3D *entity.PoseSequence) []int {
	if catalog.DenseEval(subject) {
		indices := make([]int, 0, poses3D.Samples/denseEvalStride+1)
		for i := 0; i < poses3D.Samples; i += denseEvalStride {
			indices = append(indices, i)
		}
		return indices
	}

	indices := make([]int, 0, poses3D.Samples)
	var prev []float64
	for i := 0; i < poses3D.Samples; i++ {
		sample := poses3D.Sample(i)
		if prev != nil && maxJointDisplacement(sample, prev, poses3D.Dims) < moveThreshold {
			continue
		}
		prev = sample
		indices = append(indices, i)
	}
	return indices
}

// maxJointDisplacement returns the maximum over joints of the squared
// Euclidean displacement between two flat (joints*dims) samples.
func maxJointDisplacement(a, b []float64, dims int) float64 {
	maxMove := 0.0
	for j := 0; j < len(a); j += dims {
		move := 0.0
		for d := 0; d < dims; d++ {
			diff := a[j+d] - b[j+d]
			move += diff * diff
		}
		if move > maxMove {
			maxMove = move
		}
	}
	return maxMove
}

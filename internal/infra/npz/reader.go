// Package npz reads NumPy .npz pose archives, the converted form of the
// original CDF containers distributed with the dataset.
package npz

import (
	"archive/zip"
	"fmt"

	"github.com/sbinet/npyio"

	"github.com/tranorrepository/h36m-fetch/internal/domain/entity"
)

// poseMember is the archive member holding the pose array. np.savez stores
// each keyword argument as "<key>.npy".
const poseMember = "Pose.npy"

type Reader struct{}

func NewReader() *Reader {
	return &Reader{}
}

// ReadPoses loads the Pose array from an .npz archive and shapes it into
// (samples, joints, dims), deriving the sample count from the element count.
func (r *Reader) ReadPoses(path string, joints, dims int) (*entity.PoseSequence, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open pose archive %s: %w", path, err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != poseMember {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s in %s: %w", f.Name, path, err)
		}

		var data []float64
		err = npyio.Read(rc, &data)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s from %s: %w", f.Name, path, err)
		}

		seq, err := entity.NewPoseSequence(data, joints, dims)
		if err != nil {
			return nil, fmt.Errorf("pose archive %s: %w", path, err)
		}
		return seq, nil
	}

	return nil, fmt.Errorf("pose archive %s: no %s member", path, poseMember)
}

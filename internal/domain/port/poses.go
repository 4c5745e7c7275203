package port

import "github.com/tranorrepository/h36m-fetch/internal/domain/entity"

// PoseReader loads a view's pose archive and shapes it to (samples, joints, dims).
type PoseReader interface {
	ReadPoses(path string, joints, dims int) (*entity.PoseSequence, error)
}

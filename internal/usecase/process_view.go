package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"

	"github.com/tranorrepository/h36m-fetch/internal/domain/entity"
	"github.com/tranorrepository/h36m-fetch/internal/fsutil"
)

// ProcessView packages one (subject, action, camera) view: it resolves the
// source files, loads the pose arrays, fits the camera intrinsics, selects the
// frames to keep, extracts any stills not already on disk, and returns the
// per-view bundle. An absent view yields an error wrapping ErrMissingData.
func (uc *PackSequencesUseCase) ProcessView(ctx context.Context, subject, action, camera string) (*entity.ViewBundle, error) {
	stem, err := uc.resolveViewName(subject, action, camera)
	if err != nil {
		return nil, err
	}

	poses2D, err := uc.poses.ReadPoses(uc.pose2DPath(subject, stem), jointCount, 2)
	if err != nil {
		return nil, fmt.Errorf("load 2d poses for %s/%s: %w", subject, stem, err)
	}
	poses3D, err := uc.poses.ReadPoses(uc.pose3DPath(subject, stem), jointCount, 3)
	if err != nil {
		return nil, fmt.Errorf("load 3d poses for %s/%s: %w", subject, stem, err)
	}
	if poses2D.Samples != poses3D.Samples {
		return nil, fmt.Errorf("pose sample counts differ for %s/%s: 2d has %d, 3d has %d",
			subject, stem, poses2D.Samples, poses3D.Samples)
	}

	intrinsics, err := FitIntrinsics(poses2D, poses3D)
	if err != nil {
		return nil, fmt.Errorf("fit intrinsics for %s/%s: %w", subject, stem, err)
	}

	indices := SelectFrameIndices(uc.catalog, subject, poses3D)
	frames := make([]int64, len(indices))
	for i, idx := range indices {
		frames[i] = int64(idx) + 1 // the extractor numbers frames from 1
	}

	framesDir := uc.framesDir(subject, action, camera)
	if err := os.MkdirAll(framesDir, 0o755); err != nil {
		return nil, fmt.Errorf("create frames dir %s: %w", framesDir, err)
	}
	if err := uc.extractMissingFrames(ctx, uc.videoPath(subject, stem), framesDir, frames); err != nil {
		return nil, err
	}

	cameraID, err := strconv.ParseInt(camera, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("camera identifier %q is not numeric: %w", camera, err)
	}

	n := len(frames)
	return &entity.ViewBundle{
		Camera:     camera,
		Poses2D:    poses2D.Select(indices),
		Poses3D:    poses3D.Select(indices),
		Intrinsics: intrinsics,
		Frames:     frames,
		CameraIDs:  constColumn(n, cameraID),
		Subjects:   constColumn(n, uc.catalog.SubjectCode(subject)),
		Actions:    constColumn(n, uc.catalog.ActionCode(action)),
	}, nil
}

// extractMissingFrames rasterizes the selected frames into framesDir. When
// every selected still is already on disk the extractor is not launched at
// all, which makes reruns cheap. Otherwise the whole video is decoded into a
// scratch directory and only the selected frames are moved over.
func (uc *PackSequencesUseCase) extractMissingFrames(ctx context.Context, videoPath, framesDir string, frames []int64) error {
	if uc.allFramesPresent(framesDir, frames) {
		uc.logger.Debug("frames already extracted", zap.String("dir", framesDir))
		return nil
	}

	if err := os.MkdirAll(uc.tempDir, 0o755); err != nil {
		return fmt.Errorf("create temp dir %s: %w", uc.tempDir, err)
	}
	scratch, err := os.MkdirTemp(uc.tempDir, "frames-")
	if err != nil {
		return fmt.Errorf("create scratch dir: %w", err)
	}
	defer os.RemoveAll(scratch)

	pattern := filepath.Join(scratch, "img_%06d."+uc.frameFormat)
	if err := uc.extractor.ExtractFrames(ctx, videoPath, pattern); err != nil {
		return fmt.Errorf("extract frames from %s: %w", videoPath, err)
	}

	for _, frame := range frames {
		name := uc.frameImageName(frame)
		if err := fsutil.MoveFile(filepath.Join(scratch, name), filepath.Join(framesDir, name)); err != nil {
			return fmt.Errorf("keep frame %d of %s: %w", frame, videoPath, err)
		}
	}
	return nil
}

func (uc *PackSequencesUseCase) allFramesPresent(dir string, frames []int64) bool {
	for _, frame := range frames {
		if !fsutil.Exists(filepath.Join(dir, uc.frameImageName(frame))) {
			return false
		}
	}
	return true
}

func (uc *PackSequencesUseCase) frameImageName(frame int64) string {
	return fmt.Sprintf("img_%06d.%s", frame, uc.frameFormat)
}

func constColumn(n int, value int64) []int64 {
	col := make([]int64, n)
	for i := range col {
		col[i] = value
	}
	return col
}

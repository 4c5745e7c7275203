package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tranorrepository/h36m-fetch/internal/domain/entity"
)

// fakePoseReader serves the same synthetic view for every path, keyed only by
// the requested dimensionality.
type fakePoseReader struct {
	poses2D *entity.PoseSequence
	poses3D *entity.PoseSequence
	err     error
}

func (f *fakePoseReader) ReadPoses(path string, joints, dims int) (*entity.PoseSequence, error) {
	if f.err != nil {
		return nil, f.err
	}
	if dims == 2 {
		return f.poses2D, nil
	}
	return f.poses3D, nil
}

// countingExtractor stands in for ffmpeg: each invocation writes stills for
// frames 1..frames into the pattern's directory and bumps the call count.
type countingExtractor struct {
	calls  int
	frames int
}

func (e *countingExtractor) ExtractFrames(_ context.Context, _ string, pattern string) error {
	e.calls++
	for i := 1; i <= e.frames; i++ {
		if err := os.WriteFile(fmt.Sprintf(pattern, i), []byte("still"), 0o644); err != nil {
			return err
		}
	}
	return nil
}

// failingExtractor simulates a launch failure of the external decoder.
type failingExtractor struct{}

func (failingExtractor) ExtractFrames(context.Context, string, string) error {
	return errors.New("ffmpeg exploded")
}

// captureWriter records every archive write.
type captureWriter struct {
	paths    []string
	datasets [][]entity.Dataset
}

func (w *captureWriter) WriteAnnotations(path string, datasets []entity.Dataset) error {
	w.paths = append(w.paths, path)
	w.datasets = append(w.datasets, datasets)
	return nil
}

// movingPinholePoses builds paired 2D/3D sequences whose joint 0 moves more
// than the selection threshold every sample and whose projection satisfies
// u = 2x + 3, v = 4y + 5 with z = 1.
func movingPinholePoses(t *testing.T, samples int) (*entity.PoseSequence, *entity.PoseSequence) {
	t.Helper()

	d2 := make([]float64, samples*jointCount*2)
	d3 := make([]float64, samples*jointCount*3)
	for s := 0; s < samples; s++ {
		for j := 0; j < jointCount; j++ {
			x := float64(s*50 + j)
			y := float64(s*5 + 2*j)
			d3[(s*jointCount+j)*3+0] = x
			d3[(s*jointCount+j)*3+1] = y
			d3[(s*jointCount+j)*3+2] = 1
			d2[(s*jointCount+j)*2+0] = 2*x + 3
			d2[(s*jointCount+j)*2+1] = 4*y + 5
		}
	}

	p2, err := entity.NewPoseSequence(d2, jointCount, 2)
	require.NoError(t, err)
	p3, err := entity.NewPoseSequence(d3, jointCount, 3)
	require.NoError(t, err)
	return p2, p3
}

type fixture struct {
	uc        *PackSequencesUseCase
	reader    *fakePoseReader
	extractor *countingExtractor
	writer    *captureWriter
	extracted string
	processed string
}

func newFixture(t *testing.T, logger *zap.Logger, samples, decodedFrames int) *fixture {
	t.Helper()

	p2, p3 := movingPinholePoses(t, samples)
	f := &fixture{
		reader:    &fakePoseReader{poses2D: p2, poses3D: p3},
		extractor: &countingExtractor{frames: decodedFrames},
		writer:    &captureWriter{},
		extracted: t.TempDir(),
		processed: t.TempDir(),
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	f.uc = NewPackSequencesUseCase(
		entity.NewCatalog(),
		f.reader, f.extractor, f.writer,
		logger,
		PackSequencesConfig{
			ExtractedRoot: f.extracted,
			ProcessedRoot: f.processed,
			TempDir:       t.TempDir(),
		},
	)
	return f
}

package usecase

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranorrepository/h36m-fetch/internal/domain/entity"
	"github.com/tranorrepository/h36m-fetch/internal/fsutil"
)

func TestProcessViewBundle(t *testing.T) {
	f := newFixture(t, nil, 3, 6)
	touch(t, filepath.Join(f.extracted, "S1", "Poses_D2_Positions", "Walking.58860488.npz"))

	bundle, err := f.uc.ProcessView(context.Background(), "S1", "Walking", "58860488")
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 2, 3}, bundle.Frames)
	assert.Equal(t, []int64{58860488, 58860488, 58860488}, bundle.CameraIDs)
	assert.Equal(t, []int64{1, 1, 1}, bundle.Subjects)
	assert.Equal(t, []int64{13, 13, 13}, bundle.Actions)
	assert.Equal(t, 3, bundle.Poses2D.Samples)
	assert.Equal(t, 3, bundle.Poses3D.Samples)
	assert.InDelta(t, 2.0, bundle.Intrinsics[0], 1e-8)
	assert.InDelta(t, 3.0, bundle.Intrinsics[1], 1e-8)

	// Only the selected stills survive into the target directory; the rest of
	// the decoded video is discarded with the scratch dir.
	framesDir := filepath.Join(f.processed, "S1", "Walking", "imageSequence", "58860488")
	for _, name := range []string{"img_000001.jpg", "img_000002.jpg", "img_000003.jpg"} {
		assert.True(t, fsutil.Exists(filepath.Join(framesDir, name)), name)
	}
	assert.False(t, fsutil.Exists(filepath.Join(framesDir, "img_000004.jpg")))
}

func TestProcessViewExtractionIsIdempotent(t *testing.T) {
	f := newFixture(t, nil, 3, 6)
	touch(t, filepath.Join(f.extracted, "S1", "Poses_D2_Positions", "Walking.58860488.npz"))

	_, err := f.uc.ProcessView(context.Background(), "S1", "Walking", "58860488")
	require.NoError(t, err)
	require.Equal(t, 1, f.extractor.calls)

	// Every selected still is already on disk, so the decoder must not run.
	_, err = f.uc.ProcessView(context.Background(), "S1", "Walking", "58860488")
	require.NoError(t, err)
	assert.Equal(t, 1, f.extractor.calls)
}

func TestProcessViewDenseEvalSubject(t *testing.T) {
	f := newFixture(t, nil, 130, 130)
	touch(t, filepath.Join(f.extracted, "S9", "Poses_D2_Positions", "Posing.55011271.npz"))

	bundle, err := f.uc.ProcessView(context.Background(), "S9", "Posing", "55011271")
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 65, 129}, bundle.Frames)
	framesDir := filepath.Join(f.processed, "S9", "Posing", "imageSequence", "55011271")
	assert.True(t, fsutil.Exists(filepath.Join(framesDir, "img_000065.jpg")))
	assert.False(t, fsutil.Exists(filepath.Join(framesDir, "img_000002.jpg")))
}

func TestProcessViewMissingData(t *testing.T) {
	f := newFixture(t, nil, 3, 6)

	_, err := f.uc.ProcessView(context.Background(), "S1", "Walking", "58860488")
	assert.ErrorIs(t, err, entity.ErrMissingData)
}

func TestProcessViewSampleCountMismatch(t *testing.T) {
	f := newFixture(t, nil, 3, 6)
	touch(t, filepath.Join(f.extracted, "S1", "Poses_D2_Positions", "Walking.58860488.npz"))

	_, shorter := movingPinholePoses(t, 2)
	f.reader.poses3D = shorter

	_, err := f.uc.ProcessView(context.Background(), "S1", "Walking", "58860488")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sample counts differ")
	assert.NotErrorIs(t, err, entity.ErrMissingData)
}

func TestProcessViewExtractorFailureIsFatal(t *testing.T) {
	f := newFixture(t, nil, 3, 6)
	touch(t, filepath.Join(f.extracted, "S1", "Poses_D2_Positions", "Walking.58860488.npz"))

	f.uc.extractor = failingExtractor{}

	_, err := f.uc.ProcessView(context.Background(), "S1", "Walking", "58860488")
	require.Error(t, err)
	assert.NotErrorIs(t, err, entity.ErrMissingData)
}
